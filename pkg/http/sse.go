package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/factory-monitor/pkg/stream"
)

func writeSSE(w io.Writer, event string, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, string(jsonData))
}

// StreamSnapshots sends a snapshot event whenever a new view appears, plus heartbeats.
func (rs *RestfulServer) StreamSnapshots(c *gin.Context) {
	poll := rs.SSEPollInterval
	if poll <= 0 {
		poll = DefaultSSEPollInterval
	}
	beat := rs.SSEHeartbeat
	if beat <= 0 {
		beat = DefaultSSEHeartbeat
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	writeSSE(c.Writer, "connected", map[string]string{"type": "connected"})
	c.Writer.Flush()

	var lastID string
	sendLatest := func() {
		view := rs.Fleet.Snapshot.Current()
		if view == nil || view.Snapshot.ID == lastID {
			return
		}
		lastID = view.Snapshot.ID
		writeSSE(c.Writer, "snapshot", view)
		c.Writer.Flush()
	}
	sendLatest()

	ctx := c.Request.Context()
	ticker := time.NewTicker(poll)
	heartbeat := time.NewTicker(beat)
	defer ticker.Stop()
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			writeSSE(c.Writer, "heartbeat", map[string]string{
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			c.Writer.Flush()
		case <-ticker.C:
			sendLatest()
		}
	}
}

func (rs *RestfulServer) ServeWebsocket(c *gin.Context) {
	if rs.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "websocket stream not enabled"})
		return
	}

	var initial []byte
	if view := rs.Fleet.Snapshot.Current(); view != nil {
		initial, _ = stream.SnapshotFrame(view)
	}

	// ServeWS has already answered the client when the upgrade fails
	_ = stream.ServeWS(rs.Hub, c.Writer, c.Request, initial)
}
