package fleet

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"liyu1981.xyz/factory-monitor/pkg/db"
	"liyu1981.xyz/factory-monitor/pkg/fleet/mocks"
	"liyu1981.xyz/factory-monitor/pkg/telemetry"
)

func GetMockFleetWithMemorySqliteDialector(t *testing.T, useMockIAlert, useMockIHistory bool) (
	*gomock.Controller,
	*Fleet,
	*mocks.MockIAlert,
	*mocks.MockIHistory,
	*mocks.MockAIClient,
) {
	ctrl := gomock.NewController(t)

	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIHistory := mocks.NewMockIHistory(ctrl)
	mockAI := mocks.NewMockAIClient(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations

	sim := NewSimulator(telemetry.NewSource(2026), telemetry.GeneratorOpts{})
	fleetInstance := New(*dbInstance, sim, mockAI)

	if useMockIAlert {
		fleetInstance.WithServices(ServiceOpts{Alert: mockIAlert})
	}
	if useMockIHistory {
		fleetInstance.WithServices(ServiceOpts{History: mockIHistory})
	}

	return ctrl, fleetInstance, mockIAlert, mockIHistory, mockAI
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
