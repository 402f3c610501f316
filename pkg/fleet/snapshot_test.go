package fleet

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/fleet/mocks"
	"liyu1981.xyz/factory-monitor/pkg/models"
	_ "liyu1981.xyz/factory-monitor/pkg/testing"
)

func TestTick_StoresAndPublishes(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, mockIAlert, mockIHistory, _ := GetMockFleetWithMemorySqliteDialector(t, true, true)
	defer ctrl.Finish()

	publisher := mocks.NewMockPublisher(ctrl)
	fleetObj.WithPublishers(publisher)

	now := time.Now()

	var stored []models.Alert
	mockIAlert.
		EXPECT().
		StoreAlerts(gomock.Any(), gomock.Eq(now), gomock.Any()).
		DoAndReturn(func(snapshotID string, at time.Time, alerts []models.Alert) error {
			stored = alerts
			return nil
		}).
		Times(1)
	mockIHistory.
		EXPECT().
		RecordKPIs(gomock.Any(), gomock.Eq(now), gomock.Any()).
		Return(nil).
		Times(1)
	publisher.
		EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	view, err := fleetObj.Snapshot.Tick(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, view.Alerts, stored)
	assert.Same(t, view, fleetObj.Snapshot.Current())
}

func TestTick_PublisherFailureIsNotFatal(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, fleetObj, _, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	failing := mocks.NewMockPublisher(ctrl)
	working := mocks.NewMockPublisher(ctrl)
	fleetObj.WithPublishers(failing, working)

	failing.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)
	working.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	view, err := fleetObj.Snapshot.Tick(context.Background(), time.Now())
	require.NoError(t, err)
	require.NotNil(t, view)

	found := false
	for _, log := range ParseLogs(buf) {
		lobj := log.(map[string]any)
		if lobj["logger"] == "fleet_core" &&
			lobj["category"] == "snapshot" &&
			lobj["msg"] == "Publisher failed" &&
			lobj["error"] == "redis down" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTick_StoreFailureIsReported(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, mockIAlert, mockIHistory, _ := GetMockFleetWithMemorySqliteDialector(t, true, true)
	defer ctrl.Finish()

	mockIAlert.EXPECT().StoreAlerts(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	mockIHistory.EXPECT().RecordKPIs(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	view, err := fleetObj.Snapshot.Tick(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// the view is still the newest one
	assert.Same(t, view, fleetObj.Snapshot.Current())
}

func TestTick_WritesHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	view, err := fleetObj.Snapshot.Tick(context.Background(), time.Now())
	require.NoError(t, err)

	var alertCount int64
	fleetObj.Db.Conn.Model(&models.AlertRecord{}).Where("snapshot_id = ?", view.Snapshot.ID).Count(&alertCount)
	assert.EqualValues(t, len(view.Alerts), alertCount)

	var kpi models.KPIRecord
	require.NoError(t, fleetObj.Db.Conn.Where("snapshot_id = ?", view.Snapshot.ID).First(&kpi).Error)
	assert.Equal(t, view.Snapshot.KPIs.TotalMachines, kpi.TotalMachines)
	assert.Equal(t, view.Snapshot.KPIs.EnergyConsumption, kpi.EnergyConsumption)
}

func TestTick_MissingServices(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	fleetObj.Alert = nil
	_, err := fleetObj.Snapshot.Tick(context.Background(), time.Now())
	require.ErrorContains(t, err, "alert service not available")

	fleetObj.Simulator = nil
	_, err = fleetObj.Snapshot.Tick(context.Background(), time.Now())
	require.ErrorContains(t, err, "simulator not available")
	assert.Nil(t, fleetObj.Snapshot.Current())
}
