package fleet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
	_ "liyu1981.xyz/factory-monitor/pkg/testing"
)

func TestRecordKPIs(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	snapshotID := uuid.NewString()
	kpis := models.KPIData{
		TotalMachines: 21, CriticalStatus: 3, WarningStatus: 2,
		AvgTemperature: 58, AvgLoad: 80, AvgVibration: 4, EnergyConsumption: 512,
	}

	require.NoError(t, fleetObj.History.RecordKPIs(snapshotID, time.Now(), kpis))

	var saved models.KPIRecord
	require.NoError(t, fleetObj.Db.Conn.Where("snapshot_id = ?", snapshotID).First(&saved).Error)
	assert.Equal(t, 512, saved.EnergyConsumption)

	// same snapshot recorded again overwrites
	kpis.EnergyConsumption = 600
	require.NoError(t, fleetObj.History.RecordKPIs(snapshotID, time.Now(), kpis))

	var rows []models.KPIRecord
	require.NoError(t, fleetObj.Db.Conn.Where("snapshot_id = ?", snapshotID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 600, rows[0].EnergyConsumption)
}

func TestGetKPIHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	future := time.Date(2101, 1, 1, 0, 0, 0, 0, time.UTC)
	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	for i, id := range ids {
		require.NoError(t, fleetObj.History.RecordKPIs(id, future.Add(time.Duration(i)*10*time.Second), models.KPIData{
			TotalMachines: 21, AvgTemperature: 50 + i,
		}))
	}

	history, err := fleetObj.History.GetKPIHistory(3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, ids[2], history[0].SnapshotID)
	assert.Equal(t, 52, history[0].AvgTemperature)
	assert.Equal(t, ids[0], history[2].SnapshotID)
}
