package fleet

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

func (f *Fleet) recordKPIs(snapshotID string, at time.Time, kpis models.KPIData) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetHistory),
	)

	record := models.KPIRecord{
		SnapshotID:        snapshotID,
		Timestamp:         at,
		TotalMachines:     kpis.TotalMachines,
		CriticalStatus:    kpis.CriticalStatus,
		WarningStatus:     kpis.WarningStatus,
		AvgTemperature:    kpis.AvgTemperature,
		AvgLoad:           kpis.AvgLoad,
		AvgVibration:      kpis.AvgVibration,
		EnergyConsumption: kpis.EnergyConsumption,
	}

	// a retried tick for the same snapshot overwrites its row
	err := f.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_id"}},
		UpdateAll: true,
	}).Create(&record).Error

	if err == nil {
		logger.Info("Recorded kpis", zap.Reflect("kpis", record))
	}

	return err
}

func (f *Fleet) getKPIHistory(limit int) ([]models.KPIRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	var records []models.KPIRecord
	err := f.Db.Conn.
		Order("timestamp desc").
		Order("id desc").
		Limit(limit).
		Find(&records).Error
	return records, err
}

type IHistoryImpl struct {
	fleet *Fleet
}

func (ih *IHistoryImpl) RecordKPIs(snapshotID string, at time.Time, kpis models.KPIData) error {
	return ih.fleet.recordKPIs(snapshotID, at, kpis)
}

func (ih *IHistoryImpl) GetKPIHistory(limit int) ([]models.KPIRecord, error) {
	return ih.fleet.getKPIHistory(limit)
}

func (f *Fleet) GetIHistory() IHistory {
	return &IHistoryImpl{fleet: f}
}
