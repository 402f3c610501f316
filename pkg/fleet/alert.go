package fleet

import (
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

const DefaultHistoryLimit = 50

func (f *Fleet) storeAlerts(snapshotID string, at time.Time, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAlert),
	)

	records := common.Mapper(alerts, func(a models.Alert) models.AlertRecord {
		return models.AlertRecord{
			SnapshotID: snapshotID,
			AlertID:    a.ID,
			MachineID:  a.MachineID,
			Machine:    a.Machine,
			Fault:      a.Fault,
			Message:    a.Message,
			Severity:   a.Severity,
			Timestamp:  at,
		}
	})

	if err := f.Db.Conn.Create(&records).Error; err != nil {
		return err
	}

	for _, r := range records {
		logger.Info("Alert saved", zap.Reflect("alert", r))
	}
	return nil
}

func (f *Fleet) getMachineAlerts(machineID string) ([]models.AlertRecord, error) {
	var alerts []models.AlertRecord
	err := f.Db.Conn.
		Where("machine_id = ?", machineID).
		Order("timestamp desc").
		Order("id desc").
		Find(&alerts).Error
	return alerts, err
}

func (f *Fleet) getRecentAlerts(limit int) ([]models.AlertRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	var alerts []models.AlertRecord
	err := f.Db.Conn.
		Order("timestamp desc").
		Order("id desc").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	fleet *Fleet
}

func (ia *IAlertImpl) StoreAlerts(snapshotID string, at time.Time, alerts []models.Alert) error {
	return ia.fleet.storeAlerts(snapshotID, at, alerts)
}

func (ia *IAlertImpl) GetMachineAlerts(machineID string) ([]models.AlertRecord, error) {
	return ia.fleet.getMachineAlerts(machineID)
}

func (ia *IAlertImpl) GetRecentAlerts(limit int) ([]models.AlertRecord, error) {
	return ia.fleet.getRecentAlerts(limit)
}

func (f *Fleet) GetIAlert() IAlert {
	return &IAlertImpl{fleet: f}
}
