package test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/db"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

func TestWithEnvPath(t *testing.T) {
	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	common.SetTestLoggerNop()

	testPath := filepath.Join(t.TempDir(), "history.db")
	t.Setenv(common.EnvKeyFMDbPath, testPath)

	instance := db.GetInstance(db.UseSqliteDialector())
	if instance == nil || instance.Conn == nil {
		t.Fatal("Expected non-nil DB connection")
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}

	record := models.KPIRecord{SnapshotID: "integration", Timestamp: time.Now(), TotalMachines: 21}
	if err := instance.Conn.Create(&record).Error; err != nil {
		t.Fatalf("Failed to write kpi record: %v", err)
	}

	var count int64
	instance.Conn.Model(&models.KPIRecord{}).Where("snapshot_id = ?", "integration").Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 kpi record, got %d", count)
	}
}
