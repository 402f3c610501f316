package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

const defaultDbPath = "factory-monitor.db"

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance opens and migrates the history database once per process.
func GetInstance(dialector gorm.Dialector) *DB {
	var l = common.GetLogger()
	once.Do(func() {
		// a snapshot lands every few seconds, keep gorm's per-statement logging quiet
		conn, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		l.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		if err := instance.Conn.AutoMigrate(&models.AlertRecord{}, &models.KPIRecord{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		l.Info("Database migration completed")

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyFMDbPath); !found || dbPath == "" {
		dbPath = defaultDbPath
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

// UseDialector maps the FM_DB_TYPE value onto a dialector.
func UseDialector(dbType string) (gorm.Dialector, bool) {
	switch dbType {
	case "file":
		return UseSqliteDialector(), true
	case "memory":
		return UseMemorySqliteDialector(), true
	default:
		return nil, false
	}
}
