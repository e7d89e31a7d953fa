package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects per the configured driver. sqlite keeps everything in
// one file, which matches the single kv_entries table the store uses;
// mysql is for shared deployments.
func Open(driver, sqlitePath, mysqlDSN string, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(sqlitePath)
	case "mysql":
		dialector = mysql.Open(mysqlDSN)
	default:
		return nil, fmt.Errorf("unknown db driver %q", driver)
	}

	db, err := OpenWithDialector(dialector)
	if err != nil {
		return nil, err
	}

	if driver == "mysql" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(30)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	log.WithField("driver", driver).Info("gorm: connected")
	return db, nil
}

// OpenWithDialector is the seam the tests use to inject a mocked
// connection.
func OpenWithDialector(dialector gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
