package config

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "team-tracker.com/team-tracker/internal/models"
)

// New opens the database and migrates every tracker model, exiting on
// failure.
func New(dsn string) *gorm.DB {
	db, err := Open(dsn)
	if err != nil {
		logrus.WithError(err).Fatal("db open failed")
	}
	return db
}

// Open is New without the process exit.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(withForeignKeys(dsn)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, err
	}

	return db, nil
}

// withForeignKeys turns on sqlite foreign key enforcement for every pooled
// connection; cascades and restrictions depend on it.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}
