package db

import (
	"log"
	"rsud/src/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func dialector() gorm.Dialector {
	if config.DatabaseDriver() == config.DRIVER_POSTGRES {
		return postgres.Open(config.GetDSN())
	}
	return sqlite.Open(config.GetDSN())
}

func GetDb() *gorm.DB {
	if db != nil {
		return db
	}
	_db, err := gorm.Open(dialector())
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		panic(err)
	}
	sqlDB, err := _db.DB()
	if err != nil {
		log.Fatalf("Error establishing connection to database: %s\n", err.Error())
	}
	if config.DatabaseDriver() == config.DRIVER_POSTGRES {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	db = _db
	return _db
}

func NewDB(newdb *gorm.DB) {
	db = newdb
}

func Ping() error {
	sqlDB, err := GetDb().DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
