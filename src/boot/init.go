package boot

import (
	"context"
	"log"
	"rsud/src/common"
	"rsud/src/config"
	"rsud/src/db"
	"rsud/src/lib"
	"rsud/src/models"
	"rsud/src/utils"
	"time"

	"gorm.io/gorm"
)

const (
	JOB_EXPIRE_REGISTRATIONS = "expire-registrations"
	JOB_REFRESH_STATS        = "refresh-dashboard-stats"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Doctor{},
		&models.Registration{},
		&models.Message{},
		&models.User{},
		&models.BPJS{},
		&models.Facility{},
		&models.Room{},
		&models.BankAccount{},
		&models.TrailLog{},
		&models.JobRun{},
	)
}

func InitDb() *gorm.DB {
	db := db.GetDb()

	if err := Migrate(db); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	if err := Seed(db); err != nil {
		log.Fatalf("error seeding: %s", err.Error())
	}

	return db
}

func ExpireRegistrationsJob() {
	started := time.Now()
	n, err := utils.ExpireStaleRegistrations(started, config.RegistrationGracePeriod())
	if err != nil {
		log.Printf("[%s] Error: %s\n", JOB_EXPIRE_REGISTRATIONS, err.Error())
	} else if n > 0 {
		log.Printf("[%s] Cancelled %d registrations\n", JOB_EXPIRE_REGISTRATIONS, n)
		common.InvalidateStats()
	}
	utils.RecordJobRun(JOB_EXPIRE_REGISTRATIONS, started, n, err)
}

func RefreshStatsJob() {
	started := time.Now()
	stats, err := utils.RefreshDashboardStats(context.Background())
	if err != nil {
		log.Printf("[%s] Error: %s\n", JOB_REFRESH_STATS, err.Error())
		utils.RecordJobRun(JOB_REFRESH_STATS, started, 0, err)
		return
	}
	utils.RecordJobRun(JOB_REFRESH_STATS, started, stats.Registrations, nil)
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	if _, err := lib.CreateCronJob(JOB_EXPIRE_REGISTRATIONS, time.Hour, ExpireRegistrationsJob); err != nil {
		log.Printf("Error scheduling %s: %s\n", JOB_EXPIRE_REGISTRATIONS, err.Error())
	}
	if lib.GetRedisClient() != nil {
		if _, err := lib.CreateCronJob(JOB_REFRESH_STATS, config.StatsRefreshInterval(), RefreshStatsJob); err != nil {
			log.Printf("Error scheduling %s: %s\n", JOB_REFRESH_STATS, err.Error())
		}
	}
	log.Println("Jobs in queue:", len(sched.Jobs()))
	sched.Start()
}

func StopScheduler() {
	if err := lib.StopScheduler(); err != nil {
		log.Printf("Error while stopping Scheduler: %s\n", err.Error())
	}
}

func InitBroker(ctx context.Context) {
	common.StartConsumers(ctx)
}
