package utils

import (
	"context"
	"rsud/src/config"
	"rsud/src/db"
	"rsud/src/lib"
	"rsud/src/models"
	"rsud/src/models/scopes"
	"rsud/src/types"
)

var DashboardPoli = []string{"umum", "anak", "gigi", "dalam"}

func GetDashboardStats() (*types.DashboardStats, error) {
	db := db.GetDb()
	stats := &types.DashboardStats{Poli: map[string]int64{}}
	if err := db.Model(&models.Doctor{}).Count(&stats.Doctors).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Registration{}).Count(&stats.Registrations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Message{}).Count(&stats.Messages).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Message{}).Where("is_read = ?", false).Count(&stats.UnreadMessages).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Registration{}).Scopes(scopes.WithPendingStatus).Count(&stats.PendingRegistrations).Error; err != nil {
		return nil, err
	}
	var rows []struct {
		Poli  string
		Total int64
	}
	if err := db.
		Model(&models.Registration{}).
		Select("poli, COUNT(*) AS total").
		Where("poli IN ?", DashboardPoli).
		Group("poli").
		Scan(&rows).
		Error; err != nil {
		return nil, err
	}
	for _, p := range DashboardPoli {
		stats.Poli[p] = 0
	}
	for _, r := range rows {
		stats.Poli[r.Poli] = r.Total
	}
	return stats, nil
}

func CachedDashboardStats(ctx context.Context) (*types.DashboardStats, error) {
	var stats types.DashboardStats
	if lib.CacheGet(ctx, lib.CACHE_KEY_STATS, &stats) {
		return &stats, nil
	}
	return RefreshDashboardStats(ctx)
}

func RefreshDashboardStats(ctx context.Context) (*types.DashboardStats, error) {
	stats, err := GetDashboardStats()
	if err != nil {
		return nil, err
	}
	lib.CacheSet(ctx, lib.CACHE_KEY_STATS, stats, config.CacheTTL())
	return stats, nil
}
