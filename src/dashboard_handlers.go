package main

import (
	"log"
	"net/http"
	"rsud/src/utils"

	"github.com/gin-gonic/gin"
)

func dashboardHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/dashboard/stats", func(ctx *gin.Context) {
			stats, err := utils.CachedDashboardStats(ctx)
			if err != nil {
				log.Printf("Error computing dashboard stats: %s\n", err.Error())
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": stats})
		}).
		GET("/dashboard/jobs", func(ctx *gin.Context) {
			runs, err := utils.ListJobRuns(20)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": runs})
		})
	return g
}
