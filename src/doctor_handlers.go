package main

import (
	"log"
	"net/http"
	"rsud/src/config"
	"rsud/src/db"
	"rsud/src/lib"
	"rsud/src/models"
	"rsud/src/types"

	"github.com/gin-gonic/gin"
)

func publicDoctorHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/doctors", func(ctx *gin.Context) {
			doctors := []models.Doctor{}
			if lib.CacheGet(ctx, lib.CACHE_KEY_DOCTORS, &doctors) {
				ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": doctors})
				return
			}
			db := db.GetDb()
			if err := db.Order("id asc").Find(&doctors).Error; err != nil {
				log.Printf("Error listing doctors: %s\n", err.Error())
				abortWithError(ctx, err)
				return
			}
			lib.CacheSet(ctx, lib.CACHE_KEY_DOCTORS, doctors, config.CacheTTL())
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": doctors})
		})
	return g
}

func doctorHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/doctors/:id", getRow[models.Doctor]).
		POST("/doctors", func(ctx *gin.Context) {
			var body types.DoctorRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			doctor := models.Doctor{
				Name:      body.Name,
				Specialty: body.Specialty,
				Image:     body.Image,
				Schedule:  body.Schedule,
				Available: body.Available,
			}
			if createRow(ctx, &doctor) {
				lib.CacheDel(ctx, lib.CACHE_KEY_DOCTORS, lib.CACHE_KEY_STATS)
			}
		}).
		PUT("/doctors/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			var body types.DoctorRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if updateRow[models.Doctor](ctx, id, map[string]any{
				"name":      body.Name,
				"specialty": body.Specialty,
				"image":     body.Image,
				"schedule":  body.Schedule,
				"available": body.Available,
			}) {
				lib.CacheDel(ctx, lib.CACHE_KEY_DOCTORS)
			}
		}).
		DELETE("/doctors/:id", func(ctx *gin.Context) {
			if deleteRow[models.Doctor](ctx) {
				lib.CacheDel(ctx, lib.CACHE_KEY_DOCTORS, lib.CACHE_KEY_STATS)
			}
		})
	return g
}
