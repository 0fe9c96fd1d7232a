package main

import (
	"net/http"
	"rsud/src/models"
	"rsud/src/types"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/users", func(ctx *gin.Context) { listRows[models.User](ctx, "id asc") }).
		GET("/users/:id", getRow[models.User]).
		POST("/users", func(ctx *gin.Context) {
			var body types.UserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			createRow(ctx, &models.User{
				Name:     body.Name,
				Username: body.Username,
				Role:     body.Role,
				Status:   body.Status,
			})
		}).
		PUT("/users/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			var body types.UserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updateRow[models.User](ctx, id, map[string]any{
				"name":     body.Name,
				"username": body.Username,
				"role":     body.Role,
				"status":   body.Status,
			})
		}).
		DELETE("/users/:id", func(ctx *gin.Context) { deleteRow[models.User](ctx) })
	return g
}

func bpjsHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bpjs", func(ctx *gin.Context) { listRows[models.BPJS](ctx, "id asc") }).
		GET("/bpjs/:id", getRow[models.BPJS]).
		POST("/bpjs", func(ctx *gin.Context) {
			var body types.BPJSRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			createRow(ctx, &models.BPJS{
				CardNumber: body.CardNumber,
				Name:       body.Name,
				ClassType:  body.ClassType,
				Status:     body.Status,
				Faskes:     body.Faskes,
			})
		}).
		PUT("/bpjs/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			var body types.BPJSRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updateRow[models.BPJS](ctx, id, map[string]any{
				"card_number": body.CardNumber,
				"name":        body.Name,
				"class_type":  body.ClassType,
				"status":      body.Status,
				"faskes":      body.Faskes,
			})
		}).
		DELETE("/bpjs/:id", func(ctx *gin.Context) { deleteRow[models.BPJS](ctx) })
	return g
}

// publicFacilityHandlers exposes the tariff and bed availability pages.
func publicFacilityHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/facilities", func(ctx *gin.Context) { listRows[models.Facility](ctx, "id asc") }).
		GET("/rooms", func(ctx *gin.Context) { listRows[models.Room](ctx, "id asc") })
	return g
}

func facilityHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/facilities/:id", getRow[models.Facility]).
		POST("/facilities", func(ctx *gin.Context) {
			var body types.FacilityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			createRow(ctx, &models.Facility{
				Name:     body.Name,
				Category: body.Category,
				Price:    body.Price,
			})
		}).
		PUT("/facilities/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			var body types.FacilityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updateRow[models.Facility](ctx, id, map[string]any{
				"name":     body.Name,
				"category": body.Category,
				"price":    body.Price,
			})
		}).
		DELETE("/facilities/:id", func(ctx *gin.Context) { deleteRow[models.Facility](ctx) })
	return g
}

func roomHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/rooms/:id", getRow[models.Room]).
		POST("/rooms", func(ctx *gin.Context) {
			var body types.RoomRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			room := models.Room{
				Name:         body.Name,
				ClassType:    body.ClassType,
				TotalBeds:    body.TotalBeds,
				OccupiedBeds: body.OccupiedBeds,
				Price:        body.Price,
			}
			room.AvailableBeds = room.TotalBeds - room.OccupiedBeds
			createRow(ctx, &room)
		}).
		PUT("/rooms/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			var body types.RoomRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updateRow[models.Room](ctx, id, map[string]any{
				"name":          body.Name,
				"class_type":    body.ClassType,
				"total_beds":    body.TotalBeds,
				"occupied_beds": body.OccupiedBeds,
				"price":         body.Price,
			})
		}).
		DELETE("/rooms/:id", func(ctx *gin.Context) { deleteRow[models.Room](ctx) })
	return g
}

func bankHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/banks", func(ctx *gin.Context) { listRows[models.BankAccount](ctx, "id asc") }).
		GET("/banks/:id", getRow[models.BankAccount]).
		POST("/banks", func(ctx *gin.Context) {
			var body types.BankRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			createRow(ctx, &models.BankAccount{
				BankName:      body.BankName,
				AccountNumber: body.AccountNumber,
				AccountName:   body.AccountName,
				Type:          body.Type,
				IsActive:      body.IsActive,
			})
		}).
		PUT("/banks/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			var body types.BankRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updateRow[models.BankAccount](ctx, id, map[string]any{
				"bank_name":      body.BankName,
				"account_number": body.AccountNumber,
				"account_name":   body.AccountName,
				"type":           body.Type,
				"is_active":      body.IsActive,
			})
		}).
		DELETE("/banks/:id", func(ctx *gin.Context) { deleteRow[models.BankAccount](ctx) })
	return g
}
