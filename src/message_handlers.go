package main

import (
	"log"
	"net/http"
	"rsud/src/common"
	"rsud/src/db"
	"rsud/src/models"
	"rsud/src/models/scopes"
	"rsud/src/types"
	"rsud/src/utils"

	"github.com/gin-gonic/gin"
)

func publicMessageHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/contact", func(ctx *gin.Context) {
			var body types.CreateMessageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			message := models.Message{
				Name:    body.Name,
				Email:   body.Email,
				Phone:   body.Phone,
				Subject: body.Subject,
				Message: body.Message,
				IsRead:  false,
			}
			db := db.GetDb()
			if err := db.Create(&message).Error; err != nil {
				log.Printf("Error saving message: %s\n", err.Error())
				abortWithError(ctx, err)
				return
			}
			go common.OnMessageCreated(message)
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "id": message.ID})
		})
	return g
}

func messageHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/messages", func(ctx *gin.Context) {
			messages := []models.Message{}
			db := db.GetDb()
			if err := db.Scopes(scopes.Latest).Find(&messages).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": messages})
		}).
		PUT("/messages/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			var body types.UpdateMessageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.IsRead != nil {
				updates["is_read"] = *body.IsRead
			}
			if body.Subject != nil && *body.Subject != "" {
				updates["subject"] = *body.Subject
			}
			if body.Message != nil && *body.Message != "" {
				updates["message"] = *body.Message
			}
			if len(updates) == 0 {
				abortWithError(ctx, utils.ErrNoFieldsToUpdate)
				return
			}
			if updateRow[models.Message](ctx, id, updates) {
				go common.InvalidateStats()
			}
		}).
		DELETE("/messages/:id", func(ctx *gin.Context) {
			if deleteRow[models.Message](ctx) {
				go common.InvalidateStats()
			}
		})
	return g
}
