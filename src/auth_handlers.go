package main

import (
	"log"
	"net/http"
	"rsud/src/controllers"

	"github.com/gin-gonic/gin"
)

func guestAuthRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	guest := g.Group("/auth")
	guest.
		POST("/login", func(ctx *gin.Context) {
			token, status, err := controllers.AdminLogin(ctx)
			if err != nil {
				log.Printf("[AdminLogin] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"token": token})
		})
	return guest
}
