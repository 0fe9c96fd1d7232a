package main

import (
	"log"
	"net/http"
	"rsud/src/common"
	"rsud/src/controllers"
	"rsud/src/middlewares"
	"rsud/src/models/scopes"
	"rsud/src/types"
	"rsud/src/utils"

	"github.com/gin-gonic/gin"
)

func patientHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	patient := g.Group("/patient")
	patient.
		GET("/check-nik/:nik", func(ctx *gin.Context) {
			var params types.NIKRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			exists, err := utils.CheckNik(params.NIK)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"exists": exists})
		}).
		POST("/login", func(ctx *gin.Context) {
			token, registrations, status, err := controllers.PatientLogin(ctx)
			if err != nil {
				log.Printf("[PatientLogin] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"found": true, "data": registrations, "token": token})
		}).
		GET("/banks", func(ctx *gin.Context) {
			var query types.BankQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			banks, err := utils.ListPaymentBanks(query.Method)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": banks})
		})

	portal := patient.Group("")
	portal.Use(middlewares.PatientAuth)
	portal.
		GET("/registrations", func(ctx *gin.Context) {
			registrations, err := utils.ListRegistrations(scopes.WithNIK(ctx.GetString("nik")))
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": registrations})
		}).
		POST("/registrations/:id/payment", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			var body types.SubmitPaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			nik := ctx.GetString("nik")
			before, after, err := utils.SubmitPayment(ctx, nik, id, &body)
			if err != nil {
				log.Printf("Error submitting payment for registration [%d]: %s\n", id, err.Error())
				abortWithError(ctx, err)
				return
			}
			go func() {
				utils.RecordRegistrationTrail("registration.payment", nik, before, after)
				common.OnRegistrationUpdated(*before, *after)
			}()
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": after})
		})
	return patient
}
