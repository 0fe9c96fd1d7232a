package main

import (
	"fmt"
	"log"
	"net/http"
	"path"
	"rsud/src/common"
	"rsud/src/lib"
	awslib "rsud/src/lib/aws"
	"rsud/src/models"
	"rsud/src/types"
	"rsud/src/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const proofURLExpiry = 15 * time.Minute

func publicRegistrationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/register", func(ctx *gin.Context) {
			var body types.CreateRegistrationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			registration, err := utils.CreateRegistration(&body)
			if err != nil {
				log.Printf("Error on registration: %s\n", err.Error())
				abortWithError(ctx, err)
				return
			}
			go common.OnRegistrationCreated(*registration)
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": registration})
		}).
		GET("/registrations/:id/qrcode", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			registration, err := utils.GetRegistration(id)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			filePath, err := lib.QRCodeFile(fmt.Sprintf("bookingcode_%s", registration.BookingCode), registration.BookingCode)
			if err != nil {
				log.Printf("Error generating qrcode for %s: %s\n", registration.BookingCode, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			ctx.Header("Content-Type", "image/jpeg")
			ctx.File(filePath)
		})
	return g
}

func registrationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/registrations", func(ctx *gin.Context) {
			registrations, err := utils.ListRegistrations()
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": registrations})
		}).
		GET("/registrations/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			registration, err := utils.GetRegistration(id)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": registration})
		}).
		PUT("/registrations/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			var body types.UpdateRegistrationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			before, after, err := utils.UpdateRegistration(ctx, id, &body)
			if err != nil {
				log.Printf("Error updating registration [%d]: %s\n", id, err.Error())
				abortWithError(ctx, err)
				return
			}
			username := ctx.GetString("username")
			go func() {
				utils.RecordRegistrationTrail(string(types.EVENT_REGISTRATION_UPDATED), username, before, after)
				common.OnRegistrationUpdated(*before, *after)
			}()
			ctx.JSON(http.StatusOK, gin.H{"message": "updated"})
		}).
		DELETE("/registrations/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			changes, err := utils.DeleteRegistration(id)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			go common.InvalidateStats()
			ctx.JSON(http.StatusOK, gin.H{"message": "deleted", "changes": changes})
		}).
		GET("/registrations/:id/trail", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			logs, err := utils.ListRegistrationTrail(id)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": logs})
		}).
		GET("/registrations/:id/payment-proof", func(ctx *gin.Context) {
			id, ok := bindID(ctx)
			if !ok {
				return
			}
			registration, err := utils.GetRegistration(id)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			servePaymentProof(ctx, registration)
		})
	return g
}

func servePaymentProof(ctx *gin.Context, registration *models.Registration) {
	proof := registration.PaymentProof
	switch {
	case proof == "":
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no payment proof"})
	case strings.HasPrefix(proof, utils.PAYMENT_PROOF_PREFIX) && ctx.Query("download") != "":
		data, err := awslib.S3DownloadAsset(ctx, proof)
		if err != nil {
			log.Printf("[S3] Error downloading %s: %s\n", proof, err.Error())
			abortWithError(ctx, err)
			return
		}
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(proof)))
		contentType := http.DetectContentType(data)
		if !utils.AllowedProofType(strings.Split(contentType, ";")[0]) {
			contentType = "application/octet-stream"
		}
		ctx.Data(http.StatusOK, contentType, data)
	case strings.HasPrefix(proof, utils.PAYMENT_PROOF_PREFIX):
		url, err := awslib.S3PresignAsset(ctx, proof, proofURLExpiry)
		if err != nil {
			log.Printf("[S3] Error presigning %s: %s\n", proof, err.Error())
			abortWithError(ctx, err)
			return
		}
		ctx.Redirect(http.StatusFound, url)
	case utils.IsDataURL(proof):
		parsed, err := utils.ParsePaymentProof(proof)
		if err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no payment proof"})
			return
		}
		ctx.Header("Content-Disposition", "inline")
		ctx.Data(http.StatusOK, parsed.ContentType, parsed.Data)
	default:
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no payment proof"})
	}
}
