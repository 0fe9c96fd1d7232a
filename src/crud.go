package main

import (
	"errors"
	"log"
	"net/http"
	"rsud/src/db"
	"rsud/src/lib"
	"rsud/src/models/scopes"
	"rsud/src/types"
	"rsud/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// statusFor maps domain and gorm errors to a response status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, utils.ErrNIKNotFound):
		return http.StatusNotFound
	case errors.Is(err, utils.ErrInvalidCredentials), errors.Is(err, utils.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, lib.ErrAWSUnavailable), errors.Is(err, lib.ErrBucketNotSet):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

func abortWithError(ctx *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		msg = "not found"
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func bindID(ctx *gin.Context) (uint, bool) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	return params.ID, true
}

func listRows[T any](ctx *gin.Context, order string) {
	rows := []T{}
	db := db.GetDb()
	if err := db.Order(order).Find(&rows).Error; err != nil {
		log.Printf("Error listing %T: %s\n", rows, err.Error())
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": rows})
}

func getRow[T any](ctx *gin.Context) {
	id, ok := bindID(ctx)
	if !ok {
		return
	}
	var row T
	db := db.GetDb()
	if err := db.Scopes(scopes.WithID(id)).First(&row).Error; err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": row})
}

func createRow[T any](ctx *gin.Context, row *T) bool {
	db := db.GetDb()
	if err := db.Create(row).Error; err != nil {
		log.Printf("Error creating %T: %s\n", row, err.Error())
		abortWithError(ctx, err)
		return false
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "success", "data": row})
	return true
}

// updateRow writes every column in updates, including zero values, and
// answers 404 for an unknown id.
func updateRow[T any](ctx *gin.Context, id uint, updates map[string]any) bool {
	var changes int64
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).Scopes(scopes.WithID(id)).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		result := tx.Model(new(T)).Scopes(scopes.WithID(id)).Updates(updates)
		changes = result.RowsAffected
		return result.Error
	})
	if err != nil {
		abortWithError(ctx, err)
		return false
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "updated", "changes": changes})
	return true
}

func deleteRow[T any](ctx *gin.Context) bool {
	id, ok := bindID(ctx)
	if !ok {
		return false
	}
	db := db.GetDb()
	result := db.Delete(new(T), id)
	if result.Error != nil {
		abortWithError(ctx, result.Error)
		return false
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "deleted", "changes": result.RowsAffected})
	return true
}
