package controllers

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"rsud/src/config"
	"rsud/src/models"
	"rsud/src/types"
	"rsud/src/utils"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminHash     []byte
	adminHashOnce sync.Once
)

// adminPasswordHash hashes the configured admin password once so login
// compares against a bcrypt digest rather than the raw value.
func adminPasswordHash() []byte {
	adminHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(config.ADMIN_PASSWORD), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing admin password: %s\n", err.Error())
			return
		}
		adminHash = h
	})
	return adminHash
}

// ResetAdminCredentials drops the cached hash after config.Reload.
func ResetAdminCredentials() {
	adminHashOnce = sync.Once{}
	adminHash = nil
}

func AdminLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.AdminLoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	hash := adminPasswordHash()
	if hash == nil {
		return nil, http.StatusInternalServerError, errors.New("admin credentials are not configured")
	}
	userOk := subtle.ConstantTimeCompare([]byte(body.Username), []byte(config.ADMIN_USERNAME)) == 1
	passErr := bcrypt.CompareHashAndPassword(hash, []byte(body.Password))
	if !userOk || passErr != nil {
		return nil, http.StatusUnauthorized, utils.ErrInvalidCredentials
	}
	signed, err := utils.GenerateJWT(body.Username, types.ROLE_ADMIN, body.Username, config.AdminTokenTTL())
	if err != nil {
		log.Printf("Error generating admin token: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return &signed, http.StatusOK, nil
}

func PatientLogin(ctx *gin.Context) (token *string, registrations []models.Registration, status int, err error) {
	var body types.PatientLoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, nil, http.StatusBadRequest, err
	}
	nik := strings.TrimSpace(body.NIK)
	registrations, err = utils.LoginPatient(nik)
	if err != nil {
		if errors.Is(err, utils.ErrNIKNotFound) {
			return nil, nil, http.StatusNotFound, err
		}
		log.Printf("Error on patient login: %s\n", err.Error())
		return nil, nil, http.StatusInternalServerError, err
	}
	signed, err := utils.GenerateJWT(nik, types.ROLE_PATIENT, "", config.PatientTokenTTL())
	if err != nil {
		log.Printf("Error generating patient token: %s\n", err.Error())
		return nil, nil, http.StatusInternalServerError, err
	}
	return &signed, registrations, http.StatusOK, nil
}
