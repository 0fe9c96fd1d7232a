package middlewares

import (
	"errors"
	"log"
	"net/http"
	"rsud/src/types"
	"rsud/src/utils"

	"github.com/gin-gonic/gin"
)

var ErrForbidden = errors.New("Forbidden")

// CheckToken parses raw and requires role. A token of another role yields
// ErrForbidden.
func CheckToken(raw string, role string) (*types.Claims, error) {
	claims, err := utils.ParseJWT(raw)
	if err != nil {
		return nil, err
	}
	if claims.Role != role {
		return nil, ErrForbidden
	}
	return claims, nil
}

func authorize(ctx *gin.Context, role string) (*types.Claims, bool) {
	reqToken, err := bearerToken(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, false
	}
	claims, err := CheckToken(reqToken, role)
	if errors.Is(err, ErrForbidden) {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return nil, false
	}
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	ctx.Set("role", claims.Role)
	ctx.Set("claims", claims)
	return claims, true
}

// AdminAuth guards the back-office routes.
func AdminAuth(ctx *gin.Context) {
	claims, ok := authorize(ctx, types.ROLE_ADMIN)
	if !ok {
		return
	}
	ctx.Set("username", claims.Username)
}

// PatientAuth guards the patient portal. The token subject is the NIK.
func PatientAuth(ctx *gin.Context) {
	claims, ok := authorize(ctx, types.ROLE_PATIENT)
	if !ok {
		return
	}
	ctx.Set("nik", claims.Subject)
}
