package utils

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"rsud/src/config"
	"rsud/src/types"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateJWT(subject string, role string, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    "rsud-api",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

func ParseJWT(raw string) (*types.Claims, error) {
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return config.JWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

var nikPattern = regexp.MustCompile(`^\d{10,16}$`)

// ValidNIK reports whether nik has the shape of an Indonesian NIK.
func ValidNIK(nik string) bool {
	return nikPattern.MatchString(nik)
}

type DataURL struct {
	ContentType string
	Data        []byte
}

func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// ParseDataURL decodes a base64 "data:<type>;base64,<payload>" string as sent
// by the browser file reader.
func ParseDataURL(s string) (*DataURL, error) {
	if !IsDataURL(s) {
		return nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return nil, ErrInvalidDataURL
	}
	contentType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, ErrInvalidDataURL
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataURL, err.Error())
	}
	return &DataURL{ContentType: contentType, Data: data}, nil
}

func ExtensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	}
	return ".bin"
}

var proofContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

func AllowedProofType(contentType string) bool {
	return proofContentTypes[strings.ToLower(contentType)]
}

// ParsePaymentProof accepts only base64 data URLs of an image or a PDF.
func ParsePaymentProof(proof string) (*DataURL, error) {
	parsed, err := ParseDataURL(proof)
	if err != nil {
		return nil, ErrInvalidProof
	}
	if !AllowedProofType(parsed.ContentType) {
		return nil, ErrInvalidProof
	}
	return parsed, nil
}
