package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"rsud/src/boot"
	"rsud/src/config"
	"rsud/src/db"
	"rsud/src/types"
	"rsud/src/utils"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type TestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Router *gin.Engine
	Token  *string
}

func NewTestDB() *gorm.DB {
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening sqlite database", err)
	}
	sqlDB, _ := d.DB()
	sqlDB.SetMaxOpenConns(1)
	return d
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("REDIS_HOST", "")
	os.Setenv("MAIL_QUEUE", "")
	os.Setenv("KAFKA_BROKER", "")
	os.Setenv("SMS_ENABLED", "false")
	os.Setenv("S3_ASSETS_BUCKET", "")
	os.Setenv("MAINTENANCE_MODE", "false")
	os.Setenv("TEMP_DIR", s.T().TempDir())

	registerValidators()

	d := NewTestDB()
	db.NewDB(d)
	s.DB = d
	if err := boot.Migrate(d); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	if err := boot.Seed(d); err != nil {
		log.Fatalf("error seeding: %s", err.Error())
	}

	router := setupRouter()
	publicRoutes(router)
	adminRoutes(router)
	s.Router = router

	token, err := utils.GenerateJWT("admin", types.ROLE_ADMIN, "admin", time.Hour)
	if err != nil {
		log.Fatalf("Error generating JWT token: %s\n", err.Error())
	}
	s.Token = &token
}

func (s *TestSuite) TearDownSuite() {
	inner, err := s.DB.DB()
	if err != nil {
		log.Printf("Error accessing inner db instance: %s\n", err.Error())
		return
	}
	inner.Close()
}

func (s *TestSuite) request(method string, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	switch b := body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(b)
	default:
		rbytes, err := json.Marshal(b)
		assert.Nil(s.T(), err)
		reader = strings.NewReader(string(rbytes))
	}
	req, err := http.NewRequest(method, url, reader)
	assert.Nil(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) admin(method string, url string, body any) *httptest.ResponseRecorder {
	return s.request(method, url, body, *s.Token)
}

func (s *TestSuite) newRegistration(nik string, payment string) uint {
	w := s.request("POST", "/api/register", map[string]any{
		"nik":     nik,
		"name":    "Ahmad Dahlan",
		"email":   "ahmad@example.com",
		"phone":   "08123456789",
		"poli":    "umum",
		"date":    "2026-11-02",
		"payment": payment,
	}, "")
	s.Require().Equal(200, w.Code, w.Body.String())
	return uint(gjson.Get(w.Body.String(), "data.id").Uint())
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	assert.NotEmpty(s.T(), w.Header().Get("X-Request-ID"))
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Setenv("MAINTENANCE_MODE", "false")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiGroup(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestHealth() {
	w := s.request("GET", "/api/health", nil, "")
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), "ok", gjson.Get(w.Body.String(), "status").String())
}

func (s *TestSuite) TestAuthRoutes() {
	s.Run("Should issue an admin token", func() {
		w := s.request("POST", "/api/auth/login", map[string]any{"username": "admin", "password": "admin123"}, "")
		assert.Equal(s.T(), 200, w.Code)
		token := gjson.Get(w.Body.String(), "token").String()
		claims, err := utils.ParseJWT(token)
		assert.NoError(s.T(), err)
		assert.Equal(s.T(), types.ROLE_ADMIN, claims.Role)
	})

	s.Run("Should reject a wrong password", func() {
		w := s.request("POST", "/api/auth/login", map[string]any{"username": "admin", "password": "nope"}, "")
		assert.Equal(s.T(), 401, w.Code)
		assert.Equal(s.T(), utils.ErrInvalidCredentials.Error(), gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should reject a missing body", func() {
		w := s.request("POST", "/api/auth/login", map[string]any{"username": "admin"}, "")
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should guard admin routes", func() {
		w := s.request("GET", "/api/registrations", nil, "")
		assert.Equal(s.T(), 401, w.Code)
	})
}

func (s *TestSuite) TestDoctors() {
	s.Run("Should list seeded doctors publicly", func() {
		w := s.request("GET", "/api/doctors", nil, "")
		assert.Equal(s.T(), 200, w.Code)
		assert.GreaterOrEqual(s.T(), gjson.Get(w.Body.String(), "data.#").Int(), int64(6))
		assert.Equal(s.T(), "dr. Andi Wijaya, Sp.PD", gjson.Get(w.Body.String(), "data.0.name").String())
	})

	s.Run("Should require a token to create", func() {
		w := s.request("POST", "/api/doctors", map[string]any{"name": "dr. Test", "specialty": "Umum"}, "")
		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should create, update and delete", func() {
		w := s.admin("POST", "/api/doctors", map[string]any{"name": "dr. Rina, Sp.KK", "specialty": "Kulit", "available": true})
		assert.Equal(s.T(), 200, w.Code)
		id := gjson.Get(w.Body.String(), "data.id").Uint()
		assert.True(s.T(), gjson.Get(w.Body.String(), "data.available").Bool())

		w = s.admin("PUT", fmt.Sprintf("/api/doctors/%d", id), map[string]any{"name": "dr. Rina, Sp.KK", "specialty": "Kulit", "available": false})
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "updated", gjson.Get(w.Body.String(), "message").String())
		assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "changes").Int())

		w = s.admin("GET", fmt.Sprintf("/api/doctors/%d", id), nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.False(s.T(), gjson.Get(w.Body.String(), "data.available").Bool())

		w = s.admin("DELETE", fmt.Sprintf("/api/doctors/%d", id), nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "changes").Int())

		w = s.admin("GET", fmt.Sprintf("/api/doctors/%d", id), nil)
		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should reject an incomplete doctor", func() {
		w := s.admin("POST", "/api/doctors", map[string]any{"specialty": "Kulit"})
		assert.Equal(s.T(), 400, w.Code)
		assert.NotEmpty(s.T(), gjson.Get(w.Body.String(), "error").String())
	})
}

func (s *TestSuite) TestRegistrations() {
	s.Run("Should reject missing fields", func() {
		w := s.request("POST", "/api/register", map[string]any{"nik": "3502010101010001", "name": "Ahmad"}, "")
		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), "Semua field wajib diisi", gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should register a BPJS patient", func() {
		w := s.request("POST", "/api/register", map[string]any{
			"nik": "3502010101010001", "name": "Ahmad Dahlan", "email": "ahmad@example.com",
			"phone": "08123456789", "poli": "dalam", "date": "2026-11-02", "payment": "bpjs",
		}, "")
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		id := gjson.Get(body, "data.id").Uint()
		assert.Equal(s.T(), "success", gjson.Get(body, "message").String())
		assert.Equal(s.T(), fmt.Sprintf("REG-%04d", id), gjson.Get(body, "data.bookingCode").String())
		assert.Equal(s.T(), "Paid", gjson.Get(body, "data.payment_status").String())
		assert.Equal(s.T(), "BPJS Kesehatan", gjson.Get(body, "data.payment_detail").String())
		assert.Equal(s.T(), "Pending", gjson.Get(body, "data.status").String())
	})

	s.Run("Should reject a malformed NIK on both routes", func() {
		w := s.request("POST", "/api/register", map[string]any{
			"nik": "12345", "name": "Siti", "email": "siti@example.com",
			"phone": "08123456789", "poli": "anak", "date": "2026-11-02",
		}, "")
		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), utils.ErrInvalidNIK.Error(), gjson.Get(w.Body.String(), "error").String())

		w = s.request("GET", "/api/patient/check-nik/12345", nil, "")
		assert.Equal(s.T(), 400, w.Code)
	})

	id := s.newRegistration("3502010101010002", "umum")
	url := fmt.Sprintf("/api/registrations/%d", id)

	s.Run("Should list newest first", func() {
		w := s.admin("GET", "/api/registrations", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), uint64(id), gjson.Get(w.Body.String(), "data.0.id").Uint())
	})

	s.Run("Should reject an empty patch", func() {
		w := s.admin("PUT", url, map[string]any{"payment_detail": ""})
		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), "No fields to update", gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should reject an unknown status", func() {
		w := s.admin("PUT", url, map[string]any{"status": "Done"})
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should return 404 for unknown ids", func() {
		w := s.admin("PUT", "/api/registrations/99999", map[string]any{"status": "Confirmed"})
		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should apply a partial update", func() {
		w := s.admin("PUT", url, map[string]any{"status": "Confirmed", "cost": 400000, "class_type": "Kelas 1"})
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "updated", gjson.Get(w.Body.String(), "message").String())

		w = s.admin("GET", url, nil)
		body := w.Body.String()
		assert.Equal(s.T(), "Confirmed", gjson.Get(body, "data.status").String())
		assert.Equal(s.T(), int64(400000), gjson.Get(body, "data.cost").Int())
		assert.Equal(s.T(), "1", gjson.Get(body, "data.facility").String())
		assert.Equal(s.T(), "Unpaid", gjson.Get(body, "data.payment_status").String())
	})

	s.Run("Should serve the payment proof", func() {
		w := s.admin("GET", url+"/payment-proof", nil)
		assert.Equal(s.T(), 404, w.Code)

		proof := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake-png"))
		w = s.admin("PUT", url, map[string]any{"payment_proof": proof, "payment_status": "Paid"})
		assert.Equal(s.T(), 200, w.Code)

		w = s.admin("GET", url+"/payment-proof", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "image/png", w.Header().Get("Content-Type"))
		assert.Equal(s.T(), "fake-png", w.Body.String())

		html := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte("<script>alert(1)</script>"))
		for _, bad := range []string{html, "https://evil.example/phish"} {
			w = s.admin("PUT", url, map[string]any{"payment_proof": bad})
			assert.Equal(s.T(), 400, w.Code, bad)
			assert.Equal(s.T(), utils.ErrInvalidProof.Error(), gjson.Get(w.Body.String(), "error").String())
		}

		w = s.admin("GET", url+"/payment-proof", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "image/png", w.Header().Get("Content-Type"))
	})

	s.Run("Should render the booking QR code", func() {
		w := s.request("GET", url+"/qrcode", nil, "")
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "image/jpeg", w.Header().Get("Content-Type"))
		assert.Greater(s.T(), w.Body.Len(), 0)
	})

	s.Run("Should expose the audit trail", func() {
		w := s.admin("GET", url+"/trail", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.True(s.T(), gjson.Get(w.Body.String(), "data").IsArray())
	})

	s.Run("Should delete", func() {
		w := s.admin("DELETE", url, nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "deleted", gjson.Get(w.Body.String(), "message").String())
		assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "changes").Int())

		w = s.admin("GET", url, nil)
		assert.Equal(s.T(), 404, w.Code)
	})
}

func (s *TestSuite) TestPatientPortal() {
	nik := "3502010101019999"
	id := s.newRegistration(nik, "umum")

	s.Run("Should check a NIK", func() {
		w := s.request("GET", "/api/patient/check-nik/"+nik, nil, "")
		assert.Equal(s.T(), 200, w.Code)
		assert.True(s.T(), gjson.Get(w.Body.String(), "exists").Bool())

		w = s.request("GET", "/api/patient/check-nik/3502019999999998", nil, "")
		assert.Equal(s.T(), 200, w.Code)
		assert.False(s.T(), gjson.Get(w.Body.String(), "exists").Bool())

		w = s.request("GET", "/api/patient/check-nik/abc", nil, "")
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject a short unknown NIK", func() {
		w := s.request("POST", "/api/patient/login", map[string]any{"nik": "12345"}, "")
		assert.Equal(s.T(), 404, w.Code)
		assert.Equal(s.T(), "NIK tidak ditemukan", gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should accept a new patient", func() {
		w := s.request("POST", "/api/patient/login", map[string]any{"nik": "3502019999999998"}, "")
		assert.Equal(s.T(), 200, w.Code)
		assert.True(s.T(), gjson.Get(w.Body.String(), "found").Bool())
		assert.Equal(s.T(), int64(0), gjson.Get(w.Body.String(), "data.#").Int())
	})

	w := s.request("POST", "/api/patient/login", map[string]any{"nik": nik}, "")
	s.Require().Equal(200, w.Code)
	token := gjson.Get(w.Body.String(), "token").String()
	assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "data.#").Int())

	s.Run("Should list own registrations", func() {
		w := s.request("GET", "/api/patient/registrations", nil, "")
		assert.Equal(s.T(), 401, w.Code)

		w = s.request("GET", "/api/patient/registrations", nil, *s.Token)
		assert.Equal(s.T(), 403, w.Code)

		w = s.request("GET", "/api/patient/registrations", nil, token)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), uint64(id), gjson.Get(w.Body.String(), "data.0.id").Uint())
	})

	s.Run("Should list banks by method", func() {
		w := s.request("GET", "/api/patient/banks?method=VA", nil, "")
		assert.Equal(s.T(), 200, w.Code)
		for _, bank := range gjson.Get(w.Body.String(), "data").Array() {
			assert.Equal(s.T(), "VA", bank.Get("type").String())
			assert.True(s.T(), bank.Get("is_active").Bool())
		}

		w = s.request("GET", "/api/patient/banks?method=Cash", nil, "")
		assert.Equal(s.T(), 400, w.Code)
	})

	url := fmt.Sprintf("/api/patient/registrations/%d/payment", id)

	s.Run("Should require a bank for transfers", func() {
		w := s.request("POST", url, map[string]any{"method": "Transfer"}, token)
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject a bank of another type", func() {
		w := s.request("GET", "/api/patient/banks?method=Transfer", nil, "")
		transferID := gjson.Get(w.Body.String(), "data.0.id").Uint()

		w = s.request("POST", url, map[string]any{"method": "VA", "bank_id": transferID}, token)
		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), utils.ErrBankUnavailable.Error(), gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should reject proofs that are not images or PDFs", func() {
		w := s.request("GET", "/api/patient/banks?method=VA", nil, "")
		bankID := gjson.Get(w.Body.String(), "data.0.id").Uint()

		html := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte("<script>alert(localStorage)</script>"))
		svg := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte("<svg onload=alert(1)>"))
		for _, bad := range []string{html, svg, "https://evil.example/phish"} {
			w = s.request("POST", url, map[string]any{"method": "VA", "bank_id": bankID, "proof": bad}, token)
			assert.Equal(s.T(), 400, w.Code, bad)
			assert.Equal(s.T(), utils.ErrInvalidProof.Error(), gjson.Get(w.Body.String(), "error").String())
		}

		w = s.admin("GET", fmt.Sprintf("/api/registrations/%d", id), nil)
		assert.Equal(s.T(), "Unpaid", gjson.Get(w.Body.String(), "data.payment_status").String())
		assert.Empty(s.T(), gjson.Get(w.Body.String(), "data.payment_proof").String())
	})

	s.Run("Should record a VA payment with proof", func() {
		w := s.request("GET", "/api/patient/banks?method=VA", nil, "")
		bank := gjson.Get(w.Body.String(), "data.0")

		w = s.request("POST", url, map[string]any{
			"method":  "VA",
			"bank_id": bank.Get("id").Uint(),
			"proof":   "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
		}, token)
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), "VA via "+bank.Get("bank_name").String(), gjson.Get(body, "data.payment_detail").String())
		assert.Equal(s.T(), "Paid", gjson.Get(body, "data.payment_status").String())
		assert.Equal(s.T(), "Umum", gjson.Get(body, "data.facility").String())
	})

	s.Run("Should not pay for another patient's registration", func() {
		other, _ := utils.GenerateJWT("3502019999999997", types.ROLE_PATIENT, "", time.Hour)
		w := s.request("POST", url, map[string]any{"method": "Tunai"}, other)
		assert.Equal(s.T(), 404, w.Code)
	})
}

func (s *TestSuite) TestMessages() {
	s.Run("Should validate the email", func() {
		w := s.request("POST", "/api/contact", map[string]any{"name": "Budi", "email": "bukan-email", "message": "Halo"}, "")
		assert.Equal(s.T(), 400, w.Code)
	})

	w := s.request("POST", "/api/contact", map[string]any{"name": "Budi", "email": "budi@example.com", "subject": "Jadwal", "message": "Halo"}, "")
	s.Require().Equal(200, w.Code)
	id := gjson.Get(w.Body.String(), "id").Uint()
	url := fmt.Sprintf("/api/messages/%d", id)

	s.Run("Should list newest first", func() {
		w := s.admin("GET", "/api/messages", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), id, gjson.Get(w.Body.String(), "data.0.id").Uint())
		assert.False(s.T(), gjson.Get(w.Body.String(), "data.0.is_read").Bool())
	})

	s.Run("Should reject an empty patch", func() {
		w := s.admin("PUT", url, map[string]any{"subject": ""})
		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), "No fields to update", gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should mark as read", func() {
		w := s.admin("PUT", url, map[string]any{"is_read": true})
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "changes").Int())
	})

	s.Run("Should delete", func() {
		w := s.admin("DELETE", url, nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "changes").Int())
	})
}

func (s *TestSuite) TestResources() {
	s.Run("Should list facilities and rooms publicly", func() {
		w := s.request("GET", "/api/facilities", nil, "")
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "Pendaftaran Umum", gjson.Get(w.Body.String(), "data.0.name").String())

		w = s.request("GET", "/api/rooms", nil, "")
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "data.0.available_beds").Int())
	})

	s.Run("Should reject more occupied than total beds", func() {
		w := s.admin("POST", "/api/rooms", map[string]any{"name": "Dahlia 01", "class_type": "Kelas 2", "total_beds": 2, "occupied_beds": 3, "price": 250000})
		assert.Equal(s.T(), 400, w.Code)

		w = s.admin("POST", "/api/rooms", map[string]any{"name": "Dahlia 01", "class_type": "Kelas 2", "total_beds": 4, "occupied_beds": 3, "price": 250000})
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "data.available_beds").Int())
	})

	s.Run("Should return 404 when updating an unknown room", func() {
		w := s.admin("PUT", "/api/rooms/99999", map[string]any{"name": "X", "total_beds": 1, "occupied_beds": 0})
		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should validate bank types", func() {
		w := s.admin("POST", "/api/banks", map[string]any{"bank_name": "Kas", "account_number": "1", "type": "Cash"})
		assert.Equal(s.T(), 400, w.Code)

		w = s.admin("POST", "/api/banks", map[string]any{"bank_name": "BSI", "account_number": "7001", "account_name": "RSUD Dolopo", "type": "Transfer", "is_active": false})
		assert.Equal(s.T(), 200, w.Code)
		assert.False(s.T(), gjson.Get(w.Body.String(), "data.is_active").Bool())
	})

	s.Run("Should manage staff users", func() {
		w := s.admin("POST", "/api/users", map[string]any{"name": "Rina"})
		assert.Equal(s.T(), 400, w.Code)

		w = s.admin("POST", "/api/users", map[string]any{"name": "Rina", "username": "rina01", "role": "Perawat", "status": "Active"})
		assert.Equal(s.T(), 200, w.Code)
		id := gjson.Get(w.Body.String(), "data.id").Uint()

		w = s.admin("PUT", fmt.Sprintf("/api/users/%d", id), map[string]any{"name": "Rina", "username": "rina01", "role": "Perawat", "status": "Inactive"})
		assert.Equal(s.T(), 200, w.Code)

		w = s.admin("GET", fmt.Sprintf("/api/users/%d", id), nil)
		assert.Equal(s.T(), "Inactive", gjson.Get(w.Body.String(), "data.status").String())
	})

	s.Run("Should validate BPJS card numbers", func() {
		w := s.admin("POST", "/api/bpjs", map[string]any{"card_number": "abc", "name": "Joko"})
		assert.Equal(s.T(), 400, w.Code)

		w = s.admin("GET", "/api/bpjs", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.GreaterOrEqual(s.T(), gjson.Get(w.Body.String(), "data.#").Int(), int64(1))
	})
}

func (s *TestSuite) TestDashboard() {
	w := s.admin("GET", "/api/dashboard/stats", nil)
	assert.Equal(s.T(), 200, w.Code)
	body := w.Body.String()
	assert.GreaterOrEqual(s.T(), gjson.Get(body, "data.doctors").Int(), int64(6))
	for _, poli := range utils.DashboardPoli {
		assert.True(s.T(), gjson.Get(body, "data.poli."+poli).Exists(), poli)
	}

	w = s.admin("GET", "/api/dashboard/jobs", nil)
	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestRealtimeAccess() {
	s.Run("Should only admit admin tokens", func() {
		assert.NoError(s.T(), authorizeRealtimeAdmin(*s.Token))

		patient, err := utils.GenerateJWT("3502010101010001", types.ROLE_PATIENT, "3502010101010001", time.Hour)
		s.Require().NoError(err)
		assert.Error(s.T(), authorizeRealtimeAdmin(patient))
		assert.Error(s.T(), authorizeRealtimeAdmin("not-a-jwt"))
		assert.Error(s.T(), authorizeRealtimeAdmin(""))
	})

	s.Run("Should follow APP_HOST outside local", func() {
		env := config.API_ENV
		defer func() { config.API_ENV = env }()

		config.API_ENV = "local"
		assert.Equal(s.T(), "*", realtimeOrigin())

		config.API_ENV = "production"
		s.T().Setenv("APP_HOST", "")
		assert.Equal(s.T(), false, realtimeOrigin())

		s.T().Setenv("APP_HOST", `^https://admin\.rsud\.example$`)
		re, ok := realtimeOrigin().(*regexp.Regexp)
		s.Require().True(ok)
		assert.True(s.T(), re.MatchString("https://admin.rsud.example"))
		assert.False(s.T(), re.MatchString("https://evil.example"))
	})
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
