package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DRIVER_SQLITE   = "sqlite"
	DRIVER_POSTGRES = "postgres"
)

const DATE_FORMAT = "2006-01-02"

var (
	API_ENV        = os.Getenv("API_ENV")
	ADMIN_USERNAME = getEnv("ADMIN_USERNAME", "admin")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "admin123")
)

// Reload re-reads the values captured at package init. Call it after the
// environment has been populated from a .env file or a secrets store.
func Reload() {
	API_ENV = os.Getenv("API_ENV")
	ADMIN_USERNAME = getEnv("ADMIN_USERNAME", "admin")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "admin123")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}

func DatabaseDriver() string {
	driver := strings.ToLower(getEnv("DATABASE_DRIVER", DRIVER_SQLITE))
	if driver == "postgresql" || driver == "supabase" {
		return DRIVER_POSTGRES
	}
	return driver
}

// GetDSN returns the connection string for the configured driver. For sqlite
// this is a file path.
func GetDSN() string {
	if DatabaseDriver() != DRIVER_POSTGRES {
		return getEnv("SQLITE_PATH", "hospital.db")
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := getEnv("DATABASE_PORT", "5432")
	DATABASE_SSLMODE := getEnv("DATABASE_SSLMODE", "disable")
	DATABASE_TIMEZONE := getEnv("DATABASE_TIMEZONE", "Asia/Jakarta")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

func JWTSecret() []byte {
	return []byte(getEnv("JWT_SECRET", "rsud-dolopo-local-secret"))
}

func AdminTokenTTL() time.Duration {
	return getDuration("ADMIN_TOKEN_TTL", 12*time.Hour)
}

func PatientTokenTTL() time.Duration {
	return getDuration("PATIENT_TOKEN_TTL", 2*time.Hour)
}

func CacheTTL() time.Duration {
	return getDuration("CACHE_TTL", 5*time.Minute)
}

// RegistrationGracePeriod is how long past its visit date a Pending
// registration is kept before the expiry job cancels it.
func RegistrationGracePeriod() time.Duration {
	return getDuration("REGISTRATION_GRACE_PERIOD", 24*time.Hour)
}

func StatsRefreshInterval() time.Duration {
	return getDuration("STATS_REFRESH_INTERVAL", time.Minute)
}

// MailQueue selects how notification emails leave the process: "smtp" and
// "ses" send directly, "sqs" and "kafka" enqueue for a consumer. Empty
// disables mail.
func MailQueue() string {
	return strings.ToLower(os.Getenv("MAIL_QUEUE"))
}

func MailFrom() string {
	return getEnv("MAIL_FROM", "noreply@rsuddolopo.go.id")
}

func MailFromName() string {
	return getEnv("MAIL_FROM_NAME", "RSUD Dolopo")
}

func EmailQueueName() string {
	return getEnv("EMAIL_QUEUE", "EmailsToSend")
}

func KafkaBroker() string {
	return os.Getenv("KAFKA_BROKER")
}

func RegistrationTopic() string {
	return getEnv("KAFKA_REGISTRATION_TOPIC", "registrations")
}

func SMSEnabled() bool {
	return getBool("SMS_ENABLED")
}

func AssetsBucket() string {
	return os.Getenv("S3_ASSETS_BUCKET")
}

func RealtimeEnabled() bool {
	return !getBool("REALTIME_DISABLED")
}

func IsProd() bool {
	return API_ENV == "production"
}

func Port() string {
	return getEnv("PORT", "9090")
}
