package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	assert.Equal(t, DRIVER_SQLITE, DatabaseDriver())

	t.Setenv("DATABASE_DRIVER", "Supabase")
	assert.Equal(t, DRIVER_POSTGRES, DatabaseDriver())
}

func TestGetDSN(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "")
	assert.Equal(t, "hospital.db", GetDSN())

	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_HOST", "db.local")
	t.Setenv("DATABASE_USER", "rsud")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_NAME", "hospital")
	t.Setenv("DATABASE_PORT", "")
	t.Setenv("DATABASE_SSLMODE", "")
	t.Setenv("DATABASE_TIMEZONE", "")
	assert.Equal(t, "host=db.local user=rsud password=secret dbname=hospital port=5432 sslmode=disable TimeZone=Asia/Jakarta", GetDSN())

	t.Setenv("DATABASE_URL", "postgresql://rsud@db.local/hospital")
	assert.Equal(t, "postgresql://rsud@db.local/hospital", GetDSN())
}

func TestDurations(t *testing.T) {
	t.Setenv("CACHE_TTL", "30s")
	assert.Equal(t, 30*time.Second, CacheTTL())

	t.Setenv("CACHE_TTL", "bogus")
	assert.Equal(t, 5*time.Minute, CacheTTL())
}

func TestReload(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	Reload()
	assert.Equal(t, "admin", ADMIN_USERNAME)
	assert.Equal(t, "admin123", ADMIN_PASSWORD)

	t.Setenv("ADMIN_USERNAME", "direktur")
	Reload()
	assert.Equal(t, "direktur", ADMIN_USERNAME)
	t.Setenv("ADMIN_USERNAME", "")
	Reload()
}
