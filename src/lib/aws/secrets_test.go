package aws

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportSecrets(t *testing.T) {
	t.Setenv("RSUD_TEST_EXISTING", "keep")
	os.Unsetenv("RSUD_TEST_NEW")
	defer os.Unsetenv("RSUD_TEST_NEW")

	err := ExportSecrets(`{"RSUD_TEST_EXISTING":"override","RSUD_TEST_NEW":"value"}`)
	assert.NoError(t, err)
	assert.Equal(t, "keep", os.Getenv("RSUD_TEST_EXISTING"))
	assert.Equal(t, "value", os.Getenv("RSUD_TEST_NEW"))

	assert.Error(t, ExportSecrets("not-json"))
}

func TestLoadSecretsWithoutId(t *testing.T) {
	t.Setenv("AWS_SECRET_ID", "")
	assert.NoError(t, LoadSecrets(t.Context()))
}
