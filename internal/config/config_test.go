package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "appointment"
password = "secret"
dbname = "appointments"

[logs]
file = "logs/app.log"
level = "info"

[catalog_service]
url = "http://catalog:8080"
timeout = 3

[booking]
slot_granularity_minutes = 15
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Booking.SlotGranularityMinutes)
	assert.Equal(t, "http://catalog:8080", cfg.CatalogService.URL)
	// Дефолты применяются к незаполненным секциям
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Contains(t, cfg.Database.DSN(), "host=localhost")
}

func TestLoad_DefaultGranularity(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "appointment"
dbname = "appointments"

[catalog_service]
url = "http://catalog:8080"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Booking.SlotGranularityMinutes)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database host",
			content: `
[database]
user = "appointment"
dbname = "appointments"

[catalog_service]
url = "http://catalog:8080"
`,
		},
		{
			name: "missing catalog service url",
			content: `
[database]
host = "localhost"
user = "appointment"
dbname = "appointments"
`,
		},
		{
			name: "granularity out of range",
			content: `
[database]
host = "localhost"
user = "appointment"
dbname = "appointments"

[catalog_service]
url = "http://catalog:8080"

[booking]
slot_granularity_minutes = 3
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
