package config

import (
	"os"
	"path/filepath"
	"testing"

	"hoteldesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: hoteldesk-test
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hoteldesk-test", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "json", cfg.Storage.Driver)
	assert.Equal(t, "data", cfg.Storage.Dir)
	assert.Equal(t, "exports", cfg.Exports.Path)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 30, cfg.Backup.RetentionDays)
	assert.Equal(t, models.DefaultCatalog(), cfg.Rooms)
}

func TestLoadCustomRooms(t *testing.T) {
	path := writeConfig(t, `
rooms:
  - room_type: Single
    room_rate: 1800
    room_number: 11
  - room_type: Suite
    room_rate: 9000
    room_number: 21
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Rooms, 2)
	assert.Equal(t, 1800.0, cfg.Rooms[0].RoomRate)
	assert.Equal(t, 21, cfg.Rooms[1].RoomNumber)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("HOTELDESK_DATA_DIR", "/var/lib/hoteldesk")
	path := writeConfig(t, `
storage:
  driver: json
  dir: ${HOTELDESK_DATA_DIR}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/hoteldesk", cfg.Storage.Dir)
}

func TestLoadSQLiteDriverDefaultPath(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: sqlite
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/hoteldesk.db", cfg.Storage.SQLitePath)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: postgres
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateRooms(t *testing.T) {
	tests := []struct {
		name    string
		rooms   []models.Room
		wantErr bool
	}{
		{
			name:  "valid catalog",
			rooms: models.DefaultCatalog(),
		},
		{
			name: "duplicate number",
			rooms: []models.Room{
				{RoomType: "Single", RoomRate: 2500, RoomNumber: 101},
				{RoomType: "Double", RoomRate: 5000, RoomNumber: 101},
			},
			wantErr: true,
		},
		{
			name:    "negative rate",
			rooms:   []models.Room{{RoomType: "Single", RoomRate: -1, RoomNumber: 101}},
			wantErr: true,
		},
		{
			name:    "empty type",
			rooms:   []models.Room{{RoomRate: 2500, RoomNumber: 101}},
			wantErr: true,
		},
		{
			name:    "invalid number",
			rooms:   []models.Room{{RoomType: "Single", RoomRate: 2500, RoomNumber: 0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRooms(tt.rooms)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
