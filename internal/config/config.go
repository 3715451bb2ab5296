package config

import (
	"errors"
	"fmt"
	"os"

	"hoteldesk/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Storage    StorageConfig    `yaml:"storage"`
	Backup     BackupConfig     `yaml:"backup"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
	Exports    ExportConfig     `yaml:"exports"`
	Rooms      []models.Room    `yaml:"rooms"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type StorageConfig struct {
	// Driver selects the store implementation: "json" or "sqlite".
	Driver string `yaml:"driver"`
	// Dir holds the json driver's files (accounts.json, bookings.json,
	// salesreport.json).
	Dir string `yaml:"dir"`
	// SQLitePath is the database file for the sqlite driver.
	SQLitePath string `yaml:"sqlite_path"`
}

type BackupConfig struct {
	Enabled       bool   `yaml:"enabled"`
	RetentionDays int    `yaml:"retention_days"`
	StoragePath   string `yaml:"storage_path"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

// Load reads the YAML config, expanding ${VAR} references from the
// environment (a .env file is honored when present).
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expanded, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "json":
		if c.Storage.Dir == "" {
			return errors.New("storage dir is required for the json driver")
		}
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return errors.New("sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return ValidateRooms(c.Rooms)
}

// ValidateRooms rejects catalogs with duplicate room numbers or negative
// nightly rates.
func ValidateRooms(rooms []models.Room) error {
	numbers := make(map[int]bool)
	for _, room := range rooms {
		if room.RoomNumber <= 0 {
			return fmt.Errorf("room %q has invalid number %d", room.RoomType, room.RoomNumber)
		}
		if numbers[room.RoomNumber] {
			return fmt.Errorf("duplicate room number found: %d", room.RoomNumber)
		}
		if room.RoomRate < 0 {
			return fmt.Errorf("room %d has negative rate", room.RoomNumber)
		}
		if room.RoomType == "" {
			return fmt.Errorf("room %d has empty type", room.RoomNumber)
		}
		numbers[room.RoomNumber] = true
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "hoteldesk"
	}
	if c.App.Environment == "" {
		c.App.Environment = "production"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "json"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = "data"
	}
	if c.Storage.Driver == "sqlite" && c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = "data/hoteldesk.db"
	}
	if c.Backup.Enabled && c.Backup.StoragePath == "" {
		c.Backup.StoragePath = "backups"
	}
	if c.Backup.RetentionDays == 0 {
		c.Backup.RetentionDays = 30
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
	if c.Logging.Format == "" {
		// The operator shares the terminal with the UI; keep log lines
		// human readable.
		c.Logging.Format = "console"
	}
	if len(c.Rooms) == 0 {
		c.Rooms = models.DefaultCatalog()
	}
}
