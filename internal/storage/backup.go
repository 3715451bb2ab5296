package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"hoteldesk/internal/config"

	"github.com/rs/zerolog"
)

// BackupService copies the store files aside at startup. There is no
// scheduler: the process lives only as long as one operator session, so one
// backup per launch is the natural cadence.
type BackupService struct {
	config config.BackupConfig
	logger *zerolog.Logger
}

func NewBackupService(cfg config.BackupConfig, logger *zerolog.Logger) *BackupService {
	return &BackupService{config: cfg, logger: logger}
}

// Run backs up the given files and prunes copies past retention. Disabled
// config is a no-op.
func (s *BackupService) Run(files []string) error {
	if !s.config.Enabled {
		return nil
	}

	if err := os.MkdirAll(s.config.StoragePath, 0o755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	for _, src := range files {
		dst := filepath.Join(s.config.StoragePath,
			fmt.Sprintf("%s.%s.bak", filepath.Base(src), timestamp))
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("backup %s: %w", src, err)
		}
		s.logger.Info().Str("file", src).Str("backup", dst).Msg("store file backed up")
	}

	s.cleanupOld()
	return nil
}

func (s *BackupService) cleanupOld() {
	entries, err := os.ReadDir(s.config.StoragePath)
	if err != nil {
		s.logger.Warn().Err(err).Msg("read backup directory")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".bak" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(s.config.StoragePath, entry.Name())
			if err := os.Remove(path); err != nil {
				s.logger.Warn().Err(err).Str("file", path).Msg("remove stale backup")
			} else {
				s.logger.Info().Str("file", path).Msg("stale backup removed")
			}
		}
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
