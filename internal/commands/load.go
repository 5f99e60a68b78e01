package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AndreCode112/FinanceMartins/internal/config"
	"github.com/AndreCode112/FinanceMartins/internal/dashboard"
	"github.com/AndreCode112/FinanceMartins/internal/logger"
	"github.com/AndreCode112/FinanceMartins/internal/snapshot"
)

// loadDashboard builds a dashboard service from the config file and its
// snapshot, interpreting snapshot dates in the configured timezone. A
// non-empty snapshotOverride wins over the configured path. The returned path
// is the snapshot file actually loaded.
func loadDashboard(configPath, snapshotOverride string) (*dashboard.Service, *config.Config, string, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("loading config: %w", err)
	}

	loc := time.Local
	if cfg.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, nil, "", fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
		}
	}

	snapshotPath := snapshotOverride
	if snapshotPath == "" {
		snapshotPath = resolvePath(configPath, cfg.Snapshot.Path)
	}

	snap, err := snapshot.LoadIn(snapshotPath, loc)
	if err != nil {
		return nil, nil, "", fmt.Errorf("loading snapshot: %w", err)
	}

	svc := dashboard.NewService(logger.New())
	svc.ApplySnapshot(snap)
	return svc, cfg, snapshotPath, nil
}

// resolvePath resolves a configured path relative to the config file's
// directory.
func resolvePath(configPath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(configPath), path)
}

func limitOrAll(n, limit int) int {
	if limit > 0 && n > limit {
		return limit
	}
	return n
}
