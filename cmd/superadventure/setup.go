package main

import (
	"context"
	"fmt"

	"github.com/nathoo/superadventure/config"
	"github.com/nathoo/superadventure/engine/save"
	"github.com/nathoo/superadventure/engine/world"
	"github.com/nathoo/superadventure/loader"
	"github.com/nathoo/superadventure/storage"
	"github.com/nathoo/superadventure/worlds"
)

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagWorld != "" {
		cfg.WorldDir = flagWorld
	}
	if flagStorage != "" {
		cfg.Storage.Backend = flagStorage
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

// loadWorld compiles the configured world, or the bundled one.
func loadWorld(cfg config.Config) (*world.Catalog, error) {
	if cfg.WorldDir == "" {
		return loader.LoadFS(worlds.Classic())
	}
	dir, err := storage.ExpandHome(cfg.WorldDir)
	if err != nil {
		return nil, err
	}
	return loader.Load(dir)
}

// openSlots opens the configured save backend and codec.
func openSlots(ctx context.Context, cfg config.Config) (*save.Slots, storage.Store, error) {
	codec, err := save.CodecFor(cfg.SaveFormat)
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(ctx, storage.Options{
		Backend:  cfg.Storage.Backend,
		Dir:      cfg.Storage.Dir,
		DBPath:   cfg.Storage.DBPath,
		RedisURL: cfg.Storage.RedisURL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s save storage: %w", cfg.Storage.Backend, err)
	}
	return save.NewSlots(store, codec), store, nil
}
