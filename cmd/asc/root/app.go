package root

import (
	"context"

	"ascend/internal/config"
	"ascend/internal/engine"
	"ascend/internal/logging"
	"ascend/internal/storage"
	"ascend/internal/store"
)

// app bundles what a command needs. Close releases the storage backend and
// flushes the logger.
type app struct {
	cfg   *config.Config
	log   *logging.Logger
	kv    storage.KV
	store *store.Store
	svc   *engine.Service
}

func (a *app) Close() {
	_ = a.kv.Close()
	a.log.Sync()
}

func loadConfig(opts *globalOpts) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.backend != "" {
		cfg.Storage.Backend = opts.backend
	}
	if opts.dbPath != "" {
		cfg.Storage.Path = opts.dbPath
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openApp(ctx context.Context, opts *globalOpts) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	policy, err := engine.ParseToggleOffPolicy(cfg.Habits.ToggleOffPolicy)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Logging.Mode, cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	path, err := cfg.StoragePath()
	if err != nil {
		return nil, err
	}
	kv, err := storage.OpenKV(ctx, cfg.Storage.Backend, path)
	if err != nil {
		return nil, err
	}
	log.Debug("storage opened", "backend", cfg.Storage.Backend, "path", path)

	st := store.New(kv, log, store.WithKey(cfg.Storage.Key))
	svc := engine.Open(ctx, st, engine.NewReducer(engine.WithToggleOffPolicy(policy)))
	return &app{cfg: cfg, log: log, kv: kv, store: st, svc: svc}, nil
}
