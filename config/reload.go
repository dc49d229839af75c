package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jy130131/go-openai"
)

// Reloader keeps a client configuration in sync with its YAML file,
// typically so rotated API keys are picked up without a restart.
type Reloader struct {
	mu sync.RWMutex

	loader     *Loader
	configPath string

	current  openai.Config
	previous *openai.Config

	watcher   *FileWatcher
	callbacks []func(oldCfg, newCfg openai.Config)

	logger  *zap.Logger
	running bool
	cancel  context.CancelFunc
}

// ReloadOption configures a Reloader.
type ReloadOption func(*Reloader)

// WithReloadLogger sets the reloader's logger.
func WithReloadLogger(logger *zap.Logger) ReloadOption {
	return func(r *Reloader) {
		r.logger = logger
	}
}

// WithReloadValidator adds a validation step run on every load. A
// failing validation keeps the current configuration in place.
func WithReloadValidator(v func(*File) error) ReloadOption {
	return func(r *Reloader) {
		r.loader.WithValidator(v)
	}
}

// NewReloader loads the file once and returns a reloader tracking it.
func NewReloader(configPath string, opts ...ReloadOption) (*Reloader, error) {
	r := &Reloader{
		configPath: configPath,
		loader:     NewLoader().WithConfigPath(configPath),
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	cfg, err := r.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("initial config load: %w", err)
	}
	r.current = cfg

	return r, nil
}

// Current returns the most recently loaded configuration.
func (r *Reloader) Current() openai.Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// OnReload registers a callback fired after every successful reload.
func (r *Reloader) OnReload(callback func(oldCfg, newCfg openai.Config)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks = append(r.callbacks, callback)
}

// Start begins watching the config file for changes.
func (r *Reloader) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("reloader already running")
	}

	watchCtx, cancel := context.WithCancel(ctx)

	watcher, err := NewFileWatcher(
		[]string{r.configPath},
		WithWatcherLogger(r.logger),
		WithDebounceDelay(500*time.Millisecond),
	)
	if err != nil {
		cancel()
		return fmt.Errorf("create file watcher: %w", err)
	}

	watcher.OnChange(r.handleFileChange)

	if err := watcher.Start(watchCtx); err != nil {
		cancel()
		return fmt.Errorf("start file watcher: %w", err)
	}

	r.watcher = watcher
	r.cancel = cancel
	r.running = true

	r.logger.Info("config reloader started", zap.String("path", r.configPath))
	return nil
}

// Stop stops watching. Stopping a stopped reloader is a no-op.
func (r *Reloader) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return nil
	}

	r.cancel()
	if err := r.watcher.Stop(); err != nil {
		r.logger.Error("stop file watcher", zap.Error(err))
	}
	r.running = false

	r.logger.Info("config reloader stopped")
	return nil
}

func (r *Reloader) handleFileChange(event FileEvent) {
	if event.Op != FileOpWrite && event.Op != FileOpCreate {
		return
	}
	if err := r.Reload(); err != nil {
		r.logger.Error("config reload failed, keeping current configuration",
			zap.Error(err), zap.String("path", r.configPath))
	}
}

// Reload re-reads the file and swaps the configuration. On any load
// or validation error the current configuration stays in place.
func (r *Reloader) Reload() error {
	cfg, err := r.loader.Load()
	if err != nil {
		return err
	}

	r.mu.Lock()
	oldCfg := r.current
	r.previous = &oldCfg
	r.current = cfg
	callbacks := append(([]func(oldCfg, newCfg openai.Config))(nil), r.callbacks...)
	r.mu.Unlock()

	r.logger.Info("configuration reloaded", zap.String("path", r.configPath))

	r.notify(callbacks, oldCfg, cfg)
	return nil
}

// Rollback restores the configuration from before the last reload.
func (r *Reloader) Rollback() error {
	r.mu.Lock()
	if r.previous == nil {
		r.mu.Unlock()
		return fmt.Errorf("no previous configuration to roll back to")
	}
	oldCfg := r.current
	restored := *r.previous
	r.current = restored
	r.previous = nil
	callbacks := append(([]func(oldCfg, newCfg openai.Config))(nil), r.callbacks...)
	r.mu.Unlock()

	r.logger.Warn("configuration rolled back", zap.String("path", r.configPath))

	r.notify(callbacks, oldCfg, restored)
	return nil
}

func (r *Reloader) notify(callbacks []func(oldCfg, newCfg openai.Config), oldCfg, newCfg openai.Config) {
	for _, cb := range callbacks {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					r.logger.Error("reload callback panicked", zap.Any("panic", rec))
				}
			}()
			cb(oldCfg, newCfg)
		}()
	}
}
