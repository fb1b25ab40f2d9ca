package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/gogpu/gauge"
)

// Watch loads the file at path and then delivers a freshly decoded
// Config every time the file changes.
//
// The first value on the channel is the initial configuration. Reloads
// that fail to decode are logged and skipped. Sends happen on viper's
// watcher goroutine; consumers that mutate a Group from the channel keep
// all mutations on their own goroutine. Viper offers no way to stop its
// watcher, so the goroutine outlives ctx: once ctx is done, change events
// are dropped without decoding. The channel is never closed.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	initial, err := decode(v)
	if err != nil {
		return nil, err
	}

	ch := make(chan *Config, 1)
	ch <- initial

	v.OnConfigChange(onChange(ctx, v, ch))
	v.WatchConfig()
	return ch, nil
}

// onChange returns the reload handler for v. It does nothing after ctx is done.
func onChange(ctx context.Context, v *viper.Viper, ch chan<- *Config) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		if ctx.Err() != nil {
			return
		}
		log := gauge.Logger().With("file", e.Name, "op", e.Op.String())
		cfg, err := decode(v)
		if err != nil {
			log.Warn("config: reload failed", "error", err)
			return
		}
		log.Info("config: reloaded", "bars", len(cfg.Bars))
		select {
		case ch <- cfg:
		case <-ctx.Done():
		}
	}
}
