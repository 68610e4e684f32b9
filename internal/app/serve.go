package app

import (
	"context"
	"net"
	"os"

	"capsection/internal/config"
	"capsection/internal/server"
	"capsection/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// ServeOptions overrides the configured server settings for one run.
type ServeOptions struct {
	Host  string
	Port  int
	Watch bool

	// Listener, when set, is served instead of listening on Host:Port.
	Listener net.Listener

	ServerOptions []server.Option
}

// serverConfig applies opts over the configured server settings.
func (a *Application) serverConfig(opts ServeOptions) config.ServerConfig {
	cfg := a.capsection.Server
	if opts.Host != "" {
		cfg.Host = opts.Host
	}
	if opts.Port > 0 {
		cfg.Port = opts.Port
	}
	if opts.Watch {
		cfg.Watch = true
	}
	return cfg
}

// Serve runs the HTTP server, and the config watcher when enabled, until ctx
// is done or either of them fails.
func (a *Application) Serve(ctx context.Context, opts ServeOptions) error {
	serverCfg := a.serverConfig(opts)
	if serverCfg.LogFormat == "json" {
		logging.InitForJSON(a.config.LogLevel(), os.Stderr)
	}

	var source server.Source = config.NewStatic(a.capsection)
	var watcher *config.Watcher
	if serverCfg.Watch {
		if a.config.ConfigPath == "" || a.config.ConfigMap != "" {
			logging.Warn("Serve", "Watching needs a configuration file (--config); serving a static configuration")
		} else {
			w, err := config.NewWatcher(a.config.ConfigPath, config.WithOnChange(func(c config.CapsectionConfig) {
				logging.Info("Serve", "Configuration reloaded: %d capabilities", len(c.Section.Props().WithDefaults().Capabilities))
			}))
			if err != nil {
				return err
			}
			watcher = w
			source = w
		}
	}

	srv := server.New(serverCfg, source, opts.ServerOptions...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if opts.Listener != nil {
			return srv.Serve(gctx, opts.Listener)
		}
		return srv.Run(gctx)
	})
	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}
	return g.Wait()
}
