package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/gaugelab/gaugechat/internal/chat"
	"github.com/gaugelab/gaugechat/internal/config"
	"github.com/gaugelab/gaugechat/internal/handlers"
	"github.com/gaugelab/gaugechat/internal/logger"
	"github.com/gaugelab/gaugechat/internal/providers"
	"github.com/gaugelab/gaugechat/internal/server"
	"github.com/gaugelab/gaugechat/internal/version"
)

func runServe() {
	fx.New(
		fx.Provide(
			provideConfig,
			provideLogger,
			provideStore,
			chat.NewHTTPClient,
			provideAdapters,
			chat.NewDispatcher,
			provideServerHandler(handlers.NewPingHandler),
			provideServerHandler(provideChatHandler),
			provideServerHandler(handlers.NewProvidersHandler),
			provideServerHandler(handlers.NewPowerAppsHandler),
			provideServer,
		),
		fx.Invoke(startServer),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
	).Run()
}

func provideServerHandler(fn any) any {
	return fx.Annotate(
		fn,
		fx.As(new(server.Handler)),
		fx.ResultTags(`group:"server_handlers"`),
	)
}

func provideConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) *slog.Logger {
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return logger.L
}

func provideStore() config.Store {
	return config.NewEnvStore()
}

func provideAdapters(cfg config.Config, store config.Store, client *http.Client) map[providers.ID]chat.Adapter {
	return chat.NewAdapters(cfg.Chat, store, client)
}

func provideChatHandler(log *slog.Logger, dispatcher *chat.Dispatcher) *handlers.ChatHandler {
	return handlers.NewChatHandler(log, dispatcher)
}

type serverParams struct {
	fx.In
	Logger   *slog.Logger
	Config   config.Config
	Handlers []server.Handler `group:"server_handlers"`
}

func provideServer(params serverParams) *server.Server {
	return server.NewServer(params.Config.Server.Addr, params.Logger, params.Handlers)
}

func startServer(lc fx.Lifecycle, log *slog.Logger, srv *server.Server, shutdowner fx.Shutdowner) {
	fmt.Printf("Starting gaugechat %s\n", version.GetInfo())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server failed", slog.Any("error", err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := srv.Stop(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server stop: %w", err)
			}
			return nil
		},
	})
}
