// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"os"
	"sync"

	"github.com/kittyfont/kittyfont/internal/application/resolver"
	"github.com/kittyfont/kittyfont/internal/application/usecase"
	"github.com/kittyfont/kittyfont/internal/cli/model"
	"github.com/kittyfont/kittyfont/internal/cli/styles"
	"github.com/kittyfont/kittyfont/internal/command"
	"github.com/kittyfont/kittyfont/internal/config"
	"github.com/kittyfont/kittyfont/internal/domain/build"
	"github.com/kittyfont/kittyfont/internal/infrastructure/fontconfig"
	"github.com/kittyfont/kittyfont/internal/infrastructure/kitty"
	"github.com/kittyfont/kittyfont/internal/infrastructure/kittyconf"
	"github.com/kittyfont/kittyfont/internal/logging"
	"github.com/kittyfont/kittyfont/internal/nav"
)

// App holds CLI dependencies. Every dispatch and keystroke goes through
// one mutex, so panel state, the resolver cache, and kitty.conf rewrites
// never race with each other.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	Store    *kittyconf.Store
	Resolver *resolver.Resolver

	// Use cases
	FontUC   *usecase.ManageFontUseCase
	BrowseUC *usecase.BrowseFontsUseCase

	// Surface the panel sessions render from
	Surface *model.Surface

	mu     sync.Mutex
	engine *nav.Engine
	router *command.Router

	manager *config.Manager

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	// Load config
	manager, cfg := loadConfig()

	// Create theme from config
	theme := styles.NewTheme(cfg)

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("KITTYFONT_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(logLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Theme:   theme,
		manager: manager,
		ctx:     ctx,
	}
	app.wire(cfg)

	logger.Debug().
		Str("kitty_conf", cfg.KittyConfPath).
		Str("border", string(cfg.Border)).
		Msg("app wired")

	return app, nil
}

// wire builds the dependency graph for the given config.
func (a *App) wire(cfg *config.Config) {
	store := kittyconf.New(cfg.KittyConfPath, kitty.NewReloader())
	fonts := resolver.New(fontconfig.NewEnumerator(), kitty.NewFontLister(), cfg.CommandTimeout)

	fontUC := usecase.NewManageFontUseCase(store, fonts)
	browseUC := usecase.NewBrowseFontsUseCase(fonts)

	surface := model.NewSurface()

	a.Config = cfg
	a.Store = store
	a.Resolver = fonts
	a.FontUC = fontUC
	a.BrowseUC = browseUC
	a.Surface = surface
	a.engine = nav.New(surface, fontUC, browseUC, cfg)
	a.router = command.New(a.engine, fontUC, browseUC)
}

// Dispatch routes one action through the command router.
func (a *App) Dispatch(ctx context.Context, action, arg string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.router.Dispatch(ctx, action, arg)
}

// HandleKey forwards a keystroke to the open panel.
func (a *App) HandleKey(ctx context.Context, key string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.HandleKey(ctx, key)
}

// State reports the current panel state.
func (a *App) State() nav.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.State()
}

// Complete returns shell completion candidates for the given arguments.
func (a *App) Complete(ctx context.Context, args []string, toComplete string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.router.Complete(ctx, args, toComplete)
}

// WatchConfig rewires the app when the config file changes on disk. Any
// open panel is closed first so no session keeps a handle into the old
// graph. Only panel sessions watch; one-shot dispatches are done before
// a reload could land.
func (a *App) WatchConfig() error {
	if a.manager == nil {
		return nil
	}

	a.manager.OnConfigChange(func(cfg *config.Config) {
		a.mu.Lock()
		defer a.mu.Unlock()

		log := logging.FromContext(a.ctx)
		if a.engine.State() != nav.StateClosed {
			if err := a.engine.Close(a.ctx); err != nil {
				log.Warn().Err(err).Msg("failed to close panel for config reload")
			}
		}

		a.Theme = styles.NewTheme(cfg)
		a.wire(cfg)
		log.Info().Msg("configuration reloaded")
	})

	return a.manager.Watch()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. The manager is
// nil when loading fell back to defaults.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig()
	}

	return mgr, mgr.Get()
}

var _ model.Dispatcher = (*App)(nil)
