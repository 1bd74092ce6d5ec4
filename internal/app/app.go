package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/commentbox/internal/analysis"
	"github.com/five82/commentbox/internal/config"
	"github.com/five82/commentbox/internal/logging"
	"github.com/five82/commentbox/internal/prefs"
	"github.com/five82/commentbox/internal/session"
	"github.com/five82/commentbox/internal/share"
	"github.com/five82/commentbox/internal/ui"
	"github.com/five82/commentbox/internal/urlcheck"
)

// Options configure the commentbox application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/commentbox/prefs.toml
	APIURL     string // overrides config and environment when set
}

// Runtime holds the services built from configuration. Both the TUI and the
// one-shot CLI commands run on top of it.
type Runtime struct {
	Config config.Config
	Logger *zap.Logger
	Client *analysis.Client
	Sharer share.Sharer
}

// Setup loads configuration and builds the logger, API client and sharer.
func Setup(opts Options) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}

	logPath := ""
	if cfg.LoggingEnabled() {
		logPath = cfg.LogPath()
	}
	logger, err := logging.New(logPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	clientOpts := []analysis.Option{analysis.WithLogger(logger)}
	if cfg.RequestTimeout > 0 {
		clientOpts = append(clientOpts, analysis.WithTimeout(cfg.RequestTimeout))
	}
	if cfg.RateLimit > 0 {
		clientOpts = append(clientOpts, analysis.WithRateLimit(cfg.RateLimit))
	}
	client, err := analysis.NewClient(cfg.APIURL, clientOpts...)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init analysis client: %w", err)
	}

	return &Runtime{
		Config: cfg,
		Logger: logger,
		Client: client,
		Sharer: share.New(cfg.ShareCommand),
	}, nil
}

// NewSession returns a session controller honoring validate_urls.
func (r *Runtime) NewSession() *session.Controller {
	var opts []session.Option
	if r.Config.ValidateURLs {
		opts = append(opts, session.WithValidator(urlcheck.Validate))
	}
	return session.New(opts...)
}

// Close releases idle connections and flushes the log.
func (r *Runtime) Close() {
	if r == nil {
		return
	}
	if r.Client != nil {
		r.Client.Close()
	}
	if r.Logger != nil {
		_ = r.Logger.Sync()
	}
}

// Run boots the commentbox TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := Setup(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	userPrefs := prefs.Load(opts.PrefsPath)

	rt.Logger.Info("commentbox starting",
		zap.String("api_url", rt.Client.BaseURL()),
		zap.String("theme", userPrefs.Theme),
		zap.Bool("validate_urls", rt.Config.ValidateURLs),
	)
	defer rt.Logger.Info("commentbox stopped")

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    rt.Client,
		Session:   rt.NewSession(),
		Sharer:    rt.Sharer,
		Logger:    rt.Logger,
		APIURL:    rt.Client.BaseURL(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
