package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/casecalc/internal/cache"
	"github.com/ppiankov/casecalc/internal/logging"
	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/render"
	"github.com/ppiankov/casecalc/internal/rules"
)

// session holds what every command needs once flags and config are resolved
type session struct {
	cfg      *model.Config
	logger   logging.Logger
	registry *rules.Registry
	renderer *render.Renderer
	now      time.Time
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())

	var c cache.Cache = cache.Nop{}
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		registry: rules.NewRegistry(c, logger),
		renderer: render.NewRenderer(format),
		now:      time.Now().UTC(),
	}, nil
}

// book returns the configured rule book
func (s *session) book() (*rules.Book, error) {
	b, err := s.registry.Book(s.cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return b, nil
}

// print renders a report to the command's stdout
func (s *session) print(cmd *cobra.Command, report *model.Report) error {
	if err := s.renderer.Render(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
