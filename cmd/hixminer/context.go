package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"hixminer/internal/config"
	"hixminer/internal/logging"
	"hixminer/internal/table"
	"hixminer/internal/textmine"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config, c.configPath, c.configSeen = cfg, path, exists
	})
	return c.config, c.configErr
}

// run is the per-invocation state of a pass: the validated configuration
// and a logger tagged with a fresh run ID.
type run struct {
	ctx    context.Context
	cfg    *config.Config
	logger *slog.Logger
}

func (c *commandContext) newRun(cmd *cobra.Command) (*run, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.ContextWithRunID(ctx, uuid.NewString())
	return &run{ctx: ctx, cfg: cfg, logger: logging.WithContext(ctx, logger)}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// exitCode maps pipeline failures onto distinct process exit statuses.
func exitCode(err error) int {
	var readErr *table.ReadError
	var schemaErr *textmine.SchemaError
	switch {
	case errors.As(err, &readErr):
		return 3
	case errors.As(err, &schemaErr):
		return 4
	case errors.Is(err, textmine.ErrEmptyCorpus):
		return 5
	case errors.Is(err, errNotConfirmed):
		return 2
	default:
		return 1
	}
}
