package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/internal/logging"
)

// serveConfig is read from the environment; non-empty flags win.
type serveConfig struct {
	Addr       string        `env:"FORMKIT_ADDR,default=:8080"`
	Schema     string        `env:"FORMKIT_SCHEMA"`
	Operation  string        `env:"FORMKIT_OPERATION"`
	Definition string        `env:"FORMKIT_DEFINITION"`
	Theme      string        `env:"FORMKIT_THEME"`
	Variant    string        `env:"FORMKIT_THEME_VARIANT"`
	LogLevel   string        `env:"FORMKIT_LOG_LEVEL"`
	Timeout    time.Duration `env:"FORMKIT_TIMEOUT,default=15s"`
}

func loadServeConfig() (serveConfig, error) {
	var cfg serveConfig
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return serveConfig{}, err
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return cfg, nil
}

// apply copies environment values into flags the user left empty.
func (c serveConfig) apply(flags *serveFlags) {
	fill := func(dst *string, value string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = value
		}
	}
	fill(&flags.addr, c.Addr)
	fill(&flags.form.schema, c.Schema)
	fill(&flags.form.operation, c.Operation)
	fill(&flags.form.definition, c.Definition)
	fill(&flags.form.themeFile, c.Theme)
	fill(&flags.form.variant, c.Variant)
}

type serveFlags struct {
	form formFlags
	addr string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a form over HTTP and validate posted submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig()
			if err != nil {
				return err
			}
			cfg.apply(flags)
			if cfg.LogLevel != "" && !cmd.Flags().Changed("log-level") {
				root.logLevel = cfg.LogLevel
			}

			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			sess, err := flags.form.session()
			if err != nil {
				return err
			}

			server := &http.Server{
				Addr:              flags.addr,
				Handler:           newFormServer(sess.orch, sess.request, log).routes(),
				ReadHeaderTimeout: cfg.Timeout,
				WriteTimeout:      cfg.Timeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return listen(ctx, server, log)
		},
	}

	flags.form.register(cmd)
	cmd.Flags().StringVar(&flags.addr, "addr", "", "Listen address (default :8080, env FORMKIT_ADDR)")

	return cmd
}

func listen(ctx context.Context, server *http.Server, log *logging.Logger) error {
	errs := make(chan error, 1)
	go func() {
		log.WithFields(map[string]any{"addr": server.Addr}).Info("serving form")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
