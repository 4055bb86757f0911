// Package preview parses configuration and runs the component preview server.
package preview

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/calyx-ui/calyx/internal/platform/config"
	"github.com/calyx-ui/calyx/internal/platform/otel"
	"github.com/calyx-ui/calyx/internal/preview"
)

// Config holds the preview command configuration.
type Config struct {
	HTTPAddr string `env:"CALYX_PREVIEW_HTTP_ADDR" envDefault:"localhost:8080"`
}

// ParseConfig loads the environment configuration and applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the preview server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "calyx-preview")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := preview.NewServer(preview.Config{HTTPAddr: cfg.HTTPAddr})
	if err != nil {
		return fmt.Errorf("init preview server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve preview: %w", err)
	}
	return nil
}
