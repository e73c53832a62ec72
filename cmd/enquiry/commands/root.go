package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/shandysiswandi/enquiry/internal/enquiry"
	"github.com/shandysiswandi/enquiry/internal/pkg/config"
	"github.com/spf13/cobra"
)

type options struct {
	relayURL      string
	configPath    string
	logFile       string
	fallbackEmail string
	fallbackPhone string
	hideAfter     time.Duration
	timeout       time.Duration

	catalog enquiry.Catalog
	relay   *enquiry.HTTPRelay
	closeFn func()
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "enquiry",
		Short:        "Send a product enquiry to the sales team",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.closeFn != nil {
				opts.closeFn()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForm(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.relayURL, "relay", "http://127.0.0.1:8080", "relay base URL")
	flags.StringVar(&opts.configPath, "config", "", "config file with catalog and contact settings")
	flags.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	flags.StringVar(&opts.fallbackEmail, "fallback-email", enquiry.DefaultFallbackEmail, "address shown when the relay is unreachable")
	flags.StringVar(&opts.fallbackPhone, "fallback-phone", enquiry.DefaultFallbackPhone, "phone number shown when the relay is unreachable")
	flags.DurationVar(&opts.hideAfter, "hide-after", 0, "how long a status stays visible (default 5s)")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "relay request timeout")

	root.AddCommand(sendCmd(opts), productsCmd(opts))
	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	if err := o.setupLogging(); err != nil {
		return err
	}

	o.catalog = enquiry.DefaultCatalog()
	if o.configPath != "" {
		if err := o.loadConfig(cmd); err != nil {
			return err
		}
	}

	o.relay = enquiry.NewHTTPRelay(o.relayURL)
	o.relay.HTTP = &http.Client{Timeout: o.timeout}
	return nil
}

func (o *options) setupLogging() error {
	if o.logFile == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	o.closeFn = func() { _ = f.Close() }
	return nil
}

// loadConfig fills settings from the config file. Flags given explicitly win.
func (o *options) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.NewViper(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	defer cfg.Close()

	if entries := cfg.GetArray("catalog.products"); len(entries) > 0 {
		if o.catalog, err = enquiry.ParseCatalog(entries); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if v := cfg.GetString("modules.contact.fallback_email"); v != "" && !flags.Changed("fallback-email") {
		o.fallbackEmail = v
	}
	if v := cfg.GetString("modules.contact.fallback_phone"); v != "" && !flags.Changed("fallback-phone") {
		o.fallbackPhone = v
	}
	if !flags.Changed("hide-after") {
		o.hideAfter = cfg.GetSecond("modules.contact.hide_after_seconds")
	}
	if !flags.Changed("relay") {
		if u := cfg.GetString("client.relay_url"); u != "" {
			o.relayURL = u
		}
	}

	return nil
}

func (o *options) controllerConfig(onChange func(enquiry.Status)) enquiry.ControllerConfig {
	return enquiry.ControllerConfig{
		HideAfter:     o.hideAfter,
		FallbackEmail: o.fallbackEmail,
		FallbackPhone: o.fallbackPhone,
		OnChange:      onChange,
	}
}
