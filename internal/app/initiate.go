package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/shandysiswandi/enquiry/internal/pkg/clock"
	"github.com/shandysiswandi/enquiry/internal/pkg/config"
	"github.com/shandysiswandi/enquiry/internal/pkg/instrument"
	"github.com/shandysiswandi/enquiry/internal/pkg/mail"
	"github.com/shandysiswandi/enquiry/internal/pkg/router"
	"github.com/shandysiswandi/enquiry/internal/pkg/uid"
	"github.com/shandysiswandi/enquiry/internal/pkg/validator"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(a.ctx, &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator
}

func (a *App) initMail() {
	mail, err := mail.NewSMTP(mail.SMTPConfig{
		Host:        a.config.GetString("mail.host"),
		Port:        a.config.GetInt("mail.port"),
		Username:    a.config.GetString("mail.username"),
		Password:    a.config.GetString("mail.password"),
		From:        a.config.GetString("mail.from"),
		DialTimeout: a.config.GetSecond("mail.dial_timeout_seconds"),
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err)
		os.Exit(1)
	}

	a.mail = mail
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:      a.config,
		UUID:        a.uuid,
		Instrument:  a.ins,
		ServiceName: a.config.GetString("app.name"),
	})

	// Browsers preflight the JSON POST; answer with 200 rather than 204.
	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:       []string{"Content-Type", "Accept", "X-Requested-With", router.HeaderCorrelationID},
		ExposedHeaders:       []string{router.HeaderCorrelationID},
		OptionsSuccessStatus: http.StatusOK,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
