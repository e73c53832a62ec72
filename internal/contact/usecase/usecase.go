package usecase

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	"io"
	"log/slog"
	texttemplate "text/template"

	"github.com/shandysiswandi/enquiry/internal/pkg/clock"
	"github.com/shandysiswandi/enquiry/internal/pkg/config"
	"github.com/shandysiswandi/enquiry/internal/pkg/instrument"
	"github.com/shandysiswandi/enquiry/internal/pkg/mail"
	"github.com/shandysiswandi/enquiry/internal/pkg/uid"
	"github.com/shandysiswandi/enquiry/internal/pkg/validator"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	cfg       config.Config
	uuid      uid.StringID
	clock     clock.Clocker
	validator validator.Validator
	repoMail  repoMail
	ins       instrument.Instrumentation
	enquiries metric.Int64Counter
	htmlTpl   *htmltemplate.Template
	textTpl   *texttemplate.Template
}

type Dependency struct {
	Config     config.Config
	UUID       uid.StringID
	Clock      clock.Clocker
	Validator  validator.Validator
	RepoMail   repoMail
	Instrument instrument.Instrumentation
}

func NewContact(dep Dependency) *Usecase {
	enquiries, err := dep.Instrument.Meter("contact.usecase").Int64Counter(
		"contact.enquiries",
		metric.WithDescription("Enquiries received by outcome"),
	)
	if err != nil {
		slog.Warn("failed to create enquiries counter", "error", err)
	}

	return &Usecase{
		cfg:       dep.Config,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		validator: dep.Validator,
		repoMail:  dep.RepoMail,
		ins:       dep.Instrument,
		enquiries: enquiries,
		htmlTpl:   htmltemplate.Must(htmltemplate.New("enquiry.html").Parse(enquiryHTML)),
		textTpl:   texttemplate.Must(texttemplate.New("enquiry.txt").Parse(enquiryText)),
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("contact.usecase").Start(ctx, name)
}

func (s *Usecase) count(ctx context.Context, outcome string) {
	if s.enquiries == nil {
		return
	}
	s.enquiries.Add(ctx, 1, metric.WithAttributes(outcomeKey.String(outcome)))
}

type executor interface {
	Execute(w io.Writer, data any) error
}

func render(tpl executor, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
