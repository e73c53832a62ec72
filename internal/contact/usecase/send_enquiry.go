package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/enquiry/internal/contact/entity"
	"github.com/shandysiswandi/enquiry/internal/pkg/goerror"
	"github.com/shandysiswandi/enquiry/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	msgSpam          = "Spam detected."
	msgRequired      = "Please fill in all required fields."
	msgInvalidEmail  = "Please enter a valid email address."
	timestampLayout  = "02 Jan 2006 15:04:05 MST"
	outcomeKey       = attribute.Key("outcome")
	defaultBrandName = "Krishna Kavach"
)

type (
	SendEnquiryInput struct {
		Name     string
		Email    string
		Phone    string
		Company  string
		Products []string
		Message  string
		Website  string
	}

	SendEnquiryOutput struct {
		Reference string
		Message   string
	}

	requiredFields struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required"`
		Phone string `json:"phone" validate:"required"`
	}

	emailShape struct {
		Email string `json:"email" validate:"contact_email"`
	}
)

func (s *Usecase) SendEnquiry(ctx context.Context, in SendEnquiryInput) (*SendEnquiryOutput, error) {
	ctx, span := s.startSpan(ctx, "SendEnquiry")
	defer span.End()

	// bots fill every input, including the hidden one
	if in.Website != "" {
		slog.WarnContext(ctx, "enquiry rejected by honeypot", "email", in.Email)
		s.count(ctx, "spam")
		return nil, goerror.NewBusiness(msgSpam, goerror.CodeRejected)
	}

	if err := s.validator.Validate(requiredFields{Name: in.Name, Email: in.Email, Phone: in.Phone}); err != nil {
		s.count(ctx, "invalid")
		return nil, goerror.NewInvalidInput(err, msgRequired)
	}

	if err := s.validator.Validate(emailShape{Email: in.Email}); err != nil {
		s.count(ctx, "invalid")
		return nil, goerror.NewInvalidInput(err, msgInvalidEmail)
	}

	enq := entity.Enquiry{
		Reference: s.uuid.Generate(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   strings.TrimSpace(in.Company),
		Products: lo.Uniq(lo.Compact(lo.Map(in.Products, func(p string, _ int) string {
			return strings.TrimSpace(p)
		}))),
		Message:     strings.TrimSpace(in.Message),
		SubmittedAt: s.clock.Now(),
	}
	span.SetAttributes(attribute.String("enquiry.reference", enq.Reference), attribute.Int("enquiry.products", len(enq.Products)))

	msg, err := s.buildMessage(enq)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render enquiry email", "reference", enq.Reference, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.count(ctx, "failed")
		return nil, goerror.NewServer(err, s.fallbackMessage())
	}

	if err := s.repoMail.Send(ctx, msg); err != nil {
		s.logDeliveryFailure(ctx, enq, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.count(ctx, "failed")
		return nil, goerror.NewServer(err, s.fallbackMessage())
	}

	slog.InfoContext(ctx, "enquiry delivered", "reference", enq.Reference, "products", len(enq.Products))
	s.count(ctx, "delivered")

	return &SendEnquiryOutput{
		Reference: enq.Reference,
		Message: fmt.Sprintf("Thank you %s! Your message has been sent successfully. We'll contact you soon at %s.",
			enq.Name, enq.Phone),
	}, nil
}

func (s *Usecase) buildMessage(enq entity.Enquiry) (mail.Message, error) {
	brand := s.brandName()
	view := mailView{
		Brand:       brand,
		Reference:   enq.Reference,
		Name:        enq.Name,
		Email:       enq.Email,
		Phone:       enq.Phone,
		Company:     enq.CompanyOrDefault(),
		Products:    enq.ProductList(),
		Message:     enq.MessageOrDefault(),
		SubmittedAt: enq.SubmittedAt.Format(timestampLayout),
	}

	html, err := render(s.htmlTpl, view)
	if err != nil {
		return mail.Message{}, err
	}

	text, err := render(s.textTpl, view)
	if err != nil {
		return mail.Message{}, err
	}

	return mail.Message{
		FromName: brand + " Website",
		ReplyTo:  enq.Email,
		To:       []string{s.recipient()},
		Subject:  fmt.Sprintf("New Enquiry from %s - %s", enq.Name, brand),
		TextBody: text,
		HTMLBody: html,
	}, nil
}

// logDeliveryFailure keeps the enquiry in the logs so it is not lost when the
// mail server is down. Setting values are never logged, only whether they are set.
func (s *Usecase) logDeliveryFailure(ctx context.Context, enq entity.Enquiry, err error) {
	slog.ErrorContext(ctx, "failed to send enquiry email", "reference", enq.Reference, "error", err)

	slog.WarnContext(ctx, "mail settings status",
		"mail_host", setOrNot(s.cfg.GetString("mail.host")),
		"mail_port", setOrNot(s.cfg.GetString("mail.port")),
		"mail_username", setOrNot(s.cfg.GetString("mail.username")),
		"mail_password", setOrNot(s.cfg.GetString("mail.password")),
		"mail_from", setOrNot(s.cfg.GetString("mail.from")),
		"contact_recipient", setOrNot(s.cfg.GetString("modules.contact.recipient")),
	)

	slog.InfoContext(ctx, "enquiry backup",
		"reference", enq.Reference,
		"timestamp", enq.SubmittedAt.UTC().Format(time.RFC3339),
		"name", enq.Name,
		"email", enq.Email,
		"phone", enq.Phone,
		"company", enq.Company,
		"products", enq.Products,
		"message", enq.Message,
	)
}

func (s *Usecase) brandName() string {
	if brand := s.cfg.GetString("modules.contact.brand_name"); brand != "" {
		return brand
	}
	return defaultBrandName
}

func (s *Usecase) recipient() string {
	if to := s.cfg.GetString("modules.contact.recipient"); to != "" {
		return to
	}
	return s.cfg.GetString("modules.contact.fallback_email")
}

func (s *Usecase) fallbackMessage() string {
	return fmt.Sprintf("Unable to send email at the moment. Please contact us directly at %s or call %s.",
		s.cfg.GetString("modules.contact.fallback_email"), s.cfg.GetString("modules.contact.fallback_phone"))
}

func setOrNot(v string) string {
	if v == "" {
		return "NOT SET"
	}
	return "SET"
}
