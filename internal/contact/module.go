package contact

import (
	"github.com/shandysiswandi/enquiry/internal/contact/inbound"
	"github.com/shandysiswandi/enquiry/internal/contact/outbound/email"
	"github.com/shandysiswandi/enquiry/internal/contact/usecase"
	"github.com/shandysiswandi/enquiry/internal/pkg/clock"
	"github.com/shandysiswandi/enquiry/internal/pkg/config"
	"github.com/shandysiswandi/enquiry/internal/pkg/instrument"
	"github.com/shandysiswandi/enquiry/internal/pkg/mail"
	"github.com/shandysiswandi/enquiry/internal/pkg/router"
	"github.com/shandysiswandi/enquiry/internal/pkg/uid"
	"github.com/shandysiswandi/enquiry/internal/pkg/validator"
)

type Dependency struct {
	Config     config.Config
	Instrument instrument.Instrumentation
	UUID       uid.StringID
	Clock      clock.Clocker
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
}

func New(dep Dependency) error {
	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.NewContact(usecase.Dependency{
		Config:     dep.Config,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		RepoMail:   repoMail,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
