package enquiry

import (
	"context"
	"errors"
)

// Session is one user's enquiry form: the product selector, the typed fields
// and the submission controller.
type Session struct {
	selector   *Selector
	form       Form
	controller *Controller
}

// NewSession starts a session over catalog with an empty form.
func NewSession(catalog Catalog, relay Relay, cfg ControllerConfig) *Session {
	return &Session{
		selector:   NewSelector(catalog),
		controller: NewController(relay, cfg),
	}
}

// Selector exposes the product selector.
func (s *Session) Selector() *Selector {
	return s.selector
}

// Controller exposes the submission controller.
func (s *Session) Controller() *Controller {
	return s.controller
}

// Form returns the current fields with Products derived from the selection.
func (s *Session) Form() Form {
	f := s.form
	f.Products = s.selector.SelectedIDs()
	return f
}

// Update edits the typed fields. Changes to Products are discarded.
func (s *Session) Update(fn func(f *Form)) {
	f := s.form
	fn(&f)
	f.Products = nil
	s.form = f
}

// Payload returns what Submit would send: the typed fields plus the
// selected products' display names in selection order.
func (s *Session) Payload() Payload {
	return s.form.payload(s.selector.SelectedNames())
}

// Submit sends the form through the controller. After a successful delivery
// the fields are cleared and every product becomes available again.
func (s *Session) Submit(ctx context.Context) (Status, error) {
	st, err := s.controller.Submit(ctx, s.Payload())
	if err != nil {
		if errors.Is(err, ErrHoneypot) {
			return st, nil
		}
		return st, err
	}

	if st.Kind == StatusSuccess {
		s.Reset()
	}
	return st, nil
}

// Reset clears the fields and the selection.
func (s *Session) Reset() {
	s.form = Form{}
	s.selector.Reset()
}

// Close releases the controller's timer.
func (s *Session) Close() {
	s.controller.Close()
}
