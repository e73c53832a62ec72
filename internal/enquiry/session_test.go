package enquiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, relay Relay) *Session {
	t.Helper()

	s := NewSession(testCatalog(t), relay, ControllerConfig{
		HideAfter:     time.Minute,
		FallbackEmail: "admin@example.com",
		FallbackPhone: "+91 1234567890",
	})
	t.Cleanup(s.Close)
	return s
}

func fillForm(f *Form) {
	f.Name = "Asha"
	f.Email = "a@b.com"
	f.Phone = "123"
	f.Company = "Acme"
	f.Message = "Quote please"
}

func TestSessionFormProductsAreDerived(t *testing.T) {
	s := newTestSession(t, newFakeRelay(replyWith(true, "OK")))

	require.NoError(t, s.Selector().Toggle("c"))
	require.NoError(t, s.Selector().Toggle("a"))
	s.Update(func(f *Form) {
		fillForm(f)
		f.Products = []string{"zzz"}
	})

	f := s.Form()
	assert.Equal(t, "Asha", f.Name)
	assert.Equal(t, []string{"c", "a"}, f.Products)
}

func TestSessionSuccessResets(t *testing.T) {
	relay := newFakeRelay(replyWith(true, "OK"))
	s := newTestSession(t, relay)

	require.NoError(t, s.Selector().Toggle("d"))
	require.NoError(t, s.Selector().Toggle("b"))
	s.Update(fillForm)

	st, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, st.Kind)
	assert.Equal(t, "OK", st.Message)

	sent := relay.lastPayload()
	assert.Equal(t, []string{"Delta", "Bravo"}, sent.Products)
	assert.Equal(t, "Acme", sent.Company)

	assert.Equal(t, Form{Products: []string{}}, s.Form())
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(s.Selector().Available()))
	assert.Empty(t, s.Selector().Selected())
}

func TestSessionFailuresKeepTheForm(t *testing.T) {
	relay := newFakeRelay(func(context.Context, Payload) (*Reply, error) {
		return nil, errors.New("connection refused")
	})
	s := newTestSession(t, relay)

	require.NoError(t, s.Selector().Toggle("a"))
	s.Update(func(f *Form) {
		fillForm(f)
		f.Name = ""
	})

	st, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Please fill in all required fields.", st.Message)
	assert.Zero(t, relay.calls.Load())

	s.Update(func(f *Form) { f.Name = "Asha" })
	st, err = s.Submit(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, st.Err, ErrTransport)
	assert.False(t, s.Controller().Submitting())
	assert.Equal(t, "Asha", s.Form().Name)
	assert.Equal(t, []string{"a"}, s.Form().Products)
}

func TestSessionHoneypotIsSilent(t *testing.T) {
	relay := newFakeRelay(replyWith(true, "OK"))
	s := newTestSession(t, relay)

	s.Update(func(f *Form) {
		fillForm(f)
		f.Website = "bot-fill"
	})

	st, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Status{}, st)
	assert.Zero(t, relay.calls.Load())
	assert.Equal(t, "Asha", s.Form().Name)
}

func TestSessionEmptySelectionSendsEmptyList(t *testing.T) {
	relay := newFakeRelay(replyWith(true, ""))
	s := newTestSession(t, relay)
	s.Update(fillForm)

	_, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{}, relay.lastPayload().Products)
}
