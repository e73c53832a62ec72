package email

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/enquiry/internal/pkg/instrument"
	"github.com/shandysiswandi/enquiry/internal/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailSend(t *testing.T) {
	client := mail.NewMemory()
	m := New(client, instrument.NewNoop())

	msg := mail.Message{To: []string{"sales@example.com"}, Subject: "hello", TextBody: "hi"}
	require.NoError(t, m.Send(context.Background(), msg))
	assert.Equal(t, []mail.Message{msg}, client.Messages())

	client.Err = errors.New("421 service not available")
	assert.ErrorIs(t, m.Send(context.Background(), msg), client.Err)
	assert.Len(t, client.Messages(), 1)
}
