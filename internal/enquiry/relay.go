package enquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ContactPath is the relay endpoint that accepts enquiries.
const ContactPath = "/api/contact"

const maxReplyBytes = 1 << 20

var (
	// ErrRelayStatus is returned when the relay answers with a 5xx status.
	ErrRelayStatus = errors.New("relay: server error")
	// ErrRelayReply is returned when the relay's body is not a JSON reply.
	ErrRelayReply = errors.New("relay: malformed reply")
)

// Relay delivers a payload to the mail relay and returns its reply.
//
// A nil error means the relay answered, whether it accepted the enquiry or not.
type Relay interface {
	Submit(ctx context.Context, p Payload) (*Reply, error)
}

// HTTPRelay talks to the relay service over HTTP.
type HTTPRelay struct {
	Base string
	HTTP *http.Client
}

// NewHTTPRelay returns a relay client for the service at base, for example
// "http://127.0.0.1:8080".
func NewHTTPRelay(base string) *HTTPRelay {
	return &HTTPRelay{
		Base: strings.TrimRight(base, "/"),
		HTTP: http.DefaultClient,
	}
}

var _ Relay = (*HTTPRelay)(nil)

// Submit posts the payload to ContactPath. 4xx answers with a JSON body are
// returned as replies; 5xx answers and undecodable bodies are errors.
func (c *HTTPRelay) Submit(ctx context.Context, p Payload) (*Reply, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+ContactPath, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxReplyBytes))
		return nil, fmt.Errorf("%w: %s", ErrRelayStatus, resp.Status)
	}

	var out Reply
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRelayReply, resp.Status, err)
	}

	return &out, nil
}
