package app

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
app:
  name: "Enquiry Relay"
  server:
    cors:
      - "https://krishnakavach.com"
    http:
      address: "127.0.0.1:0"
instrument:
  enabled: false
  service_name: "enquiry-relay"
mail:
  host: "127.0.0.1"
  port: 1
  from: "noreply@example.com"
  dial_timeout_seconds: 1
modules:
  contact:
    enabled: true
    recipient: "sales@example.com"
    fallback_email: "info@example.com"
    fallback_phone: "+91 98765 43210"
`

func startApp(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	t.Setenv("CONFIG_PATH", path)

	application := New()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	errChan := application.Serve(l)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		application.Stop(ctx)
		assert.ErrorIs(t, <-errChan, http.ErrServerClosed)
	})

	return "http://" + l.Addr().String()
}

func TestAppServesContactEndpoint(t *testing.T) {
	base := startApp(t)

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(base + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("preflight", func(t *testing.T) {
		tests := []struct {
			name   string
			origin string
			allow  string
		}{
			{"allowed origin", "https://krishnakavach.com", "https://krishnakavach.com"},
			{"foreign origin", "https://evil.example", ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req, err := http.NewRequest(http.MethodOptions, base+"/api/contact", nil)
				require.NoError(t, err)
				req.Header.Set("Origin", tt.origin)
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
				// Browsers send the requested header names lowercased.
				req.Header.Set("Access-Control-Request-Headers", "content-type")

				resp, err := http.DefaultClient.Do(req)
				require.NoError(t, err)
				defer resp.Body.Close()
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Equal(t, tt.allow, resp.Header.Get("Access-Control-Allow-Origin"))
			})
		}
	})

	t.Run("validation", func(t *testing.T) {
		resp, err := http.Post(base+"/api/contact", "application/json", strings.NewReader(`{"name":"Asha"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, body.Success)
		assert.Equal(t, "Please fill in all required fields.", body.Message)
	})

	t.Run("mail unreachable", func(t *testing.T) {
		resp, err := http.Post(base+"/api/contact", "application/json",
			strings.NewReader(`{"name":"Asha","email":"asha@example.com","phone":"+91 90000 00000"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, body.Message, "info@example.com")
	})
}
