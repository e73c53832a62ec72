package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/enquiry/internal/contact/usecase"
	"github.com/shandysiswandi/enquiry/internal/pkg/config"
	"github.com/shandysiswandi/enquiry/internal/pkg/goerror"
	"github.com/shandysiswandi/enquiry/internal/pkg/instrument"
	"github.com/shandysiswandi/enquiry/internal/pkg/router"
	"github.com/shandysiswandi/enquiry/internal/pkg/uid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ucFunc func(ctx context.Context, in usecase.SendEnquiryInput) (*usecase.SendEnquiryOutput, error)

func (f ucFunc) SendEnquiry(ctx context.Context, in usecase.SendEnquiryInput) (*usecase.SendEnquiryOutput, error) {
	return f(ctx, in)
}

type response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

func newServer(t *testing.T, fn ucFunc) http.Handler {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app: {}"))
	require.NoError(t, err)

	r := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.Static("cid"),
		Instrument: instrument.NewNoop(),
	})
	RegisterHTTPEndpoint(r, fn)
	return r
}

func post(t *testing.T, h http.Handler, body string) (int, response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestSendEnquiryEndpoint(t *testing.T) {
	var got usecase.SendEnquiryInput
	h := newServer(t, func(_ context.Context, in usecase.SendEnquiryInput) (*usecase.SendEnquiryOutput, error) {
		got = in
		return &usecase.SendEnquiryOutput{Reference: "ref-9", Message: "Thank you Asha!"}, nil
	})

	code, resp := post(t, h, `{"name":"Asha","email":"asha@example.com","phone":"98","company":"Acme",
		"message":"hi","website":"","products":["Bellow Covers","O-Rings"]}`)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you Asha!", resp.Message)
	assert.Equal(t, "ref-9", resp.Data["reference"])
	assert.Equal(t, usecase.SendEnquiryInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "98",
		Company:  "Acme",
		Products: []string{"Bellow Covers", "O-Rings"},
		Message:  "hi",
	}, got)
}

func TestSendEnquiryEndpointErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		msg    string
	}{
		{"malformed", `{"name":`, nil, http.StatusBadRequest, "Invalid request body"},
		{"spam", `{"website":"x"}`, goerror.NewBusiness("Spam detected.", goerror.CodeRejected), http.StatusBadRequest, "Spam detected."},
		{"smtp down", `{}`, goerror.NewServer(errors.New("dial"), "call us"), http.StatusInternalServerError, "call us"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := newServer(t, func(context.Context, usecase.SendEnquiryInput) (*usecase.SendEnquiryOutput, error) {
				called = true
				return nil, tt.err
			})

			code, resp := post(t, h, tt.body)
			assert.Equal(t, tt.status, code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.msg, resp.Message)
			assert.Equal(t, tt.err != nil, called)
		})
	}
}
