package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskData(t *testing.T) {
	keys := MaskKeys([]string{" Password ", "", "authorization"})
	assert.Len(t, keys, 2)

	in := map[string]any{
		"name":     "Asha",
		"password": "hunter2",
		"nested":   []any{map[string]any{"Authorization": "Bearer x"}},
	}

	out, ok := MaskData(in, keys).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Asha", out["name"])
	assert.Equal(t, "***", out["password"])
	assert.Equal(t, "***", out["nested"].([]any)[0].(map[string]any)["Authorization"])
}

func TestMaskAndContextHandler(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	logger := slog.New(&contextHandler{
		Handler:     &maskHandler{handler: base, maskKeys: MaskKeys([]string{"password"})},
		serviceName: "enquiry-relay",
	})

	ctx := SetCorrelationID(context.Background(), "cid-42")
	logger.InfoContext(ctx, "mail settings", "password", "secret", "body", `{"password":"x","name":"Asha"}`)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "***", rec["password"])
	assert.JSONEq(t, `{"password":"***","name":"Asha"}`, rec["body"].(string))
	assert.Equal(t, "cid-42", rec["_cID"])
	assert.Equal(t, "enquiry-relay", rec["service"])
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(context.Background(), "abc")))
}

func TestNewDisabledIsNoop(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	ins, err := New(context.Background(), &Config{Enabled: false, ServiceName: "enquiry-relay"})
	require.NoError(t, err)

	_, span := ins.Tracer("test").Start(context.Background(), "span")
	span.End()
	assert.NoError(t, ins.Shutdown(context.Background()))
}
