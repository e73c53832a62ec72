package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  server:
    cors: "https://a.example,https://b.example"
mail:
  host: smtp.example.com
  port: 587
  password: from-file
modules:
  contact:
    hide_after_seconds: 5
catalog:
  products:
    - "bellow-covers:Bellow Covers"
    - "bushes-grommets:Bushes & Grommets, Assorted"
`

func TestNewViperFromBytes(t *testing.T) {
	_, err := NewViperFromBytes(" ", []byte(sample))
	require.Error(t, err)

	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com", cfg.GetString("mail.host"))
	assert.Equal(t, 587, cfg.GetInt("mail.port"))
	assert.Equal(t, 5*time.Second, cfg.GetSecond("modules.contact.hide_after_seconds"))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetArray("app.server.cors"))
	assert.Equal(t, []string{
		"bellow-covers:Bellow Covers",
		"bushes-grommets:Bushes & Grommets, Assorted",
	}, cfg.GetArray("catalog.products"))
	assert.Nil(t, cfg.GetArray("missing.key"))
	assert.NoError(t, cfg.Close())
}

func TestViperEnvOverride(t *testing.T) {
	t.Setenv("MAIL_PASSWORD", "from-env")
	t.Setenv("MODULES_CONTACT_RECIPIENT", "sales@example.com")

	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.GetString("mail.password"))
	assert.Equal(t, "sales@example.com", cfg.GetString("modules.contact.recipient"))
}
