package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcp-router/mcp-router/pkg/models"
)

func TestIsSensitiveKey(t *testing.T) {
	sensitive := []string{
		"API_KEY", "OPENAI_API_KEY", "GITHUB_TOKEN", "DB_PASSWORD",
		"client_secret", "AWS_CREDENTIALS", "AUTH_HEADER", "passwd",
	}
	for _, name := range sensitive {
		assert.True(t, IsSensitiveKey(name), name)
	}

	benign := []string{"LOG_LEVEL", "HOME", "PATH", "WORKSPACE_DIR", "PORT"}
	for _, name := range benign {
		assert.False(t, IsSensitiveKey(name), name)
	}
}

func TestRedactSpec(t *testing.T) {
	spec := models.ServerSpec{
		ID: "gh",
		Launch: models.LaunchSpec{
			Kind:    models.TransportStdio,
			Command: "mcp-server-github",
			Env: map[string]string{
				"GITHUB_TOKEN": "ghp_secret123",
				"LOG_LEVEL":    "debug",
			},
		},
	}

	redacted := RedactSpec(spec)
	assert.Equal(t, MaskedValue, redacted.Launch.Env["GITHUB_TOKEN"])
	assert.Equal(t, "debug", redacted.Launch.Env["LOG_LEVEL"])

	// Original is untouched.
	assert.Equal(t, "ghp_secret123", spec.Launch.Env["GITHUB_TOKEN"])
}

func TestRedactSpecNoEnv(t *testing.T) {
	spec := models.ServerSpec{ID: "fs"}
	assert.Equal(t, spec, RedactSpec(spec))
}

func TestRedactSpecs(t *testing.T) {
	specs := []models.ServerSpec{
		{ID: "a", Launch: models.LaunchSpec{Env: map[string]string{"API_KEY": "x"}}},
		{ID: "b"},
	}
	out := RedactSpecs(specs)
	assert.Equal(t, MaskedValue, out[0].Launch.Env["API_KEY"])
	assert.Equal(t, "b", out[1].ID)
}
