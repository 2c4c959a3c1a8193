// Package masking redacts credentials from server specs before they cross
// an exposure boundary. Launch environments routinely carry API keys and
// tokens; the engine needs the real values to spawn servers, but logs and
// API responses must never echo them.
package masking

import (
	"regexp"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// MaskedValue replaces any environment value whose key looks sensitive.
const MaskedValue = "__MASKED_ENV_VALUE__"

// sensitiveKey matches environment variable names that conventionally hold
// credentials.
var sensitiveKey = regexp.MustCompile(`(?i)(key|token|secret|password|passwd|credential|auth)`)

// IsSensitiveKey reports whether the environment variable name looks like it
// holds a credential.
func IsSensitiveKey(name string) bool {
	return sensitiveKey.MatchString(name)
}

// RedactSpec returns a copy of the spec with sensitive launch environment
// values masked. The original spec is never modified.
func RedactSpec(spec models.ServerSpec) models.ServerSpec {
	if len(spec.Launch.Env) == 0 {
		return spec
	}

	env := make(map[string]string, len(spec.Launch.Env))
	for k, v := range spec.Launch.Env {
		if IsSensitiveKey(k) {
			env[k] = MaskedValue
		} else {
			env[k] = v
		}
	}
	spec.Launch.Env = env
	return spec
}

// RedactSpecs redacts a slice of specs.
func RedactSpecs(specs []models.ServerSpec) []models.ServerSpec {
	out := make([]models.ServerSpec, len(specs))
	for i, spec := range specs {
		out[i] = RedactSpec(spec)
	}
	return out
}
