package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in config content using Go
// templates. Uses {{.VAR_NAME}} syntax to avoid collision with $ in
// command arguments and regex-like values.
//
// Examples:
//   - {{.OPENAI_API_KEY}} → value of OPENAI_API_KEY
//   - {{.HOME}}/projects → home-relative path
//
// Missing variables expand to empty string. Content without template
// syntax passes through untouched.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// Not a template; let the parser report real syntax problems.
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}

	return buf.Bytes()
}
