// SPDX-License-Identifier: Apache-2.0

package host

import (
	"regexp"
	"strings"

	"github.com/joomcode/errorx"
)

var macroPattern = regexp.MustCompile(`\$(\{[A-Za-z0-9_.]+\}|[A-Za-z0-9_]+)`)

// EnvVars is the environment of a build run.
type EnvVars map[string]string

// FromEnviron builds EnvVars from KEY=VALUE pairs as returned by os.Environ.
// Malformed entries are skipped.
func FromEnviron(environ []string) EnvVars {
	env := make(EnvVars, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// ParsePairs parses KEY=VALUE pairs given on the command line.
func ParsePairs(pairs []string) (EnvVars, error) {
	env := make(EnvVars, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, errorx.IllegalArgument.New("invalid environment entry %q, expected KEY=VALUE", kv)
		}
		env[strings.TrimSpace(k)] = v
	}
	return env, nil
}

// Overlay returns a copy of e with the entries of other applied on top.
func (e EnvVars) Overlay(other EnvVars) EnvVars {
	merged := make(EnvVars, len(e)+len(other))
	for k, v := range e {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Expand replaces $VAR and ${VAR} references with their values. References to
// undefined variables are left as they are.
func (e EnvVars) Expand(s string) string {
	if s == "" || !strings.Contains(s, "$") {
		return s
	}

	return macroPattern.ReplaceAllStringFunc(s, func(ref string) string {
		key := strings.TrimPrefix(ref, "$")
		key = strings.TrimSuffix(strings.TrimPrefix(key, "{"), "}")
		if v, ok := e[key]; ok {
			return v
		}
		return ref
	})
}
