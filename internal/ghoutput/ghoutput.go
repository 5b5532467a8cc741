// Package ghoutput publishes evaluation results as GitHub Actions step outputs.
package ghoutput

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// EnvVar names the file GitHub Actions reads step outputs from.
const EnvVar = "GITHUB_OUTPUT"

// PathFromEnv returns the step output file, or "" outside GitHub Actions.
func PathFromEnv() string {
	return strings.TrimSpace(os.Getenv(EnvVar))
}

// Write appends values to the output file at path as sorted key=value lines.
// An empty path or empty values is a no-op.
func Write(path string, values map[string]string) error {
	if path == "" || len(values) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", EnvVar, err)
	}
	defer func() { _ = f.Close() }()

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, escape(values[key])); err != nil {
			return fmt.Errorf("write %s: %w", EnvVar, err)
		}
	}
	return nil
}

// escape keeps multi-line values on a single output line.
func escape(value string) string {
	value = strings.ReplaceAll(value, "%", "%25")
	value = strings.ReplaceAll(value, "\r", "%0D")
	return strings.ReplaceAll(value, "\n", "%0A")
}
