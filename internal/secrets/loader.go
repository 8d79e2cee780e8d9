// Package secrets resolves the Gemini API key and the contact form access key.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotConfigured is returned when a source names neither a value nor a file.
var ErrNotConfigured = errors.New("not configured")

// Source describes where a key can be found. File wins over Value.
type Source struct {
	// Name labels the key in error messages.
	Name  string
	Value string
	// File may start with ~/ to refer to the home directory.
	File string
}

func (s Source) name() string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return "secret"
}

// Load returns the trimmed key.
func Load(src Source) (string, error) {
	if file := strings.TrimSpace(src.File); file != "" {
		return loadFile(src.name(), file)
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	return "", fmt.Errorf("%s is %w", src.name(), ErrNotConfigured)
}

func loadFile(name, file string) (string, error) {
	path, err := expandHome(file)
	if err != nil {
		return "", fmt.Errorf("resolving %s file %q: %w", name, file, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}

	return secret, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
