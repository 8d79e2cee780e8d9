package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/interview-simulator/internal/session"
	"gopkg.in/yaml.v3"
)

// Marshal encodes the snapshot as YAML or JSON depending on format.
func Marshal(snap session.Snapshot, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(snap)
	case "json":
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}
}

// Write stores the snapshot at path. The extension picks the format.
func Write(path string, snap session.Snapshot) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")

	data, err := Marshal(snap, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}
