package resume

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "cv.txt", "\n  Senior Go engineer, 8 years of distributed systems.  \n")

	text, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Senior Go engineer, 8 years of distributed systems.", text)
}

func TestLoadEmpty(t *testing.T) {
	path := writeFile(t, "cv.md", "   \n\t")

	text, err := Load(path)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadInvalidPDF(t *testing.T) {
	path := writeFile(t, "cv.PDF", "this is not a pdf document")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse resume")
}
