package pdfdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFile(t *testing.T) {
	_, err := NewReader().Open(filepath.Join(t.TempDir(), "missing.pdf"))

	require.ErrorIs(t, err, ErrNotFound)
}

func TestOpen_GarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	_, err := NewReader().Open(path)

	require.ErrorIs(t, err, ErrUnreadable)
}
