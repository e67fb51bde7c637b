package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("  \u201CNão perca\u201D \u2014 clique\u00a0aqui\u2026 ")...)
	assert.Equal(t, `"Não perca" -- clique aqui...`, CleanText(raw, "test"))
}

func TestCleanText_InvalidUTF8(t *testing.T) {
	got := CleanText([]byte{'o', 'k', 0xff}, "test")
	assert.Equal(t, "ok\uFFFD", got)
}

func TestReadTextFile(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "draft.txt")
	require.NoError(t, os.WriteFile(text, []byte("Aprenda Python\n"), 0o600))
	bin := filepath.Join(dir, "draft.bin")
	require.NoError(t, os.WriteFile(bin, []byte{'a', 0, 'b'}, 0o600))

	got, err := ReadTextFile(text)
	require.NoError(t, err)
	assert.Equal(t, "Aprenda Python", got)

	_, err = ReadTextFile(bin)
	assert.Error(t, err)

	_, err = ReadTextFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
