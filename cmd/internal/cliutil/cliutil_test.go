package cliutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]string{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"always": ColorAlways,
		"never":  ColorNever,
	} {
		got, err := ParseColorMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, UseColor(&buf, ColorAlways))
	assert.False(t, UseColor(&buf, ColorNever))
	assert.False(t, UseColor(&buf, ColorAuto), "buffers are not terminals")
}

func TestPalette(t *testing.T) {
	plain := NewPalette(false)
	assert.Equal(t, "removable", plain.Removable("removable"))
	assert.Equal(t, "a.cs:1:2", plain.Location("%s:%d:%d", "a.cs", 1, 2))

	colored := NewPalette(true)
	out := colored.Removable("removable")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "removable")
}

func TestGetOutput(t *testing.T) {
	f, done, err := GetOutput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)
	done()

	path := filepath.Join(t.TempDir(), "out.txt")
	f, done, err = GetOutput(path)
	require.NoError(t, err)
	_, err = f.WriteString("x")
	require.NoError(t, err)
	done()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, "bad %s", "thing")
	assert.Equal(t, "error: bad thing\n", buf.String())
}
