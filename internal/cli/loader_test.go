package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeEncodingFile writes an encoding to a temp file and returns its path.
func writeEncodingFile(t *testing.T, encoding string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machine.txt")
	require.NoError(t, os.WriteFile(path, []byte(encoding+"\n"), 0644))
	return path
}

func TestResolveEncodingLiteral(t *testing.T) {
	got, err := ResolveEncoding("01010010010")
	require.NoError(t, err)
	assert.Equal(t, "01010010010", got)
}

func TestResolveEncodingTrimsWhitespace(t *testing.T) {
	got, err := ResolveEncoding("  0101\n")
	require.NoError(t, err)
	assert.Equal(t, "0101", got)
}

func TestResolveEncodingFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.txt")
	require.NoError(t, os.WriteFile(path, []byte("01010010010\nsecond line ignored\n"), 0644))

	got, err := ResolveEncoding("@" + path)
	require.NoError(t, err)
	assert.Equal(t, "01010010010", got)
}

func TestResolveEncodingFileFirstLineTrimmed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.txt")
	require.NoError(t, os.WriteFile(path, []byte("  0101 \r\n"), 0644))

	got, err := ResolveEncoding("@" + path)
	require.NoError(t, err)
	assert.Equal(t, "0101", got)
}

func TestResolveEncodingMissingFile(t *testing.T) {
	_, err := ResolveEncoding("@" + filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read encoding file")
}

func TestResolveEncodingEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := ResolveEncoding("@" + path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestDecimalToBinary(t *testing.T) {
	testCases := []struct {
		decimal string
		binary  string
	}{
		{"0", "0"},
		{"1", "1"},
		{"5", "101"},
		{"1337", "10100111001"},
		{" 42 ", "101010"},
	}

	for _, tc := range testCases {
		got, err := DecimalToBinary(tc.decimal)
		require.NoError(t, err, "decimal %q", tc.decimal)
		assert.Equal(t, tc.binary, got)
	}
}

func TestDecimalToBinaryRejectsInvalid(t *testing.T) {
	for _, bad := range []string{"", "-1", "12x", "0b101"} {
		_, err := DecimalToBinary(bad)
		require.Error(t, err, "input %q", bad)
		assert.Contains(t, err.Error(), "invalid decimal number")
	}
}
