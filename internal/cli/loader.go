package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ResolveEncoding turns an encoding argument into the raw binary string.
// An argument of the form "@path" reads the file at path and uses its
// first line, trimmed of surrounding whitespace; anything else is taken
// literally. Validation of the string itself is the decoder's job.
func ResolveEncoding(arg string) (string, error) {
	if !strings.HasPrefix(arg, "@") {
		return strings.TrimSpace(arg), nil
	}

	path := strings.TrimPrefix(arg, "@")
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read encoding file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Encodings can be long; allow lines well past the default buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read encoding file %s: %w", path, err)
		}
		return "", fmt.Errorf("encoding file %s is empty", path)
	}

	return strings.TrimSpace(scanner.Text()), nil
}

// DecimalToBinary converts a non-negative decimal literal to its binary
// representation, for machines handed around as Gödel-style numbers.
func DecimalToBinary(s string) (string, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid decimal number %q: %w", s, err)
	}
	return strconv.FormatUint(n, 2), nil
}
