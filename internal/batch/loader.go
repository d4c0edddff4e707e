package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// Scanner buffer sizes for reading pass files
	scannerInitialBuffer = 64 * 1024   // 64 KB
	scannerMaxBuffer     = 1024 * 1024 // 1 MB
)

// LoadFile reads all codes from a file, one per line.
// Lines are trimmed and blank lines are skipped.
func LoadFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer f.Close()

	codes, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}

	return codes, nil
}

// ReadLines reads trimmed, non-blank lines from r.
func ReadLines(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	for scanner.Scan() {
		code := strings.TrimSpace(scanner.Text())
		if code != "" {
			codes = append(codes, code)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}
