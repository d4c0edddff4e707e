package batch

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteTextFile writes seat ids to a plain text file.
// Each id is on a separate line.
func WriteTextFile(ids []int, outputPath string) error {
	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = strconv.Itoa(id)
	}

	content := strings.Join(lines, "\n")
	if len(ids) > 0 {
		content += "\n" // Add trailing newline
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}

	return nil
}
