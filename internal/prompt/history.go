package prompt

import (
	"bufio"
	"os"
	"strings"

	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

// History is the list of previously entered lines, optionally mirrored to a file.
type History struct {
	path    string
	entries []string
}

// LoadHistory reads the history file at path. A missing file starts an empty
// history; an empty path keeps history in memory only.
func LoadHistory(path string) (*History, error) {
	h := &History{path: path}
	if path == "" {
		return h, nil
	}

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return h, nil
	}

	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeConfigFileFailed, err, "open history %s", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			h.entries = append(h.entries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeConfigFileFailed, err, "read history %s", path)
	}

	return h, nil
}

// Entries returns the history, oldest first.
func (h *History) Entries() []string {
	return h.entries
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns entry i, oldest first.
func (h *History) At(i int) string {
	return h.entries[i]
}

// Append records line. Blank lines and repeats of the last entry are skipped.
func (h *History) Append(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || (len(h.entries) > 0 && h.entries[len(h.entries)-1] == line) {
		return nil
	}

	h.entries = append(h.entries, line)

	if h.path == "" {
		return nil
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeConfigFileFailed, err, "open history %s", h.path)
	}
	defer file.Close()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return errors.Wrapf(errors.ErrCodeConfigFileFailed, err, "write history %s", h.path)
	}

	return nil
}
