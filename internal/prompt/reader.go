// Package prompt reads command lines from the user.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"go.uber.org/zap"
)

// LineReader reads one line of user input per call. It returns io.EOF when
// the input is exhausted or the user asks to leave.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	// SetSuggestions replaces the words offered for completion.
	SetSuggestions(words []string)
}

// New returns an interactive reader when in is a terminal and a plain line
// scanner otherwise.
func New(in *os.File, out io.Writer, history *History, log *logger.Logger) LineReader {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewTeaReader(in, out, history, log)
	}

	return NewScannerReader(in, out)
}

// TeaReader reads lines with a Bubble Tea prompt.
type TeaReader struct {
	in          io.Reader
	out         io.Writer
	history     *History
	suggestions []string
	logger      *logger.Logger
}

// NewTeaReader creates a TeaReader.
func NewTeaReader(in io.Reader, out io.Writer, history *History, log *logger.Logger) *TeaReader {
	if history == nil {
		history = &History{}
	}

	if log == nil {
		log = logger.NewNop()
	}

	return &TeaReader{in: in, out: out, history: history, logger: log}
}

// SetSuggestions implements LineReader.
func (r *TeaReader) SetSuggestions(words []string) {
	r.suggestions = words
}

// ReadLine implements LineReader.
func (r *TeaReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	program := tea.NewProgram(
		NewModel(prompt, r.suggestions, r.history),
		tea.WithContext(ctx),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
	)

	final, err := program.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(Model)
	if !ok || m.Aborted() {
		return "", io.EOF
	}

	if err := r.history.Append(m.Value()); err != nil {
		r.logger.Warn("Failed to record history", zap.Error(err))
	}

	return m.Value(), nil
}

// ScannerReader reads newline-terminated lines, for piped input.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerReader creates a ScannerReader. The prompt is written to out
// before each read.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(in), out: out}
}

// SetSuggestions implements LineReader. Piped input has nothing to complete.
func (r *ScannerReader) SetSuggestions([]string) {}

// ReadLine implements LineReader.
func (r *ScannerReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(r.out, prompt)

	if !r.scanner.Scan() {
		fmt.Fprintln(r.out)

		if err := r.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return r.scanner.Text(), nil
}
