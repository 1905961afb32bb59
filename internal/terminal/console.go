package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rxtech-lab/argo-terminal/internal/types"
)

// Console writes command output. Styles degrade to plain text when the writer
// is not a color terminal.
type Console struct {
	out io.Writer

	titleStyle   lipgloss.Style
	helpStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	warnStyle    lipgloss.Style
	successStyle lipgloss.Style
	headerStyle  lipgloss.Style
	cellStyle    lipgloss.Style
	borderStyle  lipgloss.Style
}

// NewConsole creates a console writing to out.
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)

	return &Console{
		out:          out,
		titleStyle:   r.NewStyle().Bold(true),
		helpStyle:    r.NewStyle().Faint(true),
		errorStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warnStyle:    r.NewStyle().Foreground(lipgloss.Color("11")),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
		headerStyle:  r.NewStyle().Bold(true).Padding(0, 1),
		cellStyle:    r.NewStyle().Padding(0, 1),
		borderStyle:  r.NewStyle().Faint(true),
	}
}

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Println writes a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted plain text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Title writes a bold heading.
func (c *Console) Title(format string, a ...any) {
	fmt.Fprintln(c.out, c.titleStyle.Render(fmt.Sprintf(format, a...)))
}

// Help writes a faint hint.
func (c *Console) Help(format string, a ...any) {
	fmt.Fprintln(c.out, c.helpStyle.Render(fmt.Sprintf(format, a...)))
}

// Success writes a confirmation.
func (c *Console) Success(format string, a ...any) {
	fmt.Fprintln(c.out, c.successStyle.Render(fmt.Sprintf(format, a...)))
}

// Warn writes a warning.
func (c *Console) Warn(format string, a ...any) {
	fmt.Fprintln(c.out, c.warnStyle.Render(fmt.Sprintf(format, a...)))
}

// Error writes err in red.
func (c *Console) Error(err error) {
	fmt.Fprintln(c.out, c.errorStyle.Render("Error: "+err.Error()))
}

// Table writes t with its headers. An empty table prints its headers only.
func (c *Console) Table(t types.Table) {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.borderStyle).
		Headers(t.Columns...).
		Rows(t.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.headerStyle
			}

			return c.cellStyle
		})

	fmt.Fprintln(c.out, tbl.Render())
}

// Clear clears the screen.
func (c *Console) Clear() {
	fmt.Fprint(c.out, "\033[H\033[2J")
}
