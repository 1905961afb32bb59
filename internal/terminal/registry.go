package terminal

import (
	"context"
	"io"
	"strings"

	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/urfave/cli/v3"
)

// Command is one entry of a section's command table.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	// Flags builds a fresh flag set; flag values must not leak between lines.
	Flags  func() []cli.Flag
	Action cli.ActionFunc
}

// Registry maps command names and aliases of one section to their commands.
type Registry struct {
	commands []*Command
}

// NewRegistry creates a registry from commands.
func NewRegistry(commands ...*Command) *Registry {
	return &Registry{commands: commands}
}

// Lookup finds the command named token, ignoring case.
func (r *Registry) Lookup(token string) (*Command, bool) {
	for _, c := range r.commands {
		if strings.EqualFold(c.Name, token) {
			return c, true
		}

		for _, alias := range c.Aliases {
			if strings.EqualFold(alias, token) {
				return c, true
			}
		}
	}

	return nil, false
}

// Words returns every command name and alias, for completion.
func (r *Registry) Words() []string {
	var words []string
	for _, c := range r.commands {
		words = append(words, c.Name)
		words = append(words, c.Aliases...)
	}

	return words
}

// Help returns the command table of the section.
func (r *Registry) Help() types.Table {
	t := types.NewTable("command", "aliases", "usage")
	for _, c := range r.commands {
		t.Rows = append(t.Rows, []string{c.Name, strings.Join(c.Aliases, ", "), c.Usage})
	}

	return t
}

// Dispatch runs the command named by tokens[0] with the remaining tokens as
// its flags. Flag errors are returned, never printed or turned into an exit.
func (r *Registry) Dispatch(ctx context.Context, tokens []string, out io.Writer) error {
	if len(tokens) == 0 {
		return nil
	}

	c, ok := r.Lookup(tokens[0])
	if !ok {
		return errors.Newf(errors.ErrCodeUnknownCommand, "unknown command %q, type help to list commands", tokens[0])
	}

	var flags []cli.Flag
	if c.Flags != nil {
		flags = c.Flags()
	}

	cmd := &cli.Command{
		Name:            c.Name,
		Usage:           c.Usage,
		Flags:           flags,
		Before:          requireFlags,
		Action:          c.Action,
		HideHelp:        true,
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       out,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return errors.Wrap(errors.ErrCodeInvalidParameter, c.Name, err)
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	args := append([]string{c.Name}, tokens[1:]...)
	return cmd.Run(ctx, args)
}

// requireFlags fails when a required flag of cmd was not given. It runs as the
// Before hook so the check happens ahead of cli's own, which would print help.
func requireFlags(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var missing []string
	for _, f := range cmd.Flags {
		if r, ok := f.(cli.RequiredFlag); ok && r.IsRequired() && !cmd.IsSet(f.Names()[0]) {
			missing = append(missing, "--"+f.Names()[0])
		}
	}

	switch len(missing) {
	case 0:
		return ctx, nil
	case 1:
		return ctx, errors.Newf(errors.ErrCodeMissingParameter, "%s: %s is required", cmd.Name, missing[0])
	default:
		return ctx, errors.Newf(errors.ErrCodeMissingParameter, "%s: %s are required", cmd.Name, strings.Join(missing, ", "))
	}
}
