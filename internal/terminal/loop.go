// Package terminal implements the interactive command loop.
package terminal

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/prompt"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/rxtech-lab/argo-terminal/pkg/marketdata"
	"go.uber.org/zap"
)

// State is the lifecycle state of a loop.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// Section names the command set a loop serves.
type Section string

const (
	SectionTop    Section = "argo"
	SectionStock  Section = "stock"
	SectionForex  Section = "forex"
	SectionCrypto Section = "crypto"
)

// ParseSection maps a section name or asset kind to a Section.
func ParseSection(name string) (Section, error) {
	switch Section(strings.ToLower(strings.TrimSpace(name))) {
	case "", SectionTop:
		return SectionTop, nil
	case SectionStock:
		return SectionStock, nil
	case SectionForex:
		return SectionForex, nil
	case SectionCrypto:
		return SectionCrypto, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidParameter, "unknown section %q", name)
	}
}

// Kind returns the asset kind served by an asset section.
func (s Section) Kind() types.AssetKind {
	switch s {
	case SectionForex:
		return types.AssetKindForex
	case SectionCrypto:
		return types.AssetKindCrypto
	default:
		return types.AssetKindStock
	}
}

// Prompt returns the line prompt of the section.
func (s Section) Prompt() string {
	return string(s) + ">> "
}

// Deps is everything a loop needs from the outside.
type Deps struct {
	Console  *Console
	Reader   prompt.LineReader
	Logger   *logger.Logger
	Sources  SourceFactory
	Renderer Renderer
	// Now returns the current time; the default plotting window ends today.
	Now func() time.Time
}

// Loop reads and executes commands of one section until quit or end of input.
type Loop struct {
	section  Section
	state    State
	active   optional.Option[marketdata.Source]
	deps     Deps
	registry *Registry
}

// NewLoop creates a running loop for section.
func NewLoop(section Section, deps Deps) *Loop {
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}

	if deps.Now == nil {
		deps.Now = time.Now
	}

	l := &Loop{
		section: section,
		state:   StateRunning,
		active:  optional.None[marketdata.Source](),
		deps:    deps,
	}

	if section == SectionTop {
		l.registry = l.topCommands()
	} else {
		l.registry = l.assetCommands()
	}

	return l
}

// State returns the loop state.
func (l *Loop) State() State {
	return l.state
}

// Section returns the section served by the loop.
func (l *Loop) Section() Section {
	return l.section
}

// Active returns the source loaded by the last successful load.
func (l *Loop) Active() optional.Option[marketdata.Source] {
	return l.active
}

// Run reads lines until the loop terminates. End of input terminates the loop
// without error.
func (l *Loop) Run(ctx context.Context) error {
	for l.state == StateRunning {
		l.deps.Reader.SetSuggestions(l.registry.Words())

		line, err := l.deps.Reader.ReadLine(ctx, l.section.Prompt())
		if stderrors.Is(err, io.EOF) {
			l.state = StateTerminated

			return nil
		}

		if err != nil {
			return err
		}

		l.Execute(ctx, line)
	}

	return nil
}

// Execute runs one input line. Every error is printed here and the loop keeps
// running.
func (l *Loop) Execute(ctx context.Context, line string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return
	}

	l.deps.Logger.Debug("Executing command",
		zap.String("section", string(l.section)),
		zap.Strings("tokens", tokens))

	if err := l.registry.Dispatch(ctx, tokens, l.deps.Console.Writer()); err != nil {
		l.deps.Logger.Debug("Command failed",
			zap.String("command", tokens[0]),
			zap.Int("code", int(errors.GetCode(err))),
			zap.Error(err))
		l.deps.Console.Error(err)
	}
}

// setActive replaces the active source.
func (l *Loop) setActive(source marketdata.Source) {
	l.active = optional.Some(source)
}
