package terminal

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestConsoleWritesPlainTextToBuffers(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)

	c.Success("%s loaded", "IBM")
	c.Warn("ticker not loaded")
	c.Error(stderrors.New("boom"))

	assert.Equal(t, "IBM loaded\nticker not loaded\nError: boom\n", out.String())
}

func TestConsoleTable(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)

	tbl := types.NewTable("currency code", "currency name")
	tbl.Rows = [][]string{{"EUR", "EURO"}, {"RUB", "RUSSIAN RUBLE"}}
	c.Table(tbl)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[1], "currency code")
	assert.Contains(t, out.String(), "RUSSIAN RUBLE")

	out.Reset()
	c.Table(types.NewTable("symbol", "name"))
	assert.Contains(t, out.String(), "symbol")
}
