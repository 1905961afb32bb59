package prompt

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ReaderTestSuite struct {
	suite.Suite
}

func TestReaderSuite(t *testing.T) {
	suite.Run(t, new(ReaderTestSuite))
}

func (suite *ReaderTestSuite) TestScannerReader() {
	var out bytes.Buffer
	reader := NewScannerReader(strings.NewReader("load -t IBM\n\nquit\n"), &out)
	ctx := context.Background()

	line, err := reader.ReadLine(ctx, "stock>> ")
	suite.NoError(err)
	suite.Equal("load -t IBM", line)

	line, err = reader.ReadLine(ctx, "stock>> ")
	suite.NoError(err)
	suite.Equal("", line)

	line, err = reader.ReadLine(ctx, "stock>> ")
	suite.NoError(err)
	suite.Equal("quit", line)

	_, err = reader.ReadLine(ctx, "stock>> ")
	suite.ErrorIs(err, io.EOF)

	suite.Equal(4, strings.Count(out.String(), "stock>> "))
}

func (suite *ReaderTestSuite) TestScannerReaderCancelled() {
	reader := NewScannerReader(strings.NewReader("quit\n"), io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reader.ReadLine(ctx, "> ")
	suite.ErrorIs(err, context.Canceled)
}

func (suite *ReaderTestSuite) TestNewPicksScannerForPipes() {
	r, w, err := os.Pipe()
	suite.Require().NoError(err)
	defer r.Close()
	defer w.Close()

	reader := New(r, io.Discard, nil, nil)
	suite.IsType(&ScannerReader{}, reader)
}

func (suite *ReaderTestSuite) TestHistoryFile() {
	path := filepath.Join(suite.T().TempDir(), ".session_history")

	history, err := LoadHistory(path)
	suite.Require().NoError(err)
	suite.Equal(0, history.Len())

	suite.NoError(history.Append("load -t IBM"))
	suite.NoError(history.Append("load -t IBM"))
	suite.NoError(history.Append("   "))
	suite.NoError(history.Append("plotLine"))
	suite.Equal([]string{"load -t IBM", "plotLine"}, history.Entries())

	reloaded, err := LoadHistory(path)
	suite.Require().NoError(err)
	suite.Equal(history.Entries(), reloaded.Entries())
}

func (suite *ReaderTestSuite) TestMemoryHistory() {
	history, err := LoadHistory("")
	suite.Require().NoError(err)
	suite.NoError(history.Append("find -k tesco"))
	suite.Equal("find -k tesco", history.At(0))
}
