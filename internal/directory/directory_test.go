package directory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type DirectoryTestSuite struct {
	suite.Suite
	dir *Directory
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectoryTestSuite))
}

func (suite *DirectoryTestSuite) SetupTest() {
	dir, err := Load("")
	suite.Require().NoError(err)
	suite.dir = dir
}

func (suite *DirectoryTestSuite) TestEmbeddedList() {
	suite.Greater(suite.dir.Len(), 100)
	suite.Equal("AED", suite.dir.Codes()[0])
}

func (suite *DirectoryTestSuite) TestContains() {
	suite.True(suite.dir.Contains("USD"))
	suite.True(suite.dir.Contains("usd"))
	suite.True(suite.dir.Contains(" rub "))
	suite.False(suite.dir.Contains("XYZ"))
	suite.False(suite.dir.Contains(""))
}

func (suite *DirectoryTestSuite) TestFindIdenticalQueryIsPresent() {
	for _, code := range []string{"usd", "RUB", "Eur"} {
		table := suite.dir.Find(code)
		suite.Require().False(table.IsEmpty(), code)
		suite.Equal(strings.ToUpper(code), table.Rows[0][0])
	}
}

// Find also matches currency names, which widens plain code matching: a name
// query that no code resembles still finds its currency.
func (suite *DirectoryTestSuite) TestFindMatchesNamesBeyondCodes() {
	suite.LessOrEqual(Ratio("RUSSIAN RUBLE", "RUB"), MatchThreshold)

	table := suite.dir.Find("russian ruble")
	suite.Require().False(table.IsEmpty())
	suite.Equal([]string{"RUB", "RUSSIAN RUBLE"}, table.Rows[0])

	table = suite.dir.Find("rub")
	suite.Require().False(table.IsEmpty())
	suite.Equal("RUB", table.Rows[0][0])
}

func (suite *DirectoryTestSuite) TestFindRanksByRatio() {
	table := suite.dir.Find("euro")
	suite.Require().GreaterOrEqual(table.Len(), 2)
	suite.Equal("EUR", table.Rows[0][0])

	codes := table.Column("currency code")
	suite.Contains(codes, "EUR")
	suite.Len(codes, table.Len())

	seen := map[string]bool{}
	for _, c := range codes {
		suite.False(seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func (suite *DirectoryTestSuite) TestFindNoMatch() {
	for _, query := range []string{"xyz", "qqqqqqqq", ""} {
		table := suite.dir.Find(query)
		suite.True(table.IsEmpty(), query)
		suite.Equal(types.CurrencyColumns, table.Columns)
	}
}

func (suite *DirectoryTestSuite) TestFindThresholdIsExclusive() {
	dir, err := Parse(strings.NewReader("currency code,currency name\nABCDEFGHIJ,Ten\n"))
	suite.Require().NoError(err)

	// 7 of 10 characters shared gives exactly 0.7.
	suite.Equal(0.7, Ratio("ABCDEFGXYZ", "ABCDEFGHIJ"))
	suite.True(dir.Find("ABCDEFGXYZ").IsEmpty())
	suite.False(dir.Find("ABCDEFGHXY").IsEmpty())
}

func (suite *DirectoryTestSuite) TestRatio() {
	suite.Equal(1.0, Ratio("USD", "USD"))
	suite.Equal(0.0, Ratio("ABC", "XYZ"))
	suite.InDelta(0.857, Ratio("EURO", "EUR"), 0.001)
}

func (suite *DirectoryTestSuite) TestLoadFromFile() {
	path := filepath.Join(suite.T().TempDir(), "list.csv")
	suite.Require().NoError(os.WriteFile(path, []byte("currency code,currency name\nusd,us dollar\n,blank\n"), 0o644))

	dir, err := Load(path)
	suite.Require().NoError(err)
	suite.Equal(1, dir.Len())
	suite.Equal([]string{"USD"}, dir.Codes())
}

func (suite *DirectoryTestSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(suite.T().TempDir(), "missing.csv"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDirectoryLoadFailed))
}
