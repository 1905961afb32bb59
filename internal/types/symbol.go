package types

// Columns of a provider symbol search result, in display order.
var SymbolMatchColumns = []string{
	"Symbol",
	"Name",
	"Type",
	"Region",
	"MarketOpen",
	"MarketClose",
	"Timezone",
	"Currency",
	"MatchScore",
}

// SymbolMatch is one row of a provider symbol search.
type SymbolMatch struct {
	Symbol      string `json:"1. symbol"`
	Name        string `json:"2. name"`
	Type        string `json:"3. type"`
	Region      string `json:"4. region"`
	MarketOpen  string `json:"5. marketOpen"`
	MarketClose string `json:"6. marketClose"`
	Timezone    string `json:"7. timezone"`
	Currency    string `json:"8. currency"`
	MatchScore  string `json:"9. matchScore"`
}

// Row returns the match as a table row ordered like SymbolMatchColumns.
func (m SymbolMatch) Row() []string {
	return []string{
		m.Symbol,
		m.Name,
		m.Type,
		m.Region,
		m.MarketOpen,
		m.MarketClose,
		m.Timezone,
		m.Currency,
		m.MatchScore,
	}
}

// Columns of the physical currency directory.
var CurrencyColumns = []string{"currency code", "currency name"}

// Currency is one row of the physical currency directory.
type Currency struct {
	Code string `csv:"currency code"`
	Name string `csv:"currency name"`
}

// Row returns the currency as a table row ordered like CurrencyColumns.
func (c Currency) Row() []string {
	return []string{c.Code, c.Name}
}
