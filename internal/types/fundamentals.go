package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod distinguishes quarterly from annual balance sheet reports.
type ReportPeriod string

const (
	ReportPeriodQuarterly ReportPeriod = "quarterly"
	ReportPeriodAnnual    ReportPeriod = "annual"
)

// BalanceSheetReport holds the balance sheet figures of one fiscal period.
type BalanceSheetReport struct {
	FiscalDateEnding       time.Time
	Period                 ReportPeriod
	ReportedCurrency       string
	TotalAssets            decimal.Decimal
	TotalLiabilities       decimal.Decimal
	TotalShareholderEquity decimal.Decimal
}

// LiabilitiesToEquity returns total liabilities divided by shareholder equity,
// or zero when equity is zero.
func (r BalanceSheetReport) LiabilitiesToEquity() decimal.Decimal {
	if r.TotalShareholderEquity.IsZero() {
		return decimal.Zero
	}

	return r.TotalLiabilities.Div(r.TotalShareholderEquity)
}

// FiscalLabel formats the fiscal date as a quarter ("2024Q3") or a year ("2024").
func (r BalanceSheetReport) FiscalLabel() string {
	if r.Period == ReportPeriodAnnual {
		return r.FiscalDateEnding.Format("2006")
	}

	quarter := (int(r.FiscalDateEnding.Month())-1)/3 + 1

	return r.FiscalDateEnding.Format("2006") + "Q" + string(rune('0'+quarter))
}

// BalanceSheet holds the quarterly and annual reports of one ticker, each
// sorted ascending by fiscal date.
type BalanceSheet struct {
	Symbol    string
	Quarterly []BalanceSheetReport
	Annual    []BalanceSheetReport
}
