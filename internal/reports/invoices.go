package reports

import (
	"fmt"
	"sort"

	"github.com/mhollis/trackledger/internal/shared"
)

// CountryCount is one result row of [Engine.InvoiceCountByCountry].
type CountryCount struct {
	Country  string
	Invoices int
}

// InvoiceCountByCountry groups invoices by billing country and counts them.
// Ordered by count descending; countries with equal counts are ordered by
// name ascending so equal counts never reorder between runs.
func (e *Engine) InvoiceCountByCountry() ([]CountryCount, error) {
	invoices := e.snap.Invoices()
	if len(invoices) == 0 {
		return nil, fmt.Errorf("%w: invoices", shared.ErrMissingData)
	}

	counts := newCounter[string]()
	for _, inv := range invoices {
		counts.add(inv.BillingCountry, 1)
	}

	rows := make([]CountryCount, 0, counts.len())
	for _, country := range counts.order {
		rows = append(rows, CountryCount{Country: country, Invoices: int(counts.totals[country])})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Invoices != rows[j].Invoices {
			return rows[i].Invoices > rows[j].Invoices
		}
		return rows[i].Country < rows[j].Country
	})
	return rows, nil
}

// InvoiceTotal is one result row of [Engine.TopInvoiceTotals].
type InvoiceTotal struct {
	InvoiceID  int
	TotalCents int64
}

// TopInvoiceTotals returns the n largest invoice totals in descending order.
// Duplicate totals are retained; equal totals keep invoice input order.
func (e *Engine) TopInvoiceTotals(n int) ([]InvoiceTotal, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive", shared.ErrInvalidInput)
	}
	invoices := e.snap.Invoices()
	if len(invoices) == 0 {
		return nil, fmt.Errorf("%w: invoices", shared.ErrMissingData)
	}

	rows := make([]InvoiceTotal, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, InvoiceTotal{InvoiceID: inv.ID, TotalCents: inv.TotalCents})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCents > rows[j].TotalCents
	})

	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

// CityRevenue is the result of [Engine.TopCityByRevenue].
type CityRevenue struct {
	City         string
	RevenueCents int64
}

// TopCityByRevenue sums invoice totals per billing city and returns the
// single best city. Among tied cities the first encountered in invoice
// order wins.
func (e *Engine) TopCityByRevenue() (CityRevenue, error) {
	invoices := e.snap.Invoices()
	if len(invoices) == 0 {
		return CityRevenue{}, fmt.Errorf("%w: invoices", shared.ErrMissingData)
	}

	revenue := newCounter[string]()
	for _, inv := range invoices {
		revenue.add(inv.BillingCity, inv.TotalCents)
	}

	best := revenue.maxKeys()[0]
	return CityRevenue{City: best, RevenueCents: revenue.totals[best]}, nil
}

func invoiceCountByCountryTable(e *Engine, _ Params) (*Table, error) {
	rows, err := e.InvoiceCountByCountry()
	if err != nil {
		return nil, err
	}

	table := &Table{
		Title:   "Invoices by billing country",
		Columns: []string{"Country", "Invoices"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.Country, fmt.Sprintf("%d", r.Invoices)})
	}
	return table, nil
}

func topInvoiceTotalsTable(e *Engine, p Params) (*Table, error) {
	rows, err := e.TopInvoiceTotals(p.N)
	if err != nil {
		return nil, err
	}

	table := &Table{
		Title:   fmt.Sprintf("Top %d invoice totals", p.N),
		Columns: []string{"Invoice", "Total"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", r.InvoiceID), shared.FormatCents(r.TotalCents),
		})
	}
	return table, nil
}

func topCityByRevenueTable(e *Engine, _ Params) (*Table, error) {
	row, err := e.TopCityByRevenue()
	if err != nil {
		return nil, err
	}

	return &Table{
		Title:   "Top city by revenue",
		Columns: []string{"City", "Revenue"},
		Rows:    [][]string{{row.City, shared.FormatCents(row.RevenueCents)}},
	}, nil
}
