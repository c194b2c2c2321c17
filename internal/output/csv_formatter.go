package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/fireplan/internal/domain"
)

// CSVFormatter writes one row per projection year. Mortgage columns are
// empty past the loan term or when renting.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "NetWorth", "FireTarget", "Assets", "Liabilities", "Mortgage", "Property",
		"BalanceActual", "BalanceStandard", "Equity", "Redraw"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	schedule := map[int]domain.MortgageYear{}
	if report.Mortgage != nil {
		for _, y := range report.Mortgage.Data {
			schedule[y.Year] = y
		}
	}

	for _, y := range report.NetWorth.Data {
		row := []string{
			strconv.Itoa(y.Year),
			y.NetWorth.StringFixed(2),
			y.FireTarget.StringFixed(2),
			y.Assets.StringFixed(2),
			y.Liabilities.StringFixed(2),
			y.Mortgage.StringFixed(2),
			y.Property.StringFixed(2),
		}
		if m, ok := schedule[y.Year]; ok {
			row = append(row, m.BalanceActual.StringFixed(2), m.BalanceStandard.StringFixed(2),
				m.Equity.StringFixed(2), m.Redraw.StringFixed(2))
		} else {
			row = append(row, "", "", "", "")
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
