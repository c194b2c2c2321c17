package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestReport() *domain.Report {
	state := domain.DefaultState()
	state.UserSettings.Name = "Test household"
	return calculation.NewCalculationEngine().Run(state)
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *domain.Report) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	out, err := formatter.Format(buildTestReport())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "test output", string(out))
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestWriteFormatted(t *testing.T) {
	chdir(t, t.TempDir())

	formatter := FormatterFunc{ID: "x", F: func(*domain.Report) ([]byte, error) { return []byte("content"), nil }}
	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "fire_report_"))
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{ID: "err", F: func(*domain.Report) ([]byte, error) { return nil, fmt.Errorf("formatter error") }}
	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")
	require.Error(t, err)
	assert.Empty(t, filename)
	assert.Contains(t, err.Error(), "formatter error")
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"console", "console"},
		{"TABLE", "console"},
		{"json", "json"},
		{"yml", "yaml"},
		{"csv", "csv"},
		{"html", "html"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := GetFormatterByName(tt.in)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Name())
		})
	}
	assert.Nil(t, GetFormatterByName("pdf"))
	assert.Contains(t, AvailableFormats(), "yaml")
	assert.Contains(t, AvailableFormatAliases(), "yml")
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "FIRE PLAN: Test household")
	assert.Contains(t, content, "INCOME (annual)")
	assert.Contains(t, content, "CASH FLOW (per month)")
	assert.Contains(t, content, "MORTGAGE")
	assert.Contains(t, content, "Repayments are per fortnight")
	assert.Contains(t, content, "NET WORTH")
	assert.Contains(t, content, "FIRE target")

	_, err = ConsoleFormatter{}.Format(nil)
	assert.Error(t, err)
}

func TestConsoleFormatter_RentingHasNoMortgage(t *testing.T) {
	state := domain.DefaultState()
	state.UserSettings.IsRenting = true
	out, err := ConsoleFormatter{}.Format(calculation.NewCalculationEngine().Run(state))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "MORTGAGE\n")
}

func TestJSONFormatter(t *testing.T) {
	report := buildTestReport()
	out, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.True(t, decoded.Surplus.Equal(report.Surplus))
	assert.Len(t, decoded.NetWorth.Data, calculation.ProjectionYears+1)
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "breakdown")
	assert.Contains(t, decoded, "net_worth")
}

func TestCSVFormatter(t *testing.T) {
	report := buildTestReport()
	out, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, calculation.ProjectionYears+2)
	assert.Equal(t, "Year", records[0][0])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, report.NetWorth.Data[0].NetWorth.StringFixed(2), records[1][1])
	assert.NotEmpty(t, records[1][7], "mortgage columns are filled within the loan term")
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "<title>FIRE Plan: Test household</title>")
	assert.Contains(t, content, "Mortgage payoff")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-$10.00", FormatCurrency(decimal.NewFromInt(-10)))
	assert.Equal(t, "4.00%", FormatPercentage(decimal.NewFromInt(4)))
	assert.Equal(t, "not reached", FormatYear(nil))
	y := 12
	assert.Equal(t, "year 12", FormatYear(&y))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
