package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fireplan/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

const yAxisWidth = 9

// DataSeries is one line on a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart draws yearly series as a character grid
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // X-axis labels, one per point
	Width      int
	Height     int
	ShowLegend bool
}

// NewASCIIChart creates a chart with the default size
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      60,
		Height:     12,
		ShowLegend: true,
	}
}

// AddSeries adds a series of plain values
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// AddDecimalSeries adds a series of money values
func (c *ASCIIChart) AddDecimalSeries(name string, values []decimal.Decimal, color lipgloss.Color) *ASCIIChart {
	points := make([]float64, len(values))
	for i, v := range values {
		points[i] = v.InexactFloat64()
	}
	return c.AddSeries(name, points, color)
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions, including the Y axis
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if c.empty() {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		content.WriteString("\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}
	return content.String()
}

func (c *ASCIIChart) empty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// bounds spans every series with 5% headroom. A flat series gets a unit range
// so it renders on the middle row.
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if hi == lo {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

func (c *ASCIIChart) plotWidth() int {
	return max(c.Width-yAxisWidth-3, 2)
}

func (c *ASCIIChart) height() int {
	return max(c.Height, 2)
}

// cell maps a point to grid coordinates
func (c *ASCIIChart) cell(i, n int, value, minVal, maxVal float64) (int, int) {
	width, height := c.plotWidth(), c.height()
	x := 0
	if n > 1 {
		x = int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
	}
	y := height - 1 - int(math.Round((value-minVal)/(maxVal-minVal)*float64(height-1)))
	return x, y
}

func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	width, height := c.plotWidth(), c.height()
	grid := make([][]rune, height)
	owner := make([][]int, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
		owner[i] = make([]int, width)
	}

	for idx, s := range c.Series {
		char := seriesChar(idx)
		for i, p := range s.Points {
			x, y := c.cell(i, len(s.Points), p, minVal, maxVal)
			if i > 0 {
				px, py := c.cell(i-1, len(s.Points), s.Points[i-1], minVal, maxVal)
				drawLine(grid, owner, px, py, x, y, idx)
			}
			grid[y][x] = char
			owner[y][x] = idx
		}
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	var out strings.Builder
	for row := range grid {
		value := maxVal - float64(row)/float64(height-1)*(maxVal-minVal)
		out.WriteString(axis.Render(FormatChartValue(value)))
		out.WriteString(" │ ")
		for col, r := range grid[row] {
			if r == ' ' {
				out.WriteRune(r)
				continue
			}
			out.WriteString(lipgloss.NewStyle().Foreground(c.Series[owner[row][col]].Color).Render(string(r)))
		}
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", width+1))
	if len(c.Labels) > 0 {
		out.WriteString("\n")
		out.WriteString(c.renderXAxisLabels(width))
	}
	return out.String()
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine joins two points with Bresenham's algorithm using '·' without
// overwriting cells already drawn
func drawLine(grid [][]rune, owner [][]int, x0, y0, x1, y1 int, idx int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		if grid[y0][x0] == ' ' {
			grid[y0][x0] = '·'
			owner[y0][x0] = idx
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// renderXAxisLabels places the first, middle and last labels under the plot
func (c *ASCIIChart) renderXAxisLabels(width int) string {
	line := []rune(strings.Repeat(" ", width+1))
	n := len(c.Labels)
	for _, i := range []int{0, n / 2, n - 1} {
		label := []rune(c.Labels[i])
		pos := 0
		if n > 1 {
			pos = int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
		}
		pos = min(pos, len(line)-len(label))
		if pos < 0 {
			continue
		}
		copy(line[pos:], label)
	}
	return strings.Repeat(" ", yAxisWidth+3) + lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(string(line))
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	return tuistyles.SubtitleStyle.Render(strings.Join(items, "  "))
}

// FormatChartValue abbreviates an axis value
func FormatChartValue(value float64) string {
	switch a := math.Abs(value); {
	case a >= 1e6:
		return fmt.Sprintf("$%.1fM", value/1e6)
	case a >= 1e3:
		return fmt.Sprintf("$%.0fK", value/1e3)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
