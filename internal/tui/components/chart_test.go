package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/waterlog/internal/tui/theme"
)

func TestBarChartMarksThreshold(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{80, 120, 210, 90, 0, 160, 140}
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	out := BarChart(values, labels, 150, 60, 8)

	if !strings.Contains(out, "┤") {
		t.Error("expected threshold marker on the Y axis")
	}
	if !strings.Contains(out, "Sun") {
		t.Error("last label should always be placed")
	}
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 60 {
			t.Errorf("line %d is %d wide, want <= 60", i, w)
		}
	}
}

func TestBarChartEmpty(t *testing.T) {
	theme.SetActive("flexoki-dark")
	if out := BarChart(nil, nil, 150, 40, 6); out != "" {
		t.Errorf("BarChart(nil) = %q, want empty", out)
	}
}

func TestPlaceLabelsNonASCII(t *testing.T) {
	got := placeLabels([]string{"Lun", "Mié", "Sáb"}, 3, 1, 11)
	if !strings.HasPrefix(got, "Lun") || !strings.HasSuffix(got, "Sáb") {
		t.Errorf("placeLabels = %q", got)
	}
	if !strings.Contains(got, "Mié") {
		t.Errorf("placeLabels dropped middle label: %q", got)
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 1},
		{5, 1},
		{50, 10},
		{150, 20},
		{400, 50},
		{2000, 500},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0.5, "0.5"},
		{150, "150"},
		{1000, "1k"},
		{1500, "1.5k"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.v); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestColorForUsage(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active
	tests := []struct {
		pct  float64
		want lipgloss.Color
	}{
		{0, th.Green},
		{0.5, th.Yellow},
		{0.8, th.Orange},
		{1.0, th.Orange},
		{1.01, th.Red},
	}
	for _, tt := range tests {
		if got := ColorForUsage(tt.pct); got != tt.want {
			t.Errorf("ColorForUsage(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, total := range []int{80, 101, 179} {
		for n := 1; n <= 5; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Errorf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('h'); got != TabHistory {
		t.Errorf("TabIdxByKey('h') = %d, want %d", got, TabHistory)
	}
	if got := TabIdxByKey('x'); got != TabSettings {
		t.Errorf("TabIdxByKey('x') = %d, want %d", got, TabSettings)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
