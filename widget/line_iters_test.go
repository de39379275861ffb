package widget

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(it lineIter) []displayLine {
	var out []displayLine
	for {
		dl, ok := it.next()
		if !ok {
			return out
		}
		out = append(out, dl)
	}
}

// assertColors checks a line's foreground and background, with "" meaning
// unset.
func assertColors(t *testing.T, style lipgloss.Style, fg, bg string) {
	t.Helper()
	if fg == "" {
		assert.Equal(t, lipgloss.NoColor{}, style.GetForeground(), "foreground")
	} else {
		assert.Equal(t, lipgloss.Color(fg), style.GetForeground(), "foreground")
	}
	if bg == "" {
		assert.Equal(t, lipgloss.NoColor{}, style.GetBackground(), "background")
	} else {
		assert.Equal(t, lipgloss.Color(bg), style.GetBackground(), "background")
	}
}

func TestIndicatorFillChar(t *testing.T) {
	tests := []struct {
		name      string
		ind       Indicator
		lineCount int
		marked    []int
	}{
		{"zero value marks nothing", Indicator{}, 3, nil},
		{"char marks every line", IndicatorChar("x"), 3, []int{0, 1, 2}},
		{"first line", IndicatorFirstLine("x"), 3, []int{0}},
		{"last line", IndicatorLastLine("x"), 3, []int{2}},
		{"idx in range", IndicatorIdxOrLast(5, "x"), 10, []int{5}},
		{"idx clamps to last", IndicatorIdxOrLast(5, "x"), 3, []int{2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			marked := map[int]bool{}
			for _, i := range tc.marked {
				marked[i] = true
			}
			for i := 0; i < tc.lineCount; i++ {
				want := " "
				if marked[i] {
					want = "x"
				}
				assert.Equal(t, want, tc.ind.fillChar(i, tc.lineCount), "line %d", i)
			}
		})
	}
}

func TestToLines(t *testing.T) {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Background(lipgloss.Color("4"))
	item := NewListItem("a\nb\nc")
	item.Style = style

	lines := drain(newToLines(item, false))
	require.Len(t, lines, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, lines[i].line.String())
		assertColors(t, lines[i].style, "1", "4")
		assert.False(t, lines[i].mustDisplay)
	}
}

func TestToLinesSelected(t *testing.T) {
	for _, dl := range drain(newToLines(NewListItem("a\nb"), true)) {
		assert.True(t, dl.mustDisplay)
	}
}

func TestToLinesIndicators(t *testing.T) {
	item := NewListItem("a\nb\nc")
	item.Indicators = LineIndicators{
		Left:  IndicatorFirstLine(">"),
		Right: IndicatorLastLine("<"),
	}

	lines := drain(newToLines(item, false))
	require.Len(t, lines, 3)
	assert.Equal(t, []string{">", " ", " "}, []string{lines[0].left, lines[1].left, lines[2].left})
	assert.Equal(t, []string{" ", " ", "<"}, []string{lines[0].right, lines[1].right, lines[2].right})
}

func TestBasicLines(t *testing.T) {
	items := []*toLines{
		newToLines(NewListItem("a\nb\nc"), false),
		newToLines(NewListItem("d\ne"), true),
	}
	lines := drain(newBasicLines(items))
	require.Len(t, lines, 5)
	for i, want := range []struct {
		text string
		sel  bool
	}{
		{"a", false}, {"b", false}, {"c", false}, {"d", true}, {"e", true},
	} {
		assert.Equal(t, want.text, lines[i].line.String())
		assert.Equal(t, want.sel, lines[i].mustDisplay)
	}
}

func TestBasicLinesSkipsEmptyItems(t *testing.T) {
	items := []*toLines{
		newToLines(ListItem{}, false),
		newToLines(NewListItem("a"), false),
	}
	lines := drain(newBasicLines(items))
	require.Len(t, lines, 1)
	assert.Equal(t, "a", lines[0].line.String())
}

type sepExpect struct {
	text string
	sel  bool
	fg   string
	bg   string
}

func checkSeparated(t *testing.T, items []*toLines, want []sepExpect) {
	t.Helper()
	lines := drain(newSeparatedLines(items, newSeparator(1, lipgloss.NewStyle())))
	require.Len(t, lines, len(want))
	for i, w := range want {
		assert.Equal(t, w.text, lines[i].line.String(), "line %d", i)
		assert.Equal(t, w.sel, lines[i].mustDisplay, "line %d mustDisplay", i)
		assertColors(t, lines[i].style, w.fg, w.bg)
	}
}

func TestSeparatedCountsSeparators(t *testing.T) {
	items := []*toLines{
		newToLines(NewListItem("a"), false),
		newToLines(NewListItem("b\nc"), false),
		newToLines(NewListItem("d"), false),
	}
	lines := drain(newSeparatedLines(items, newSeparator(1, lipgloss.NewStyle())))
	// N items produce N+1 separators interleaved with the items' lines.
	assert.Len(t, lines, 4+4)
	seps := 0
	for _, dl := range lines {
		if dl.line.String() == halfBlock {
			seps++
		}
	}
	assert.Equal(t, 4, seps)
}

func TestSeparatedEndSelected(t *testing.T) {
	styled := lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("4"))
	first := newToLines(NewListItem("a\nb\nc"), false)
	second := newToLines(NewListItem("d\ne"), true)
	second.style = styled

	checkSeparated(t, []*toLines{first, second}, []sepExpect{
		{halfBlock, false, "", ""},
		{"a", false, "", ""},
		{"b", false, "", ""},
		{"c", false, "", ""},
		{halfBlock, true, "1", ""},
		{"d", true, "4", "1"},
		{"e", true, "4", "1"},
		{halfBlock, true, "", "1"},
	})
}

func TestSeparatedBeginSelected(t *testing.T) {
	styled := lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("4"))
	first := newToLines(NewListItem("a\nb\nc"), true)
	first.style = styled
	second := newToLines(NewListItem("d\ne"), false)

	checkSeparated(t, []*toLines{first, second}, []sepExpect{
		{halfBlock, true, "1", ""},
		{"a", true, "4", "1"},
		{"b", true, "4", "1"},
		{"c", true, "4", "1"},
		{halfBlock, true, "", "1"},
		{"d", false, "", ""},
		{"e", false, "", ""},
		{halfBlock, false, "", ""},
	})
}

func TestSeparatedMiddleSelectedStyledItems(t *testing.T) {
	cyan := lipgloss.NewStyle().Background(lipgloss.Color("6"))
	sel := lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("4"))
	green := lipgloss.NewStyle().Background(lipgloss.Color("2"))

	first := newToLines(NewListItem("a\nb\nc"), false)
	first.style = cyan
	second := newToLines(NewListItem("d\ne"), true)
	second.style = sel
	third := newToLines(NewListItem("f\ng"), false)
	third.style = green

	checkSeparated(t, []*toLines{first, second, third}, []sepExpect{
		{halfBlock, false, "6", ""},
		{"a", false, "", "6"},
		{"b", false, "", "6"},
		{"c", false, "", "6"},
		{halfBlock, true, "1", "6"},
		{"d", true, "4", "1"},
		{"e", true, "4", "1"},
		{halfBlock, true, "2", "1"},
		{"f", false, "", "2"},
		{"g", false, "", "2"},
		{halfBlock, false, "", "2"},
	})
}

func TestSeparatedDefaultBackgroundEndcaps(t *testing.T) {
	// With a default background set, the endcap separators resolve their
	// missing neighbor color to it.
	def := lipgloss.NewStyle().Background(lipgloss.Color("8"))
	item := newToLines(NewListItem("a"), false)
	item.style = lipgloss.NewStyle().Background(lipgloss.Color("3"))

	lines := drain(newSeparatedLines([]*toLines{item}, newSeparator(1, def)))
	require.Len(t, lines, 3)
	assertColors(t, lines[0].style, "3", "8")
	assertColors(t, lines[1].style, "", "3")
	assertColors(t, lines[2].style, "8", "3")
}

func TestSeparatedEmpty(t *testing.T) {
	lines := drain(newSeparatedLines(nil, newSeparator(1, lipgloss.NewStyle())))
	assert.Empty(t, lines)
}
