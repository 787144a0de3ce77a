package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawTextColored(0, 0, "plain", core.ColorDefault)
	s.DrawTextColored(1, 1, "red", core.ColorRed)
	s.SetCell(5, 1, core.Cell{Rune: '█', Fg: core.ColorYellow, Bg: core.ColorGray})
	s.DrawTextColored(0, 2, "██", "#00f0f0")

	got := ansi.Strip(RenderScreen(s))
	if got != s.String() {
		t.Errorf("styled output text differs from screen:\n%q\n%q", got, s.String())
	}
}

func TestRenderScreenLines(t *testing.T) {
	s := core.NewScreen(4, 5)
	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if l != "    " {
			t.Errorf("line %d: expected unstyled blanks, got %q", i, l)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if got := RenderScreen(core.NewScreen(0, 0)); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestStyleCache(t *testing.T) {
	s := core.NewScreen(2, 1)
	s.SetCell(0, 0, core.Cell{Rune: 'x', Fg: core.ColorWhite, Bg: core.ColorDim})
	RenderScreen(s)
	RenderScreen(s)

	styles.Lock()
	defer styles.Unlock()
	n := 0
	for k := range styles.m {
		if k.fg == core.ColorWhite && k.bg == core.ColorDim {
			n++
		}
	}
	if n != 1 {
		t.Errorf("expected one cached style for the pair, got %d", n)
	}
}
