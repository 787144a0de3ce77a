package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

type styleKey struct {
	r      *lipgloss.Renderer
	fg, bg core.Color
}

// styles caches one lipgloss style per color pair. SSH sessions render
// concurrently, so access is guarded.
var styles = struct {
	sync.Mutex
	m map[styleKey]lipgloss.Style
}{m: make(map[styleKey]lipgloss.Style)}

func styleFor(r *lipgloss.Renderer, fg, bg core.Color) lipgloss.Style {
	k := styleKey{r, fg, bg}

	styles.Lock()
	defer styles.Unlock()

	if s, ok := styles.m[k]; ok {
		return s
	}
	s := r.NewStyle()
	if !fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if !bg.IsDefault() {
		s = s.Background(lipgloss.Color(bg))
	}
	styles.m[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for the local terminal.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(lipgloss.DefaultRenderer(), s)
}

// RenderScreenWith converts a Screen buffer to a string styled for r's output.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreenWith(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg.IsDefault() && start.Bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(r, start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
