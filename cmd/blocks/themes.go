package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in themes",
	Long: `Show the built-in themes with a preview of their piece colors.

A theme file is YAML or JSON. It names a built-in "base" and overrides
any of its slots:

  name: sunset
  base: classic
  colors:
    background: "#1a1020"
    text: white
  pieces:
    I: "#ff8800"
  glyphs:
    O: "▓"
  sounds:
    line: ./sounds/line.wav

Examples:
  blocks themes
  blocks themes validate ./sunset.yaml`,
	Args: cobra.NoArgs,
	Run:  runThemes,
}

var themesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a theme file and list ignored fields",
	Args:  cobra.ExactArgs(1),
	Run:   runThemesValidate,
}

func init() {
	themesCmd.AddCommand(themesValidateCmd)
}

func runThemes(_ *cobra.Command, _ []string) {
	fmt.Println("Built-in themes:")
	fmt.Println()

	for _, name := range theme.Names() {
		t, _ := theme.Builtin(name)
		marker := " "
		if name == theme.DefaultName {
			marker = "*"
		}
		fmt.Printf(" %s %-8s  %s\n", marker, name, preview(t))
	}

	fmt.Println()
	fmt.Println("* default. Use 'blocks play --theme <name>' to pick one.")
}

// preview draws one block of every piece type in the theme's colors.
func preview(t theme.Theme) string {
	var sb strings.Builder
	for _, p := range engine.PieceTypes {
		style := lipgloss.NewStyle()
		if c := t.PieceColor(p); !c.IsDefault() {
			style = style.Foreground(lipgloss.Color(c))
		}
		sb.WriteString(style.Render(t.Glyph(p)))
		sb.WriteByte(' ')
	}
	return sb.String()
}

func runThemesValidate(_ *cobra.Command, args []string) {
	path := args[0]

	t, issues, err := theme.Load(path, "")
	if err != nil {
		logger.Error("theme is not usable", "error", err)
		os.Exit(1)
	}

	name := t.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("%s: %s\n", path, name)
	fmt.Printf("  %s\n", preview(t))

	if len(issues) == 0 {
		fmt.Println("No problems found.")
		return
	}

	fmt.Printf("%d field(s) ignored:\n", len(issues))
	for _, issue := range issues {
		fmt.Printf("  - %s\n", issue)
	}
	os.Exit(2)
}
