package theme

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// Issue describes one theme entry that was ignored.
type Issue struct {
	Field  string
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Reason)
}

// namedColors maps color names to ANSI indexes.
var namedColors = map[string]core.Color{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
	"orange":  "208",
	"purple":  "93",
	"pink":    "205",
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseColor accepts "#rgb", "#rrggbb", an ANSI index 0-255 or a color name.
func ParseColor(s string) (core.Color, bool) {
	s = strings.TrimSpace(s)
	if hexColor.MatchString(s) {
		return core.Color(strings.ToLower(s)), true
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return core.ColorDefault, false
		}
		return core.Color(strconv.Itoa(n)), true
	}
	c, ok := namedColors[strings.ToLower(s)]
	return c, ok
}

// Load reads a theme file and resolves it against its base.
// See Parse.
func Load(path, fallbackBase string) (Theme, []Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		base, issues := baseTheme(fallbackBase)
		return base, issues, fmt.Errorf("theme: cannot read %s: %w", path, err)
	}
	return Parse(data, fallbackBase)
}

// Parse decodes a YAML or JSON theme document. The document's "base" names
// the built-in it extends; without one, fallbackBase is used. Every entry
// that cannot be understood is skipped and reported as an Issue. An error is
// returned only when the document as a whole cannot be decoded, in which case
// the base theme is returned unchanged.
func Parse(data []byte, fallbackBase string) (Theme, []Issue, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		base, issues := baseTheme(fallbackBase)
		return base, issues, fmt.Errorf("theme: cannot parse: %w", err)
	}

	p := &parser{}
	root := documentRoot(&doc)
	if root == nil {
		base, issues := baseTheme(fallbackBase)
		return base, issues, nil
	}
	if root.Kind != yaml.MappingNode {
		base, issues := baseTheme(fallbackBase)
		return base, issues, fmt.Errorf("theme: document must be a mapping, got %s", kindName(root))
	}

	var override Theme
	baseName := fallbackBase
	eachPair(root, func(key string, val *yaml.Node) {
		switch key {
		case "name":
			if s, ok := p.scalar("name", val); ok {
				override.Name = s
			}
		case "base":
			if s, ok := p.scalar("base", val); ok {
				baseName = s
			}
		case "colors":
			p.colors(val, &override.Colors)
		case "pieces":
			p.pieceMap("pieces", val, func(t engine.PieceType, field, s string) {
				if c, ok := ParseColor(s); ok {
					override.Pieces[t] = c
				} else {
					p.add(field, fmt.Sprintf("invalid color %q", s))
				}
			})
		case "glyphs", "images":
			p.pieceMap(key, val, func(t engine.PieceType, field, s string) {
				if g, ok := parseGlyph(s); ok {
					override.Glyphs[t] = g
				} else {
					p.add(field, fmt.Sprintf("glyph %q must be one or two characters", s))
				}
			})
		case "sounds":
			p.sounds(val, &override.Sounds)
		default:
			p.add(key, "unknown field")
		}
	})

	base, issues := baseTheme(baseName)
	return Merge(base, override), append(issues, p.issues...), nil
}

// baseTheme returns the named built-in, falling back to the default.
func baseTheme(name string) (Theme, []Issue) {
	if name == "" {
		return Default(), nil
	}
	if t, ok := Builtin(name); ok {
		return t, nil
	}
	return Default(), []Issue{{Field: "base", Reason: fmt.Sprintf("unknown theme %q, using %s", name, DefaultName)}}
}

// Resolve returns the theme for a configured name and optional file.
// A file's own base takes precedence over name.
func Resolve(name, file string) (Theme, []Issue, error) {
	if file == "" {
		t, issues := baseTheme(name)
		return t, issues, nil
	}
	return Load(file, name)
}

// parseGlyph accepts one character, drawn twice, or two characters.
func parseGlyph(s string) (string, bool) {
	switch utf8.RuneCountInString(s) {
	case 1:
		return s + s, true
	case 2:
		return s, true
	default:
		return "", false
	}
}

type parser struct {
	issues []Issue
}

func (p *parser) add(field, reason string) {
	p.issues = append(p.issues, Issue{Field: field, Reason: reason})
}

func (p *parser) scalar(field string, n *yaml.Node) (string, bool) {
	if n.Kind != yaml.ScalarNode {
		p.add(field, fmt.Sprintf("expected a value, got %s", kindName(n)))
		return "", false
	}
	return n.Value, true
}

func (p *parser) mapping(field string, n *yaml.Node) bool {
	if n.Kind != yaml.MappingNode {
		p.add(field, fmt.Sprintf("expected a mapping, got %s", kindName(n)))
		return false
	}
	return true
}

func (p *parser) colors(n *yaml.Node, dst *Colors) {
	if !p.mapping("colors", n) {
		return
	}
	slots := map[string]*core.Color{
		"bg":         &dst.Background,
		"background": &dst.Background,
		"panel":      &dst.Panel,
		"board":      &dst.Board,
		"grid":       &dst.Grid,
		"text":       &dst.Text,
		"ghost":      &dst.Ghost,
		"outline":    &dst.Outline,
	}
	eachPair(n, func(key string, val *yaml.Node) {
		field := "colors." + key
		slot, ok := slots[key]
		if !ok {
			p.add(field, "unknown color slot")
			return
		}
		s, ok := p.scalar(field, val)
		if !ok {
			return
		}
		c, ok := ParseColor(s)
		if !ok {
			p.add(field, fmt.Sprintf("invalid color %q", s))
			return
		}
		*slot = c
	})
}

func (p *parser) pieceMap(section string, n *yaml.Node, set func(t engine.PieceType, field, value string)) {
	if !p.mapping(section, n) {
		return
	}
	eachPair(n, func(key string, val *yaml.Node) {
		field := section + "." + key
		t, ok := engine.ParsePieceType(strings.ToUpper(key))
		if !ok {
			p.add(field, "unknown piece type")
			return
		}
		if s, ok := p.scalar(field, val); ok {
			set(t, field, s)
		}
	})
}

func (p *parser) sounds(n *yaml.Node, dst *Sounds) {
	if !p.mapping("sounds", n) {
		return
	}
	slots := map[string]*string{
		"move":      &dst.Move,
		"rotate":    &dst.Rotate,
		"drop":      &dst.Drop,
		"line":      &dst.Line,
		"hold":      &dst.Hold,
		"level_up":  &dst.LevelUp,
		"levelUp":   &dst.LevelUp,
		"game_over": &dst.GameOver,
		"gameOver":  &dst.GameOver,
	}
	eachPair(n, func(key string, val *yaml.Node) {
		field := "sounds." + key
		slot, ok := slots[key]
		if !ok {
			p.add(field, "unknown sound slot")
			return
		}
		if s, ok := p.scalar(field, val); ok && s != "" {
			*slot = s
		}
	})
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == 0 {
		return nil
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return doc.Content[0]
	}
	return doc
}

func eachPair(n *yaml.Node, fn func(key string, val *yaml.Node)) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		fn(n.Content[i].Value, n.Content[i+1])
	}
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		return "value"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
