package play

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle-cli/internal/game"
)

// Theme renders guess feedback for one output stream.
// On outputs without colour support tiles fall back to bracket markers:
// [S] exact, (S) present, " S " absent.
type Theme struct {
	exact   lipgloss.Style
	present lipgloss.Style
	absent  lipgloss.Style
	plain   bool
}

// NewTheme detects the colour profile of w.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	tile := r.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#ffffff"))
	return Theme{
		exact:   tile.Background(lipgloss.Color("#6aaa64")),
		present: tile.Background(lipgloss.Color("#c9b458")),
		absent:  tile.Background(lipgloss.Color("#787c7e")),
		plain:   r.ColorProfile() == termenv.Ascii,
	}
}

// PlainTheme always renders bracket markers.
func PlainTheme() Theme { return Theme{plain: true} }

// Tiles renders guess with one tile per mark.
func (th Theme) Tiles(guess string, marks []game.Mark) string {
	var b strings.Builder
	for i, m := range marks {
		letter := string(guess[i])
		if th.plain {
			switch m {
			case game.MarkExact:
				b.WriteString("[" + letter + "]")
			case game.MarkPresent:
				b.WriteString("(" + letter + ")")
			default:
				b.WriteString(" " + letter + " ")
			}
			continue
		}
		switch m {
		case game.MarkExact:
			b.WriteString(th.exact.Render(letter))
		case game.MarkPresent:
			b.WriteString(th.present.Render(letter))
		default:
			b.WriteString(th.absent.Render(letter))
		}
	}
	return b.String()
}

// spaced renders "ABC" as "A B C".
func spaced(letters string) string {
	return strings.Join(strings.Split(letters, ""), " ")
}
