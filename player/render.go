package player

import (
	"adversary/game"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/samber/lo"
)

// Renderer draws boards whose String form is rows of 'X', 'O' and '.' cells,
// which both tictactoe and reversi positions produce.
type Renderer struct {
	output *termenv.Output
}

func NewRenderer(w io.Writer, options ...termenv.OutputOption) *Renderer {
	return &Renderer{output: termenv.NewOutput(w, options...)}
}

func (r *Renderer) cell(c rune) string {
	switch c {
	case 'X':
		return r.output.String("X").Foreground(r.output.Color("1")).Bold().String()
	case 'O':
		return r.output.String("O").Foreground(r.output.Color("4")).Bold().String()
	default:
		return r.output.String(".").Faint().String()
	}
}

// Render writes the board with column letters and row numbers, followed by the
// piece counts and the side to move.
func (r *Renderer) Render(pos game.Position) error {
	board := strings.TrimRight(fmt.Sprint(pos), "\n")
	rows := strings.Split(board, "\n")

	var b strings.Builder
	header := lo.Times(len(rows[0]), func(i int) string { return string(rune('A' + i)) })
	fmt.Fprintf(&b, "  %s\n", strings.Join(header, " "))
	for i, row := range rows {
		cells := lo.Map([]rune(row), func(c rune, _ int) string { return r.cell(c) })
		fmt.Fprintf(&b, "%d %s\n", i, strings.Join(cells, " "))
	}
	fmt.Fprintf(&b, "X: %d, O: %d, %s to move\n", strings.Count(board, "X"), strings.Count(board, "O"), mark(pos.Player()))

	if _, err := io.WriteString(r.output, b.String()); err != nil {
		return fmt.Errorf("failed to render position: %w", err)
	}
	return nil
}

func mark(p game.Player) string {
	switch p {
	case game.First:
		return "X"
	case game.Second:
		return "O"
	default:
		return "nobody"
	}
}
