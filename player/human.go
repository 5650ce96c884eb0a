package player

import (
	"adversary/game"
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/samber/lo"
)

// Human prompts for moves on out and reads the answers from in. A move is
// picked by its letter in the prompt or by its notation, case insensitive.
type Human struct {
	in       *bufio.Reader
	out      io.Writer
	renderer *Renderer
}

func NewHuman(in io.Reader, out io.Writer, options ...termenv.OutputOption) *Human {
	return &Human{
		in:       bufio.NewReader(in),
		out:      out,
		renderer: NewRenderer(out, options...),
	}
}

func (h *Human) FindMove(pos game.Position) (game.Move, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves in a position handed to a player")
	}
	if err := h.renderer.Render(pos); err != nil {
		return nil, err
	}

	choices := lo.Map(moves, func(m game.Move, i int) string {
		return fmt.Sprintf("%s) %v", label(i), m)
	})
	for {
		fmt.Fprintf(h.out, "%s\n> ", strings.Join(choices, "  "))

		line, err := h.in.ReadString('\n')
		if text := strings.TrimSpace(line); text != "" {
			if move, ok := choose(moves, text); ok {
				return move, nil
			}
			fmt.Fprintf(h.out, "%q is not a legal move\n", text)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("input closed before a move was chosen: %w", err)
			}
			return nil, fmt.Errorf("failed to read move: %w", err)
		}
	}
}

func choose(moves []game.Move, text string) (game.Move, bool) {
	for i, m := range moves {
		if strings.EqualFold(text, label(i)) || strings.EqualFold(text, fmt.Sprint(m)) {
			return m, true
		}
	}
	return nil, false
}

// label names the i-th listed move: 'a' to 'z', then "m26", "m27", ...
func label(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return fmt.Sprintf("m%d", i)
}
