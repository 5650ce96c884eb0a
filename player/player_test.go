package player

import (
	"adversary/game"
	"adversary/reversi"
	"adversary/searcher"
	"adversary/tictactoe"
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestAI(t *testing.T) {
	t.Run("takes the win", func(t *testing.T) {
		pos, err := tictactoe.FromString("XX. OO. ...", game.First)
		require.NoError(t, err)

		ai := NewAI("ai", searcher.WithMaxDepth(4), searcher.WithSeed(1), searcher.WithMetrics())
		move, err := ai.FindMove(pos)
		require.NoError(t, err)
		require.Equal(t, tictactoe.Square(2), move)
		require.Equal(t, 4, ai.LastMetric().Depth)
	})

	t.Run("reports metrics", func(t *testing.T) {
		var p Player = NewAI("ai", searcher.WithMaxDepth(2))
		_, ok := p.(MetricReporter)
		require.True(t, ok)
	})
}

func TestRandom(t *testing.T) {
	pos := reversi.New()
	for i := 0; i < 20; i++ {
		move, err := NewRandom().FindMove(pos)
		require.NoError(t, err)
		require.True(t, game.IsLegal(pos, move))
	}

	var p Player = NewRandom()
	_, ok := p.(MetricReporter)
	require.False(t, ok, "Random player should not report search metrics")
}

func TestHuman(t *testing.T) {
	ascii := termenv.WithProfile(termenv.Ascii)

	t.Run("picks by letter", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("b\n"), &out, ascii)
		move, err := h.FindMove(tictactoe.New())
		require.NoError(t, err)
		require.Equal(t, tictactoe.Square(1), move)
		require.Contains(t, out.String(), "a) 0  b) 1")
	})

	t.Run("picks by notation", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("e2\n"), &out, ascii)
		move, err := h.FindMove(reversi.New())
		require.NoError(t, err)
		require.Equal(t, reversi.At(2, 4), move)
	})

	t.Run("prompts again after bad input", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("\nzz\nA0\nc\n"), &out, ascii)
		move, err := h.FindMove(tictactoe.New())
		require.NoError(t, err)
		require.Equal(t, tictactoe.Square(2), move)
		require.Contains(t, out.String(), `"zz" is not a legal move`)
		require.Contains(t, out.String(), `"A0" is not a legal move`)
	})

	t.Run("accepts a final line without newline", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("a"), &out, ascii)
		move, err := h.FindMove(tictactoe.New())
		require.NoError(t, err)
		require.Equal(t, tictactoe.Square(0), move)
	})

	t.Run("fails when input ends", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("zz\n"), &out, ascii)
		_, err := h.FindMove(tictactoe.New())
		require.Error(t, err)
	})
}

func TestRender(t *testing.T) {
	pos, err := tictactoe.FromString("X.. .O. ..X", game.Second)
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRenderer(&out, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, r.Render(pos))

	expected := "  A B C\n" +
		"0 X . .\n" +
		"1 . O .\n" +
		"2 . . X\n" +
		"X: 2, O: 1, O to move\n"
	require.Equal(t, expected, out.String())
}

func TestLabel(t *testing.T) {
	require.Equal(t, "a", label(0))
	require.Equal(t, "z", label(25))
	require.Equal(t, "m26", label(26))
}
