package tictactoe

import (
	"adversary/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New()

	require.Equal(t, game.First, p.Player())
	require.Len(t, p.LegalMoves(), 9)
	require.False(t, p.Terminal())
	require.Equal(t, game.None, p.Result())
}

func TestFromString(t *testing.T) {
	t.Run("parses cells row by row", func(t *testing.T) {
		p, err := FromString("X.O\n.X.\n..O", game.First)
		require.NoError(t, err)

		require.Equal(t, game.First, p.At(0))
		require.Equal(t, game.Second, p.At(2))
		require.Equal(t, game.First, p.At(4))
		require.Equal(t, game.None, p.At(5))
		require.Equal(t, "X.O\n.X.\n..O\n", p.String())
	})

	t.Run("rejects bad boards", func(t *testing.T) {
		_, err := FromString("XX", game.First)
		require.Error(t, err)

		_, err = FromString("XX. ... ..Z", game.First)
		require.Error(t, err)

		_, err = FromString("... ... ...", game.None)
		require.Error(t, err)
	})
}

func TestPlay(t *testing.T) {
	t.Run("places a stone and flips the side", func(t *testing.T) {
		p := New()
		next := p.Play(Square(4)).(Position)

		require.Equal(t, game.First, next.At(4))
		require.Equal(t, game.Second, next.Player())
		require.Len(t, next.LegalMoves(), 8)
		require.Equal(t, game.None, p.At(4), "Play should not mutate the receiver")
	})

	t.Run("panics on an occupied square", func(t *testing.T) {
		p := New().Play(Square(4))
		require.Panics(t, func() { p.Play(Square(4)) })
	})

	t.Run("panics on a foreign move", func(t *testing.T) {
		require.Panics(t, func() { New().Play("pass") })
		require.Panics(t, func() { New().Play(Square(9)) })
	})

	t.Run("panics after the game ended", func(t *testing.T) {
		p, err := FromString("XXX OO. ...", game.Second)
		require.NoError(t, err)
		require.Panics(t, func() { p.Play(Square(5)) })
	})
}

func TestResult(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		want     game.Player
		terminal bool
	}{
		{"row", "XXX OO. ...", game.First, true},
		{"column", "OX. OX. O.X", game.Second, true},
		{"diagonal", "X.O .XO ..X", game.First, true},
		{"anti diagonal", "XXO XO. O..", game.Second, true},
		{"draw", "XOX XOO OXX", game.None, true},
		{"running", "XO. ... ...", game.None, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := FromString(tc.board, game.First)
			require.NoError(t, err)

			require.Equal(t, tc.want, p.Result())
			require.Equal(t, tc.terminal, p.Terminal())
			if tc.terminal {
				require.Empty(t, p.LegalMoves())
			}
		})
	}
}

func TestKey(t *testing.T) {
	a := New().Play(Square(0)).Play(Square(4)).Play(Square(8))
	b := New().Play(Square(8)).Play(Square(4)).Play(Square(0))
	c := New().Play(Square(0)).Play(Square(8)).Play(Square(4))

	require.Equal(t, a.Key(), b.Key(), "Transposed move orders should share a key")
	require.NotEqual(t, a.Key(), c.Key())

	first, _ := FromString("X.. ... ...", game.First)
	second, _ := FromString("X.. ... ...", game.Second)
	require.NotEqual(t, first.Key(), second.Key(), "Side to move is part of the key")
}
