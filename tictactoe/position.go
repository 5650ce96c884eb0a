package tictactoe

import (
	"adversary/game"
	"fmt"
	"math/bits"
	"strings"
)

// Square indexes the board row by row from the top left corner.
type Square uint8

const boardMask = 0b111111111

// horizontal, vertical and diagonal patterns as bitboards
var winningPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Position is a 3x3 board; X is game.First and O is game.Second.
type Position struct {
	stones [2]uint16 // [0] First, [1] Second
	player game.Player
}

func New() Position {
	return Position{player: game.First}
}

// FromString reads nine cells row by row: 'X', 'O' or '.', whitespace ignored.
func FromString(board string, player game.Player) (Position, error) {
	cells := strings.Join(strings.Fields(board), "")
	if len(cells) != 9 {
		return Position{}, fmt.Errorf("board must have 9 cells, got %d", len(cells))
	}
	if player != game.First && player != game.Second {
		return Position{}, fmt.Errorf("invalid player %d", player)
	}
	p := Position{player: player}
	for i, c := range cells {
		switch c {
		case 'X', 'x':
			p.stones[0] |= 1 << i
		case 'O', 'o':
			p.stones[1] |= 1 << i
		case '.', '-':
		default:
			return Position{}, fmt.Errorf("invalid cell %q at %d", c, i)
		}
	}
	return p, nil
}

func index(player game.Player) int {
	if player == game.First {
		return 0
	}
	return 1
}

func (p Position) Player() game.Player {
	return p.player
}

func (p Position) occupied() uint16 {
	return p.stones[0] | p.stones[1]
}

func (p Position) LegalMoves() []game.Move {
	if p.Terminal() {
		return nil
	}
	free := uint(boardMask &^ p.occupied())
	moves := make([]game.Move, 0, bits.OnesCount(free))
	for free != 0 {
		moves = append(moves, Square(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return moves
}

func (p Position) Play(move game.Move) game.Position {
	sq, ok := move.(Square)
	if !ok || sq > 8 || p.occupied()&(1<<sq) != 0 || p.Terminal() {
		panic(fmt.Sprintf("illegal move %v", move))
	}
	next := p
	next.stones[index(p.player)] |= 1 << sq
	next.player = p.player.Opponent()
	return next
}

func (p Position) Result() game.Player {
	for _, pattern := range winningPatterns {
		if p.stones[0]&pattern == pattern {
			return game.First
		}
		if p.stones[1]&pattern == pattern {
			return game.Second
		}
	}
	return game.None
}

func (p Position) Terminal() bool {
	return p.Result() != game.None || p.occupied() == boardMask
}

func (p Position) Key() game.Key {
	return game.Key([]byte{
		byte(p.stones[0]), byte(p.stones[0] >> 8),
		byte(p.stones[1]), byte(p.stones[1] >> 8),
		byte(p.player),
	})
}

func (p Position) At(sq Square) game.Player {
	switch {
	case p.stones[0]&(1<<sq) != 0:
		return game.First
	case p.stones[1]&(1<<sq) != 0:
		return game.Second
	default:
		return game.None
	}
}

func (p Position) String() string {
	var b strings.Builder
	for sq := Square(0); sq < 9; sq++ {
		switch p.At(sq) {
		case game.First:
			b.WriteByte('X')
		case game.Second:
			b.WriteByte('O')
		default:
			b.WriteByte('.')
		}
		if sq%3 == 2 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Utility scores wins +1, losses -1 and everything else 0.
func Utility(p game.Position) float64 {
	return game.ResultUtility(p)
}
