package reversi

import (
	"adversary/game"
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

// Square is row*8 + column. Pass is played when the side to move cannot
// capture anything.
type Square int8

const Pass Square = -1

const Size = 8

func At(row, column int) Square {
	return Square(row*Size + column)
}

func (s Square) Row() int {
	return int(s) / Size
}

func (s Square) Column() int {
	return int(s) % Size
}

// String uses the column letter followed by the zero based row, e.g. D3.
func (s Square) String() string {
	if s == Pass {
		return "Pass"
	}
	return fmt.Sprintf("%c%d", 'A'+s.Column(), s.Row())
}

// ParseSquare reads the notation produced by Square.String, case insensitive.
func ParseSquare(text string) (Square, error) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "pass") {
		return Pass, nil
	}
	if len(text) != 2 {
		return Pass, fmt.Errorf("invalid square %q", text)
	}
	column := int(strings.ToUpper(text)[0] - 'A')
	row := int(text[1] - '0')
	if column < 0 || column >= Size || row < 0 || row >= Size {
		return Pass, fmt.Errorf("invalid square %q", text)
	}
	return At(row, column), nil
}

// Position holds one bitboard per side; First moves first.
type Position struct {
	discs  [2]uint64 // [0] First, [1] Second
	player game.Player
}

// New returns the standard opening position.
func New() Position {
	var p Position
	p.discs[0] = 1<<At(3, 3) | 1<<At(4, 4)
	p.discs[1] = 1<<At(3, 4) | 1<<At(4, 3)
	p.player = game.First
	return p
}

// FromString reads eight rows of 'X' (First), 'O' (Second) or '.',
// whitespace ignored.
func FromString(board string, player game.Player) (Position, error) {
	cells := strings.Join(strings.Fields(board), "")
	if len(cells) != Size*Size {
		return Position{}, fmt.Errorf("board must have %d cells, got %d", Size*Size, len(cells))
	}
	if player != game.First && player != game.Second {
		return Position{}, fmt.Errorf("invalid player %d", player)
	}
	p := Position{player: player}
	for i, c := range cells {
		switch c {
		case 'X', 'x':
			p.discs[0] |= 1 << i
		case 'O', 'o':
			p.discs[1] |= 1 << i
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

func (p Position) own() uint64 {
	return p.discs[index(p.player)]
}

func (p Position) opp() uint64 {
	return p.discs[1-index(p.player)]
}

func (p Position) Player() game.Player {
	return p.player
}

// Moves returns the capturing squares for player, without the pass sentinel.
func (p Position) Moves(player game.Player) []Square {
	i := index(player)
	legal := moves(p.discs[i], p.discs[1-i])
	squares := make([]Square, 0, count(legal))
	for legal != 0 {
		squares = append(squares, Square(bits.TrailingZeros64(legal)))
		legal &= legal - 1
	}
	return squares
}

func (p Position) LegalMoves() []game.Move {
	if p.Terminal() {
		return nil
	}
	squares := p.Moves(p.player)
	if len(squares) == 0 {
		return []game.Move{Pass}
	}
	legal := make([]game.Move, len(squares))
	for i, sq := range squares {
		legal[i] = sq
	}
	return legal
}

func (p Position) Play(move game.Move) game.Position {
	sq, ok := move.(Square)
	if !ok || p.Terminal() {
		panic(fmt.Sprintf("illegal move %v", move))
	}
	legal := moves(p.own(), p.opp())
	next := p
	next.player = p.player.Opponent()
	if sq == Pass {
		if legal != 0 {
			panic("cannot pass with a capture available")
		}
		return next
	}
	if sq < 0 || int(sq) >= Size*Size || legal&(1<<sq) == 0 {
		panic(fmt.Sprintf("illegal move %v", move))
	}
	flipped := flips(p.own(), p.opp(), sq)
	me, them := index(p.player), 1-index(p.player)
	next.discs[me] |= flipped | 1<<sq
	next.discs[them] &^= flipped
	return next
}

// Terminal is true once the board is full or neither side can capture.
func (p Position) Terminal() bool {
	if p.discs[0]|p.discs[1] == ^uint64(0) {
		return true
	}
	return moves(p.discs[0], p.discs[1]) == 0 && moves(p.discs[1], p.discs[0]) == 0
}

// Result is the side with more discs once the game is over; equal counts are
// a draw.
func (p Position) Result() game.Player {
	if !p.Terminal() {
		return game.None
	}
	first, second := p.Count(game.First), p.Count(game.Second)
	switch {
	case first > second:
		return game.First
	case second > first:
		return game.Second
	default:
		return game.None
	}
}

func (p Position) Count(player game.Player) int {
	return count(p.discs[index(player)])
}

// Owner returns who holds sq, or game.None for an empty square.
func (p Position) Owner(sq Square) game.Player {
	switch {
	case p.discs[0]&(1<<sq) != 0:
		return game.First
	case p.discs[1]&(1<<sq) != 0:
		return game.Second
	default:
		return game.None
	}
}

func (p Position) Key() game.Key {
	key := make([]byte, 17)
	binary.LittleEndian.PutUint64(key[0:], p.discs[0])
	binary.LittleEndian.PutUint64(key[8:], p.discs[1])
	key[16] = byte(p.player)
	return game.Key(key)
}

func (p Position) String() string {
	var b strings.Builder
	for sq := Square(0); sq < Size*Size; sq++ {
		switch p.Owner(sq) {
		case game.First:
			b.WriteByte('X')
		case game.Second:
			b.WriteByte('O')
		default:
			b.WriteByte('.')
		}
		if sq.Column() == Size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
