package reversi

import "math/bits"

const (
	notColumnA uint64 = 0xfefefefefefefefe
	notColumnH uint64 = 0x7f7f7f7f7f7f7f7f
	corners    uint64 = 1<<0 | 1<<7 | 1<<56 | 1<<63
)

// Bit i of a bitboard is row i/8, column i%8; column 0 is A and row 0 is the
// top of the board.
var shifts = [8]func(uint64) uint64{
	func(b uint64) uint64 { return b >> 8 },                // north
	func(b uint64) uint64 { return b << 8 },                // south
	func(b uint64) uint64 { return b << 1 & notColumnA },   // east
	func(b uint64) uint64 { return b >> 1 & notColumnH },   // west
	func(b uint64) uint64 { return b >> 7 & notColumnA },   // north east
	func(b uint64) uint64 { return b >> 9 & notColumnH },   // north west
	func(b uint64) uint64 { return b << 9 & notColumnA },   // south east
	func(b uint64) uint64 { return b << 7 & notColumnH },   // south west
}

// moves returns the empty squares where own captures at least one opp disc.
func moves(own, opp uint64) uint64 {
	empty := ^(own | opp)
	var legal uint64
	for _, shift := range shifts {
		run := shift(own) & opp
		for i := 0; i < 5; i++ {
			run |= shift(run) & opp
		}
		legal |= shift(run) & empty
	}
	return legal
}

// flips returns the opp discs turned over by own playing on sq.
func flips(own, opp uint64, sq Square) uint64 {
	var flipped uint64
	for _, shift := range shifts {
		var run uint64
		cursor := shift(uint64(1) << sq)
		for cursor&opp != 0 {
			run |= cursor
			cursor = shift(cursor)
		}
		if cursor&own != 0 {
			flipped |= run
		}
	}
	return flipped
}

func count(b uint64) int {
	return bits.OnesCount64(b)
}
