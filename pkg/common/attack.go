package common

const (
	dirNorth = iota
	dirSouth
	dirEast
	dirWest
	dirNorthEast
	dirNorthWest
	dirSouthEast
	dirSouthWest
)

var (
	knightTargets [64][]int
	kingTargets   [64][]int
	// rays[sq][dir] lists squares from sq outwards, nearest first
	rays [64][8][]int
)

var directions = [8][2]int{
	dirNorth:     {0, 1},
	dirSouth:     {0, -1},
	dirEast:      {1, 0},
	dirWest:      {-1, 0},
	dirNorthEast: {1, 1},
	dirNorthWest: {-1, 1},
	dirSouthEast: {1, -1},
	dirSouthWest: {-1, -1},
}

var knightSteps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func isDiagonal(dir int) bool {
	return dir >= dirNorthEast
}

func initAttacks() {
	for sq := 0; sq < 64; sq++ {
		var file, rank = File(sq), Rank(sq)
		for _, step := range knightSteps {
			if onBoard(file+step[0], rank+step[1]) {
				knightTargets[sq] = append(knightTargets[sq], MakeSquare(file+step[0], rank+step[1]))
			}
		}
		for dir, step := range directions {
			if onBoard(file+step[0], rank+step[1]) {
				kingTargets[sq] = append(kingTargets[sq], MakeSquare(file+step[0], rank+step[1]))
			}
			for f, r := file+step[0], rank+step[1]; onBoard(f, r); f, r = f+step[0], r+step[1] {
				rays[sq][dir] = append(rays[sq][dir], MakeSquare(f, r))
			}
		}
	}
}

func init() {
	initKeys()
	initAttacks()
}

// IsAttacked reports whether sq is attacked by pieces of the given side.
// It does not depend on whose turn it is. Squares off the board are never attacked.
func IsAttacked(b *Board, sq int, byWhite bool) bool {
	if sq < 0 || sq >= 64 {
		return false
	}
	if IsAttackedByPawn(b, sq, byWhite) {
		return true
	}
	var knight = MakePiece(Knight, byWhite)
	for _, from := range knightTargets[sq] {
		if b[from] == knight {
			return true
		}
	}
	var king = MakePiece(King, byWhite)
	for _, from := range kingTargets[sq] {
		if b[from] == king {
			return true
		}
	}
	var queen = MakePiece(Queen, byWhite)
	for dir := range rays[sq] {
		var slider = MakePiece(Rook, byWhite)
		if isDiagonal(dir) {
			slider = MakePiece(Bishop, byWhite)
		}
		for _, from := range rays[sq][dir] {
			var piece = b[from]
			if piece == Empty {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}

func IsAttackedByPawn(b *Board, sq int, byWhite bool) bool {
	if sq < 0 || sq >= 64 {
		return false
	}
	// a white pawn attacks from the rank below
	var rank = Rank(sq) + let(byWhite, -1, 1)
	var pawn = MakePiece(Pawn, byWhite)
	for _, file := range [2]int{File(sq) - 1, File(sq) + 1} {
		if onBoard(file, rank) && b[MakeSquare(file, rank)] == pawn {
			return true
		}
	}
	return false
}

// FindKing returns SquareNone when the side has no king.
func FindKing(b *Board, white bool) int {
	var king = MakePiece(King, white)
	for sq, piece := range b {
		if piece == king {
			return sq
		}
	}
	return SquareNone
}
