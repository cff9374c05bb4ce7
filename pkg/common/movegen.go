package common

// GenerateMoves appends pseudo-legal moves of the given side to ml.
// Moves may leave the own king in check.
func GenerateMoves(ml []Move, b *Board, white bool) []Move {
	for from, piece := range b {
		if piece == Empty || IsWhite(piece) != white {
			continue
		}
		switch PieceType(piece) {
		case Pawn:
			ml = genPawnMoves(ml, b, from, white)
		case Knight:
			ml = genStepMoves(ml, b, from, knightTargets[from], white)
		case Bishop:
			ml = genSliderMoves(ml, b, from, dirNorthEast, dirSouthWest, white)
		case Rook:
			ml = genSliderMoves(ml, b, from, dirNorth, dirWest, white)
		case Queen:
			ml = genSliderMoves(ml, b, from, dirNorth, dirSouthWest, white)
		case King:
			ml = genStepMoves(ml, b, from, kingTargets[from], white)
			ml = genCastling(ml, b, from, white)
		}
	}
	return ml
}

func (p *Position) GenerateMoves(ml []Move) []Move {
	return GenerateMoves(ml, &p.Board, p.WhiteMove)
}

// GenerateLegalMoves appends moves of the side to move that pass IsLegal.
func (p *Position) GenerateLegalMoves(ml []Move) []Move {
	var start = len(ml)
	ml = p.GenerateMoves(ml)
	var n = start
	for _, m := range ml[start:] {
		var u = p.MakeMove(m)
		if p.IsLegal(m, u) {
			ml[n] = m
			n++
		}
		p.UnmakeMove(m, u)
	}
	return ml[:n]
}

func isEnemy(piece int, white bool) bool {
	return piece != Empty && IsWhite(piece) != white
}

func genPawnMoves(ml []Move, b *Board, from int, white bool) []Move {
	var forward = let(white, 1, -1)
	var startRank = let(white, Rank2, Rank7)
	var epRank = let(white, Rank5, Rank4)
	var file, rank = File(from), Rank(from)
	if !onBoard(file, rank+forward) {
		return ml
	}
	var to = MakeSquare(file, rank+forward)
	if b[to] == Empty {
		ml = append(ml, Move{from, to})
		if rank == startRank {
			var to2 = MakeSquare(file, rank+2*forward)
			if b[to2] == Empty {
				ml = append(ml, Move{from, to2})
			}
		}
	}
	for _, f := range [2]int{file - 1, file + 1} {
		if !onBoard(f, rank) {
			continue
		}
		var target = MakeSquare(f, rank+forward)
		if isEnemy(b[target], white) {
			ml = append(ml, Move{from, target})
		} else if b[target] == Empty && rank == epRank &&
			b[MakeSquare(f, rank)] == MakePiece(Pawn, !white) {
			ml = append(ml, Move{from, target})
		}
	}
	return ml
}

func genStepMoves(ml []Move, b *Board, from int, targets []int, white bool) []Move {
	for _, to := range targets {
		if b[to] == Empty || isEnemy(b[to], white) {
			ml = append(ml, Move{from, to})
		}
	}
	return ml
}

func genSliderMoves(ml []Move, b *Board, from, firstDir, lastDir int, white bool) []Move {
	for dir := firstDir; dir <= lastDir; dir++ {
		for _, to := range rays[from][dir] {
			if b[to] == Empty {
				ml = append(ml, Move{from, to})
				continue
			}
			if isEnemy(b[to], white) {
				ml = append(ml, Move{from, to})
			}
			break
		}
	}
	return ml
}

// genCastling checks only the placement of king, rook and the squares between them.
// Attacked squares are rejected by IsLegal.
func genCastling(ml []Move, b *Board, from int, white bool) []Move {
	var home = let(white, Rank1, Rank8)
	if from != MakeSquare(FileE, home) {
		return ml
	}
	var rook = MakePiece(Rook, white)
	if b[MakeSquare(FileH, home)] == rook &&
		b[MakeSquare(FileF, home)] == Empty &&
		b[MakeSquare(FileG, home)] == Empty {
		ml = append(ml, Move{from, MakeSquare(FileG, home)})
	}
	if b[MakeSquare(FileA, home)] == rook &&
		b[MakeSquare(FileB, home)] == Empty &&
		b[MakeSquare(FileC, home)] == Empty &&
		b[MakeSquare(FileD, home)] == Empty {
		ml = append(ml, Move{from, MakeSquare(FileC, home)})
	}
	return ml
}
