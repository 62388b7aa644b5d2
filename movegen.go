/*
movegen.go generates fully legal moves directly, without the
generate-pseudo-legal-then-copy-make-and-recheck loop treepeck-chego's own
movegen.go uses. Legality is established up front from two pieces of
information computed once per call: a check mask (the squares a non-king
move must land on to resolve whatever check the king is currently in) and,
per pinned piece, a pin mask (the squares that piece may still move to
without exposing its own king). This is the algorithm spec.md §4.2
describes and Bubblyworld-dragontoothmg/movegen.go implements; the leaper
step tables, slider attack tables and ray generators it is built from are
treepeck-chego's (attacks.go).
*/
package corvid

// Rank3 and Rank6 are the ranks a pawn passes through on a double push —
// used to gate double pushes to pawns that started on their home rank.
const (
	Rank3 Bitboard = Rank1 << 16
	Rank6 Bitboard = Rank1 << 40
)

func isSlider(k PieceKind) bool {
	return k == Bishop || k == Rook || k == Queen
}

// attackersToSquare returns the bySide pieces attacking sq, given occ as the
// board occupancy. owner is the color standing on sq, needed only to pick
// the correct pawn-attack direction.
func attackersToSquare(p *Position, sq int, occ Bitboard, owner, bySide Color) Bitboard {
	pawns := p.byKind[Pawn] & p.byColor[bySide]
	knights := p.byKind[Knight] & p.byColor[bySide]
	bishopsQueens := (p.byKind[Bishop] | p.byKind[Queen]) & p.byColor[bySide]
	rooksQueens := (p.byKind[Rook] | p.byKind[Queen]) & p.byColor[bySide]
	king := p.byKind[King] & p.byColor[bySide]

	var att Bitboard
	att |= PawnAttacks[owner][sq] & pawns
	att |= KnightAttacks[sq] & knights
	att |= BishopAttacks(sq, occ) & bishopsQueens
	att |= RookAttacks(sq, occ) & rooksQueens
	att |= KingAttacks[sq] & king
	return att
}

// attackedSquaresBy returns the union of every square bySide attacks, given
// occ as the board occupancy (the caller removes the defending king from
// occ so a slider's attack correctly extends through the square the king
// is trying to flee to).
func attackedSquaresBy(p *Position, bySide Color, occ Bitboard) Bitboard {
	var att Bitboard
	att |= genPawnAttacksBB(p.byKind[Pawn]&p.byColor[bySide], bySide)
	att |= genKnightAttacksBB(p.byKind[Knight] & p.byColor[bySide])
	att |= genKingAttacksBB(p.byKind[King] & p.byColor[bySide])

	for bb := (p.byKind[Bishop] | p.byKind[Queen]) & p.byColor[bySide]; bb != 0; {
		att |= BishopAttacks(PopLSB(&bb), occ)
	}
	for bb := (p.byKind[Rook] | p.byKind[Queen]) & p.byColor[bySide]; bb != 0; {
		att |= RookAttacks(PopLSB(&bb), occ)
	}
	return att
}

// InCheck reports whether side's king currently stands on an attacked
// square.
func InCheck(p *Position, side Color) bool {
	kingSq := (p.byKind[King] & p.byColor[side]).TrailingZeros()
	return attackersToSquare(p, kingSq, p.Occupied(), side, side.Opposite()) != 0
}

// computePinMasks finds every side piece pinned against its king: a piece
// standing alone on a ray between the king and an aligned enemy slider.
// pinMask[sq] is AllSquares for an unpinned square, else the ray the pinned
// piece must stay on.
func computePinMasks(p *Position, side Color, kingSq int, occ, own Bitboard) [64]Bitboard {
	var pinMask [64]Bitboard
	for sq := range pinMask {
		pinMask[sq] = AllSquares
	}

	opp := side.Opposite()
	enemyBishopsQueens := (p.byKind[Bishop] | p.byKind[Queen]) & p.byColor[opp]
	enemyRooksQueens := (p.byKind[Rook] | p.byKind[Queen]) & p.byColor[opp]

	// Remove our own pieces so the ray reaches past them to any aligned
	// enemy slider; an enemy piece in between still stops the ray, which is
	// correct — two enemy pieces on the same ray can't produce a pin.
	xrayOcc := occ &^ own
	potential := (BishopAttacks(kingSq, xrayOcc) & enemyBishopsQueens) |
		(RookAttacks(kingSq, xrayOcc) & enemyRooksQueens)

	for potential != 0 {
		pinnerSq := PopLSB(&potential)
		between := PinRay[kingSq*64+pinnerSq] &^ sqBB(pinnerSq)
		blockers := between & own
		if blockers.PopCount() == 1 {
			pinMask[blockers.TrailingZeros()] = PinRay[kingSq*64+pinnerSq]
		}
	}
	return pinMask
}

// epExposesKing reports the one pin en passant can create that a normal
// pin mask never catches: removing both the capturing and captured pawn
// from the same rank can expose the king to a rook or queen along that
// rank, even though neither pawn alone was pinned.
func epExposesKing(p *Position, side Color, fromSq, capturedSq, kingSq int) bool {
	opp := side.Opposite()
	occ := (p.Occupied() &^ sqBB(fromSq) &^ sqBB(capturedSq)) | sqBB(p.epTarget)
	enemyRooksQueens := (p.byKind[Rook] | p.byKind[Queen]) & p.byColor[opp]
	return RookAttacks(kingSq, occ)&enemyRooksQueens != 0
}

// LegalMoves generates every legal move in p for the side to move.
func LegalMoves(p *Position) MoveList {
	var list MoveList

	side := p.sideToMove
	opp := side.Opposite()
	kingSq := (p.byKind[King] & p.byColor[side]).TrailingZeros()
	occ := p.Occupied()
	own := p.byColor[side]

	checkers := attackersToSquare(p, kingSq, occ, side, opp)

	var checkMask Bitboard
	switch checkers.PopCount() {
	case 0:
		checkMask = AllSquares
	case 1:
		checkerSq := checkers.TrailingZeros()
		if ck, _, ok := p.PieceAt(checkerSq); ok && isSlider(ck) {
			checkMask = PinRay[kingSq*64+checkerSq]
		} else {
			checkMask = sqBB(checkerSq)
		}
	default:
		checkMask = EmptyBoard
	}

	occNoKing := occ &^ sqBB(kingSq)
	attacked := attackedSquaresBy(p, opp, occNoKing)

	kingDests := KingAttacks[kingSq] &^ own &^ attacked
	for kingDests != 0 {
		to := PopLSB(&kingDests)
		if capturedKind, _, ok := p.PieceAt(to); ok {
			list.Push(NewCapture(kingSq, to, King, capturedKind, side, Quiet))
		} else {
			list.Push(NewMove(kingSq, to, King, side, Quiet))
		}
	}

	if checkers == 0 {
		if side == White {
			if p.canCastle(WhiteKingside, attacked) {
				list.Push(NewMove(4, 6, King, White, KingsideCastle))
			}
			if p.canCastle(WhiteQueenside, attacked) {
				list.Push(NewMove(4, 2, King, White, QueensideCastle))
			}
		} else {
			if p.canCastle(BlackKingside, attacked) {
				list.Push(NewMove(60, 62, King, Black, KingsideCastle))
			}
			if p.canCastle(BlackQueenside, attacked) {
				list.Push(NewMove(60, 58, King, Black, QueensideCastle))
			}
		}
	}

	// Double check: only king moves (already generated above) are legal.
	if checkers.PopCount() >= 2 {
		return list
	}

	pinMask := computePinMasks(p, side, kingSq, occ, own)

	genPawnMoves(p, &list, side, checkMask, pinMask, kingSq)
	genPieceMoves(p, &list, side, Knight, checkMask, pinMask, occ, own)
	genPieceMoves(p, &list, side, Bishop, checkMask, pinMask, occ, own)
	genPieceMoves(p, &list, side, Rook, checkMask, pinMask, occ, own)
	genPieceMoves(p, &list, side, Queen, checkMask, pinMask, occ, own)

	return list
}

func genPieceMoves(p *Position, list *MoveList, side Color, kind PieceKind, checkMask Bitboard, pinMask [64]Bitboard, occ, own Bitboard) {
	for pieces := p.byKind[kind] & own; pieces != 0; {
		from := PopLSB(&pieces)
		var dests Bitboard
		switch kind {
		case Knight:
			dests = KnightAttacks[from]
		case Bishop:
			dests = BishopAttacks(from, occ)
		case Rook:
			dests = RookAttacks(from, occ)
		case Queen:
			dests = QueenAttacks(from, occ)
		}
		dests &^= own
		dests &= checkMask
		dests &= pinMask[from]

		for dests != 0 {
			to := PopLSB(&dests)
			if capturedKind, _, ok := p.PieceAt(to); ok {
				list.Push(NewCapture(from, to, kind, capturedKind, side, Quiet))
			} else {
				list.Push(NewMove(from, to, kind, side, Quiet))
			}
		}
	}
}

func genPawnMoves(p *Position, list *MoveList, side Color, checkMask Bitboard, pinMask [64]Bitboard, kingSq int) {
	opp := side.Opposite()
	occ := p.Occupied()
	enemy := p.byColor[opp]
	pawns := p.byKind[Pawn] & p.byColor[side]

	var singlePush, doublePush, promoRank Bitboard
	var pushDir int
	if side == White {
		pushDir = 8
		singlePush = (pawns << 8) &^ occ
		doublePush = ((singlePush & Rank3) << 8) &^ occ
		promoRank = Rank8
	} else {
		pushDir = -8
		singlePush = (pawns >> 8) &^ occ
		doublePush = ((singlePush & Rank6) >> 8) &^ occ
		promoRank = Rank1
	}

	for bb := singlePush &^ promoRank; bb != 0; {
		to := PopLSB(&bb)
		from := to - pushDir
		tryAddPawnMove(list, from, to, side, Quiet, 0, false, checkMask, pinMask)
	}
	for bb := singlePush & promoRank; bb != 0; {
		to := PopLSB(&bb)
		from := to - pushDir
		tryAddPromotions(list, from, to, side, false, 0, checkMask, pinMask)
	}
	for bb := doublePush; bb != 0; {
		to := PopLSB(&bb)
		from := to - 2*pushDir
		tryAddPawnMove(list, from, to, side, DoublePawnPush, 0, false, checkMask, pinMask)
	}

	for bb := pawns; bb != 0; {
		from := PopLSB(&bb)
		for targets := PawnAttacks[side][from] & enemy; targets != 0; {
			to := PopLSB(&targets)
			capturedKind, _, _ := p.PieceAt(to)
			if rankOf(to) == 0 || rankOf(to) == 7 {
				tryAddPromotions(list, from, to, side, true, capturedKind, checkMask, pinMask)
			} else {
				tryAddPawnMove(list, from, to, side, Quiet, capturedKind, true, checkMask, pinMask)
			}
		}
	}

	if p.epTarget >= 0 {
		epBB := sqBB(p.epTarget)
		capturedSq := p.epTarget - pushDir
		for attackers := PawnAttacks[opp][p.epTarget] & pawns; attackers != 0; {
			from := PopLSB(&attackers)
			if epExposesKing(p, side, from, capturedSq, kingSq) {
				continue
			}
			if checkMask&(sqBB(capturedSq)|epBB) == 0 {
				continue
			}
			if pinMask[from]&epBB == 0 {
				continue
			}
			list.Push(NewCapture(from, p.epTarget, Pawn, Pawn, side, EnPassant))
		}
	}
}

func tryAddPawnMove(list *MoveList, from, to int, side Color, kind MoveKind, captured PieceKind, isCapture bool, checkMask Bitboard, pinMask [64]Bitboard) {
	if checkMask&sqBB(to) == 0 {
		return
	}
	if pinMask[from]&sqBB(to) == 0 {
		return
	}
	if isCapture {
		list.Push(NewCapture(from, to, Pawn, captured, side, kind))
	} else {
		list.Push(NewMove(from, to, Pawn, side, kind))
	}
}

func tryAddPromotions(list *MoveList, from, to int, side Color, isCapture bool, captured PieceKind, checkMask Bitboard, pinMask [64]Bitboard) {
	if checkMask&sqBB(to) == 0 {
		return
	}
	if pinMask[from]&sqBB(to) == 0 {
		return
	}
	for _, promo := range [4]PromotionKind{PromoQueen, PromoRook, PromoBishop, PromoKnight} {
		list.Push(NewPromotion(from, to, side, promo, captured, isCapture))
	}
}
