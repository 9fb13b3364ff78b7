package chess

// MoveList is an ordered, replayable sequence of moves rooted at a starting
// FEN. It owns no live Position: SAN/FAN strings and the final board are
// derived on demand by replaying from startFEN, which keeps a MoveList a
// plain value the caller can copy, store, and reuse across many boards
// without a shared mutable "current game" (spec section 9's redesign note).
type MoveList struct {
	startFEN string
	moves    []Move

	dirty    bool
	sanCache []string
	fanCache []string
}

// NewMoveList returns an empty MoveList rooted at start's current FEN.
func NewMoveList(start *Position) *MoveList {
	return &MoveList{startFEN: start.FEN()}
}

// NewMoveListFromFEN returns an empty MoveList rooted at the given FEN.
func NewMoveListFromFEN(fen string) *MoveList {
	return &MoveList{startFEN: fen}
}

// StartFEN returns the FEN the list replays from.
func (ml *MoveList) StartFEN() string { return ml.startFEN }

// Len returns the number of moves recorded.
func (ml *MoveList) Len() int { return len(ml.moves) }

// Moves returns a copy of the recorded moves, in order.
func (ml *MoveList) Moves() []Move {
	return append([]Move(nil), ml.moves...)
}

// Append records m as the next move played and invalidates the SAN/FAN
// caches. It does not validate m; callers wanting validation should apply it
// to a Position first (e.g. via Replay) and append only on success.
func (ml *MoveList) Append(m Move) {
	ml.moves = append(ml.moves, m)
	ml.dirty = true
}

// Truncate discards every move from index n onward.
func (ml *MoveList) Truncate(n int) {
	if n < 0 || n > len(ml.moves) {
		return
	}
	ml.moves = ml.moves[:n]
	ml.dirty = true
}

func (ml *MoveList) invalidateIfDirty() {
	if ml.dirty {
		ml.sanCache = nil
		ml.fanCache = nil
		ml.dirty = false
	}
}

// Replay reconstructs a Position from startFEN and applies every recorded
// move in order, with full validation. It returns the resulting position, or
// an error identifying the first move that failed to apply.
func (ml *MoveList) Replay() (*Position, error) {
	p, err := LoadFEN(ml.startFEN)
	if err != nil {
		return nil, err
	}
	for _, m := range ml.moves {
		if !p.DoMove(m, true) {
			return nil, &IllegalMoveError{Move: m, FEN: p.FEN()}
		}
	}
	return p, nil
}

// SANs returns the Standard Algebraic Notation of every recorded move,
// computed by replaying from startFEN. The result is cached until the next
// Append or Truncate.
func (ml *MoveList) SANs() ([]string, error) {
	ml.invalidateIfDirty()
	if ml.sanCache != nil {
		return append([]string(nil), ml.sanCache...), nil
	}
	out, err := ml.encodeAll(false)
	if err != nil {
		return nil, err
	}
	ml.sanCache = out
	return append([]string(nil), out...), nil
}

// FANs returns the Figurine Algebraic Notation of every recorded move,
// computed by replaying from startFEN. The result is cached until the next
// Append or Truncate.
func (ml *MoveList) FANs() ([]string, error) {
	ml.invalidateIfDirty()
	if ml.fanCache != nil {
		return append([]string(nil), ml.fanCache...), nil
	}
	out, err := ml.encodeAll(true)
	if err != nil {
		return nil, err
	}
	ml.fanCache = out
	return append([]string(nil), out...), nil
}

func (ml *MoveList) encodeAll(figurine bool) ([]string, error) {
	p, err := LoadFEN(ml.startFEN)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ml.moves))
	for i, m := range ml.moves {
		notation, err := encodeMoveNotation(p, m, figurine)
		if err != nil {
			return nil, err
		}
		out[i] = notation
		if !p.DoMove(m, false) {
			return nil, &IllegalMoveError{Move: m, FEN: p.FEN()}
		}
	}
	return out, nil
}
