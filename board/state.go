package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when the side to move still has a legal move.
	StateRunning

	// StateWhiteWins is when Black is to move and cannot.
	StateWhiteWins

	// StateBlackWins is when White is to move and cannot.
	StateBlackWins

	// StateDraw is when the turn limit has been reached.
	StateDraw
)

func (s State) IsRunning() bool {
	return s == StateRunning
}

func (s State) IsWin() bool {
	return s == StateWhiteWins || s == StateBlackWins
}

func (s State) Winner() Side {
	switch s {
	case StateWhiteWins:
		return SideWhite
	case StateBlackWins:
		return SideBlack
	default:
		return SideUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateWhiteWins:
		return "StateWhiteWins"
	case StateBlackWins:
		return "StateBlackWins"
	case StateDraw:
		return "StateDraw"
	default:
		return ""
	}
}
