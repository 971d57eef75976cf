package simcomponents

import "github.com/yohamta/donburi"

type OutcomeState int

const (
	Playing OutcomeState = iota
	Lost
	Won
)

func (s OutcomeState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	}
	return "unknown"
}

// Terminal reports whether the run has ended.
func (s OutcomeState) Terminal() bool {
	return s != Playing
}

// OutcomeData is the per-run result singleton. Collided never resets within
// a run; State leaves Playing at most once.
type OutcomeData struct {
	State    OutcomeState
	Collided bool
	Elapsed  float32 // seconds spent Playing
	Frames   int     // simulation steps taken, terminal ones included
	Jumps    int
}

var Outcome = donburi.NewComponentType[OutcomeData]()
