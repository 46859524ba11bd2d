package entity

// Score - results of the games played in one session.
type Score struct {
	X    int `json:"x"`
	O    int `json:"o"`
	Draw int `json:"draw"`
}

// Add - counts a finished outcome. Unfinished outcomes are ignored.
func (that *Score) Add(outcome Outcome) {
	switch {
	case outcome.Status == StatusDraw:
		that.Draw++
	case outcome.Status == StatusWon && outcome.Winner == PlayerX:
		that.X++
	case outcome.Status == StatusWon && outcome.Winner == PlayerO:
		that.O++
	}
}

func (that *Score) Games() int {
	return that.X + that.O + that.Draw
}
