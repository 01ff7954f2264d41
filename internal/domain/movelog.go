package domain

import "time"

// MoveRecord is one successfully executed rename. A move log never
// contains entries for failed moves.
type MoveRecord struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MoveBatch describes one journaled organize run. The batch's ordered
// move records are the sole state needed to reverse it.
type MoveBatch struct {
	ID         int64
	TargetRoot string
	CreatedAt  time.Time
	MoveCount  int
}
