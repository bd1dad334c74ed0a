package web

import (
	"encoding/json"

	"github.com/bcspragu/Ludo/ludo"
)

// Outcome is the response body of a roll or a move.
type Outcome struct {
	Result *ludo.Result    `json:"result"`
	State  *ludo.GameState `json:"state"`
}

// Rolled is sent to watchers after the die is rolled.
type Rolled Outcome

func (r *Rolled) MarshalJSON() ([]byte, error) {
	return withAction("ROLLED", (*Outcome)(r))
}

// Moved is sent to watchers after a token moves.
type Moved Outcome

func (m *Moved) MarshalJSON() ([]byte, error) {
	return withAction("MOVED", (*Outcome)(m))
}

// withAction adds an "action" field next to the outcome's own fields.
func withAction(action string, o *Outcome) ([]byte, error) {
	return json.Marshal(struct {
		*Outcome
		Action string `json:"action"`
	}{o, action})
}
