package action

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Type is the kind of action a player can take
type Type string

// action constants
const (
	Fold  Type = "fold"
	Check Type = "check"
	Bet   Type = "bet"
	Call  Type = "call"
	Raise Type = "raise"
)

var allowedTypes = map[Type]bool{
	Fold:  true,
	Check: true,
	Bet:   true,
	Call:  true,
	Raise: true,
}

// FromString returns an action type for the given string
func FromString(s string) (Type, error) {
	if _, ok := allowedTypes[Type(s)]; ok {
		return Type(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (t Type) String() string {
	switch t {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Bet:
		return "Bet"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	}

	return fmt.Sprintf("Unknown(%s)", string(t))
}

// MarshalJSON encodes the action type into JSON
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(t),
		Name: t.String(),
	})
}

// IsValid returns true if the action type is one of the known types
func (t Type) IsValid() bool {
	_, ok := allowedTypes[t]
	return ok
}

// RequiresValue returns true if the action needs an amount
func (t Type) RequiresValue() bool {
	return t == Bet || t == Raise
}

// LogMessage returns a message formatted for the log
func (t Type) LogMessage(amount float64) string {
	switch t {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return "called"
	case Bet:
		return "bet " + FormatValue(amount)
	case Raise:
		return "raised to " + FormatValue(amount)
	}

	return ""
}

// Action is a request from a player. It is immutable once created and is
// consumed exactly once by the engine.
type Action struct {
	PlayerID string   `json:"playerId"`
	Type     Type     `json:"type"`
	Value    *float64 `json:"value,omitempty"`
}

// New returns an action without a value
func New(playerID string, t Type) Action {
	return Action{PlayerID: playerID, Type: t}
}

// NewWithValue returns an action carrying an amount
func NewWithValue(playerID string, t Type, value float64) Action {
	return Action{PlayerID: playerID, Type: t, Value: &value}
}

// Amount returns the value of the action, or 0 if none was provided
func (a Action) Amount() float64 {
	if a.Value == nil {
		return 0
	}

	return *a.Value
}

// Describe returns the message shown when the named player submits this action
func (a Action) Describe(playerName string) string {
	s := fmt.Sprintf("%s Chose to %s", playerName, a.Type)
	if a.Value != nil {
		s += " " + FormatValue(*a.Value)
	}

	return s
}

// FormatValue prints an amount without trailing zeros (15, 12.5)
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
