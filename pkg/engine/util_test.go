package engine

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokertable-server/internal/rng"
	"pokertable-server/pkg/action"
	"pokertable-server/pkg/player"
)

func setupEngine(t *testing.T, names ...string) (*Engine, []string) {
	t.Helper()

	e := New(logrus.StandardLogger(), Options{
		Clock:      quartz.NewMock(t),
		DeckSource: rng.Seeded(1),
	})

	ids := make([]string, len(names))
	for i, name := range names {
		ids[i] = e.RegisterPlayer(name)
	}

	return e, ids
}

func assertSubmit(t *testing.T, e *Engine, a action.Action, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, e.SubmitAction(a), msgAndArgs...)
}

func countFlags(e *Engine) (dealers int, turns int) {
	for _, p := range e.Snapshot().Players {
		if p.IsDealer {
			dealers++
		}

		if p.IsCurrentTurn {
			turns++
		}
	}

	return dealers, turns
}

// recordingRules counts every extension point call
type recordingRules struct {
	StubRules
	blinds, calls, raises, settles int
	complete                       bool
	lastPlayer                     string
}

func (r *recordingRules) PostBlinds(Snapshot) error {
	r.blinds++
	return nil
}

func (r *recordingRules) ApplyCall(p *player.Record, a action.Action) error {
	r.calls++
	r.lastPlayer = p.ID
	return nil
}

func (r *recordingRules) ApplyRaise(p *player.Record, a action.Action) error {
	r.raises++
	r.lastPlayer = p.ID
	p.CurrentBet = a.Amount()
	return nil
}

func (r *recordingRules) RoundComplete(Snapshot) bool {
	return r.complete
}

func (r *recordingRules) SettleBets(Snapshot) error {
	r.settles++
	return nil
}
