package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTable(t *testing.T, ts *httptest.Server, bots int) string {
	t.Helper()

	var resp postTableResponse
	assertPost(t, ts, "/table", map[string]int{"bots": bots}, &resp, 201)
	return resp.UUID
}

func sit(t *testing.T, ts *httptest.Server, uuid, name string) postTableUUIDSeatResponse {
	t.Helper()

	var resp postTableUUIDSeatResponse
	assertPost(t, ts, "/table/"+uuid+"/seat", map[string]string{"name": name}, &resp, 201)
	return resp
}

func TestMux_postTable(t *testing.T) {
	a := assert.New(t)
	ts, pitBoss := setupServer(t)

	uuid := createTable(t, ts, 2)
	d, ok := pitBoss.Dealer(uuid)
	if a.True(ok) {
		s, _ := d.Snapshot()
		a.Len(s.Players, 2)
	}

	var resp postTableResponse
	assertPost(t, ts, "/table", "", &resp, 201)
	a.NotEmpty(resp.UUID)

	var errObj errorResponse
	assertPost(t, ts, "/table", map[string]int{"bots": -1}, &errObj, 400)
	a.Equal("bots cannot be negative", errObj.Message)

	assertPost(t, ts, "/table", map[string]int{"bots": 5}, &errObj, 409)
	a.Equal("table is full", errObj.Message)

	assertPost(t, ts, "/table", "{", nil, 400)
}

func TestMux_seat(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	uuid := createTable(t, ts, 0)

	seat := sit(t, ts, uuid, "Player 1")
	a.NotEmpty(seat.PlayerID)
	a.NotEmpty(seat.Token)

	var snap testSnapshot
	assertGet(t, ts, "/table/"+uuid, &snap, 200)
	if a.Len(snap.Players, 1) {
		a.Equal("Player 1", snap.Players[0].Name)
		a.Equal(seat.PlayerID, snap.Players[0].ID)
	}

	for i := 0; i < 3; i++ {
		sit(t, ts, uuid, "Extra")
	}

	var errObj errorResponse
	assertPost(t, ts, "/table/"+uuid+"/seat", map[string]string{"name": "Too Many"}, &errObj, 409)

	assertPost(t, ts, "/table/"+uuid+"/seat", map[string]string{"name": "This name is much longer than forty characters"}, nil, 400)
}

func TestMux_gameFlow(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	uuid := createTable(t, ts, 0)
	base := "/table/" + uuid

	p1 := sit(t, ts, uuid, "Player 1")
	p2 := sit(t, ts, uuid, "Player 2")
	p3 := sit(t, ts, uuid, "Player 3")

	var snap testSnapshot
	assertPost(t, ts, base+"/deal", "", &snap, 200)
	a.Equal(46, snap.CardsLeft)
	for _, p := range snap.Players {
		a.Len(p.Hand, 0, "anonymous requests do not see cards")
	}

	assertGet(t, ts, base, &snap, 200, p1.Token)
	for _, p := range snap.Players {
		if p.ID == p1.PlayerID {
			a.Len(p.Hand, 2)
		} else {
			a.Len(p.Hand, 0)
		}
	}

	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "bet", "value": 15}, nil, 202, p1.Token)
	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "bet", "value": 10}, nil, 202, p2.Token)
	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "raise", "value": 12}, nil, 202, p2.Token)
	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "bet", "value": 15}, nil, 202, p3.Token)

	assertGet(t, ts, base, &snap, 200)
	a.Equal(4, snap.PendingActionCount)
	a.Equal(0.0, snap.PotSize)

	assertPost(t, ts, base+"/execute", "", &snap, 200)
	a.Equal(0, snap.PendingActionCount)
	a.Equal(40.0, snap.PotSize)
	a.Equal(4, snap.PendingMessageCount)

	expected := []string{
		"Player 1 Chose to Bet 15",
		"Player 2 Chose to Bet 10",
		"Player 2 Chose to Raise 12",
		"Player 3 Chose to Bet 15",
	}

	for i, text := range expected {
		var msg getTableUUIDMessageResponse
		assertGet(t, ts, base+"/message", &msg, 200)
		a.Equal(text, msg.Message)
		a.Equal(len(expected)-i-1, msg.Pending)
	}

	var msg getTableUUIDMessageResponse
	assertGet(t, ts, base+"/message", &msg, 200)
	a.Equal("", msg.Message)
	a.Equal(0, msg.Pending)

	assertPost(t, ts, base+"/chat", map[string]string{"message": "nice"}, nil, 202, p1.Token)
	assertGet(t, ts, base+"/message", &msg, 200)
	a.Equal("Player 1: nice", msg.Message)
}

func TestMux_actionValidation(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	uuid := createTable(t, ts, 0)
	base := "/table/" + uuid
	p1 := sit(t, ts, uuid, "Player 1")

	var errObj errorResponse
	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "discard"}, &errObj, 400, p1.Token)
	a.Equal("unknown action for identifier: discard", errObj.Message)

	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "bet"}, &errObj, 400, p1.Token)
	a.Equal("value is required", errObj.Message)

	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "raise", "value": -5}, &errObj, 400, p1.Token)
	a.Equal("invalid action value: -5", errObj.Message)

	var snap testSnapshot
	assertGet(t, ts, base, &snap, 200)
	a.Equal(0, snap.PendingActionCount)
	a.Equal(0, snap.PendingMessageCount)

	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "fold"}, nil, 401)
	assertPost(t, ts, base+"/chat", map[string]string{"message": " "}, nil, 400, p1.Token)
	assertPost(t, ts, base+"/chat", map[string]string{"message": "hi"}, nil, 401)
}

func TestMux_rounds(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	uuid := createTable(t, ts, 0)
	base := "/table/" + uuid

	var errObj errorResponse
	assertPost(t, ts, base+"/round", "", &errObj, 409)
	a.Equal("no players registered", errObj.Message)

	p1 := sit(t, ts, uuid, "Player 1")
	p2 := sit(t, ts, uuid, "Player 2")

	var snap testSnapshot
	assertPost(t, ts, base+"/round", "", &snap, 200)
	a.Equal(namedEnum{ID: 0, Name: "blind"}, snap.CurrentRoundType)

	for _, name := range []string{"pre-flop", "flop", "turn", "river", "showdown"} {
		assertPost(t, ts, base+"/advance", "", &snap, 200)
		a.Equal(name, snap.CurrentRoundType.Name)
	}

	a.Len(snap.CommunityCards, 5)
	assertPost(t, ts, base+"/advance", "", &errObj, 409)
	a.Equal("round is over", errObj.Message)

	assertPost(t, ts, base+"/turn", map[string]string{"playerId": p1.PlayerID}, &snap, 200)
	a.Equal("awaiting-player", snap.CurrentTurnState.Name)

	assertPost(t, ts, base+"/deal", "", &errObj, 409)

	// other seats can still act while a player is awaited
	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "bet", "value": 10}, nil, 202, p2.Token)
	assertPost(t, ts, base+"/execute", "", &snap, 200)
	a.Equal("awaiting-player", snap.CurrentTurnState.Name)
	a.Equal(10.0, snap.PotSize)

	assertPost(t, ts, base+"/action", map[string]interface{}{"type": "check"}, nil, 202, p1.Token)
	assertPost(t, ts, base+"/execute", "", &snap, 200)
	a.Equal("ready", snap.CurrentTurnState.Name)

	assertPost(t, ts, base+"/turn", map[string]string{"playerId": "nope"}, &errObj, 404)
}

func TestMux_endTurn(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	uuid := createTable(t, ts, 0)
	base := "/table/" + uuid

	p1 := sit(t, ts, uuid, "Player 1")
	sit(t, ts, uuid, "Player 2")

	var errObj errorResponse
	assertDelete(t, ts, base+"/turn", &errObj, 409)

	var snap testSnapshot
	assertPost(t, ts, base+"/turn", map[string]string{"playerId": p1.PlayerID}, &snap, 200)
	a.Equal("awaiting-player", snap.CurrentTurnState.Name)
	assertPost(t, ts, base+"/round", "", &errObj, 409)

	assertDelete(t, ts, base+"/turn", &snap, 200)
	a.Equal("ready", snap.CurrentTurnState.Name)

	assertPost(t, ts, base+"/round", "", &snap, 200)
	a.Equal("blind", snap.CurrentRoundType.Name)
}
