package mux

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"pokertable-server/internal/config"
	"pokertable-server/internal/jwt"
	"pokertable-server/pkg/action"
	"pokertable-server/pkg/engine"
)

type postTablePayload struct {
	Bots *int `json:"bots"`
}

type postTableResponse struct {
	UUID string `json:"uuid"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if r.ContentLength != 0 && !decodeRequest(w, r, &pp) {
			return
		}

		bots := config.Instance().Table.Bots
		if pp.Bots != nil {
			bots = *pp.Bots
		}

		if bots < 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("bots cannot be negative"))
			return
		}

		dealer, err := m.pitBoss.NewTable(bots)
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, postTableResponse{UUID: dealer.UUID})
	}
}

// getTableUUID returns the snapshot. Cards are only shown to the seat holding a valid token.
func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, _ := seatFromRequest(r)

		s, err := dealerFromContext(r).Snapshot()
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, s.ForPlayer(playerID))
	}
}

type postTableUUIDSeatPayload struct {
	Name string `json:"name"`
}

type postTableUUIDSeatResponse struct {
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
}

func (m *Mux) postTableUUIDSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableUUIDSeatPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		name := strings.TrimSpace(pp.Name)
		if len(name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name cannot be more than 40 characters"))
			return
		}

		dealer := dealerFromContext(r)
		id, err := dealer.AddSeat(name, nil)
		if err != nil {
			writeTableError(w, err)
			return
		}

		token, err := jwt.Sign(dealer.UUID, id)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, postTableUUIDSeatResponse{
			PlayerID: id,
			Token:    token,
		})
	}
}

// engineHandler runs fn in the dealer's run loop and responds with the resulting snapshot
func (m *Mux) engineHandler(fn func(r *http.Request, e *engine.Engine) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromContext(r)
		playerID, _ := seatFromRequest(r)

		var s engine.Snapshot
		err := dealer.Do(func(e *engine.Engine) error {
			if err := fn(r, e); err != nil {
				return err
			}

			s = e.Snapshot()
			return nil
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, s.ForPlayer(playerID))
	}
}

func (m *Mux) postTableUUIDRound() http.HandlerFunc {
	return m.engineHandler(func(_ *http.Request, e *engine.Engine) error {
		return e.StartRound()
	})
}

func (m *Mux) postTableUUIDDeal() http.HandlerFunc {
	return m.engineHandler(func(_ *http.Request, e *engine.Engine) error {
		return e.DealHand()
	})
}

func (m *Mux) postTableUUIDAdvance() http.HandlerFunc {
	return m.engineHandler(func(_ *http.Request, e *engine.Engine) error {
		return e.AdvanceRound()
	})
}

func (m *Mux) postTableUUIDExecute() http.HandlerFunc {
	return m.engineHandler(func(_ *http.Request, e *engine.Engine) error {
		return e.ExecuteQueuedActions()
	})
}

type postTableUUIDTurnPayload struct {
	PlayerID string `json:"playerId"`
}

func (m *Mux) postTableUUIDTurn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableUUIDTurnPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		dealer := dealerFromContext(r)
		if err := dealer.PlayTurn(pp.PlayerID); err != nil {
			writeTableError(w, err)
			return
		}

		s, err := dealer.Snapshot()
		if err != nil {
			writeTableError(w, err)
			return
		}

		playerID, _ := seatFromRequest(r)
		writeJSON(w, http.StatusOK, s.ForPlayer(playerID))
	}
}

func (m *Mux) deleteTableUUIDTurn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromContext(r)
		if err := dealer.EndTurn(); err != nil {
			writeTableError(w, err)
			return
		}

		s, err := dealer.Snapshot()
		if err != nil {
			writeTableError(w, err)
			return
		}

		playerID, _ := seatFromRequest(r)
		writeJSON(w, http.StatusOK, s.ForPlayer(playerID))
	}
}

type getTableUUIDMessageResponse struct {
	Message string `json:"message"`
	Pending int    `json:"pending"`
}

func (m *Mux) getTableUUIDMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp getTableUUIDMessageResponse
		err := dealerFromContext(r).Do(func(e *engine.Engine) error {
			resp.Message = e.DequeueMessage()
			resp.Pending = e.PendingMessageCount()
			return nil
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type postTableUUIDActionPayload struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value"`
}

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableUUIDActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		t, err := action.FromString(pp.Type)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if t.RequiresValue() && pp.Value == nil {
			writeJSONError(w, http.StatusBadRequest, errors.New("value is required"))
			return
		}

		playerID := playerFromContext(r)
		if err := dealerFromContext(r).SubmitAction(playerID, t, pp.Value); err != nil {
			writeTableError(w, err)
			return
		}

		logrus.WithField("player", playerID).WithField("action", t).Debug("action received")
		writeJSON(w, http.StatusAccepted, "OK")
	}
}

type postTableUUIDChatPayload struct {
	Message string `json:"message"`
}

func (m *Mux) postTableUUIDChat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableUUIDChatPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if strings.TrimSpace(pp.Message) == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("message cannot be empty"))
			return
		}

		playerID := playerFromContext(r)
		err := dealerFromContext(r).Do(func(e *engine.Engine) error {
			return e.SendMessage(playerID, pp.Message)
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusAccepted, "OK")
	}
}
