package mux

import (
	"context"
	"errors"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
	"pokertable-server/internal/jwt"
	"pokertable-server/pkg/room"
)

type ctxKey int

const (
	ctxPlayerKey ctxKey = iota
	ctxTableKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss

	// store for testing purposes
	seatRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())
	}

	tr := this.Router.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)

	// table endpoints, a seat token is optional
	{
		tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
		tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())
		tr.Methods(http.MethodGet).Path("/message").Handler(this.getTableUUIDMessage())
		tr.Methods(http.MethodPost).Path("/seat").Handler(this.postTableUUIDSeat())
		tr.Methods(http.MethodPost).Path("/round").Handler(this.postTableUUIDRound())
		tr.Methods(http.MethodPost).Path("/deal").Handler(this.postTableUUIDDeal())
		tr.Methods(http.MethodPost).Path("/advance").Handler(this.postTableUUIDAdvance())
		tr.Methods(http.MethodPost).Path("/turn").Handler(this.postTableUUIDTurn())
		tr.Methods(http.MethodDelete).Path("/turn").Handler(this.deleteTableUUIDTurn())
		tr.Methods(http.MethodPost).Path("/execute").Handler(this.postTableUUIDExecute())
	}

	// requires a seat token for the table
	this.seatRouter = tr.NewRoute().Subrouter()
	this.seatRouter.Use(this.seatMiddleware)
	{
		r := this.seatRouter
		r.Methods(http.MethodPost).Path("/action").Handler(this.postTableUUIDAction())
		r.Methods(http.MethodPost).Path("/chat").Handler(this.postTableUUIDChat())
	}

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := strings.ToLower(gmux.Vars(r)["uuid"])
		dealer, ok := m.pitBoss.Dealer(uuid)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTableKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// seatMiddleware requires tableMiddleware to execute first
func (m *Mux) seatMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playerID, err := seatFromRequest(r)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, playerID)
		w.Header().Set("PokerTable-PlayerID", playerID)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

var errNoToken = errors.New("no token")
var errWrongTable = errors.New("token was issued for a different table")

// seatFromRequest returns the player ID from the bearer token or access_token parameter.
// The token must have been issued for the table in the request context.
func seatFromRequest(r *http.Request) (string, error) {
	token := r.FormValue("access_token")
	if token == "" {
		authHeader := strings.Split(r.Header.Get("Authorization"), " ")
		if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
			return "", errNoToken
		}

		token = authHeader[1]
	}

	tableUUID, playerID, err := jwt.ValidSeat(token)
	if err != nil {
		return "", err
	}

	if tableUUID != dealerFromContext(r).UUID {
		return "", errWrongTable
	}

	return playerID, nil
}

func dealerFromContext(r *http.Request) *room.Dealer {
	return r.Context().Value(ctxTableKey).(*room.Dealer)
}

func playerFromContext(r *http.Request) string {
	return r.Context().Value(ctxPlayerKey).(string)
}
