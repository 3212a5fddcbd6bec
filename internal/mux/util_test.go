package mux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokertable-server/internal/jwt"
	"pokertable-server/pkg/engine"
	"pokertable-server/pkg/room"
)

func setupJWT() {
	jwt.SetSecret("test-secret", time.Hour)
}

// setupServer returns a running server with an empty pit boss
func setupServer(t *testing.T) (*httptest.Server, *room.PitBoss) {
	t.Helper()
	setupJWT()

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), room.Options{
		Dealer: room.DealerOptions{MaxSeats: 4},
	})

	ts := httptest.NewServer(NewMux("v1.2.3", pitBoss))
	t.Cleanup(func() {
		ts.Close()
		_ = pitBoss.Close(context.Background())
	})

	return ts, pitBoss
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	if len(signedJWT) > 0 {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", signedJWT[0]))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode, signedJWT...)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return nil
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	return assertDo(t, req, respObj, statusCode, signedJWT...)
}

func assertDelete(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode, signedJWT...)
}

func Test_writeTableError(t *testing.T) {
	assertStatus := func(t *testing.T, err error, statusCode int) {
		t.Helper()

		w := httptest.NewRecorder()
		writeTableError(w, err)
		assert.Equal(t, statusCode, w.Code)

		var resp errorResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, statusCode, resp.StatusCode)
	}

	assertStatus(t, fmt.Errorf("%w: -1", engine.ErrInvalidValue), http.StatusBadRequest)
	assertStatus(t, fmt.Errorf("%w: abc", engine.ErrUnknownPlayer), http.StatusNotFound)
	assertStatus(t, room.ErrTableNotFound, http.StatusNotFound)
	assertStatus(t, fmt.Errorf("%w: need 54", engine.ErrDeckExhausted), http.StatusConflict)
	assertStatus(t, engine.ErrInvalidTurnState, http.StatusConflict)
	assertStatus(t, engine.ErrRoundOver, http.StatusConflict)
	assertStatus(t, room.ErrTableFull, http.StatusConflict)
	assertStatus(t, room.ErrDealerClosed, http.StatusServiceUnavailable)
	assertStatus(t, engine.ErrUnknownActionType, http.StatusInternalServerError)
}
