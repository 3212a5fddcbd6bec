package room

import "pokertable-server/pkg/engine"

// Response is a message sent to a websocket client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Context string      `json:"context,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PayloadIn is a message received from a websocket client
type PayloadIn struct {
	Action  string   `json:"action"`
	Context string   `json:"context,omitempty"`
	Type    string   `json:"type,omitempty"`
	Value   *float64 `json:"value,omitempty"`
	Message string   `json:"message,omitempty"`
}

// OK acknowledges a client message
func OK(ctx string) *Response {
	return &Response{
		Key:     "ok",
		Context: ctx,
	}
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newSnapshotResponse(s engine.Snapshot) *Response {
	return &Response{
		Key:  "snapshot",
		Data: s,
	}
}
