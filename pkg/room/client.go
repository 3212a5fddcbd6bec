package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer

	// playerID is empty for spectators
	playerID  string
	tableUUID string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID, tableUUID string) *Client {
	return &Client{
		send:      make(chan interface{}, 256),
		Close:     make(chan string),
		Conn:      conn,
		playerID:  playerID,
		tableUUID: tableUUID,
	}
}

// Send send a message to the web client
// If the buffer is full the message is dropped and false is returned
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// PlayerID returns the player the client is seated as, or an empty string for spectators
func (c *Client) PlayerID() string {
	return c.playerID
}

// String returns a traceable identifier for the player and table
func (c *Client) String() string {
	playerID := c.playerID
	if playerID == "" {
		playerID = "spectator"
	}

	return fmt.Sprintf("%s:%s", playerID, c.tableUUID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
