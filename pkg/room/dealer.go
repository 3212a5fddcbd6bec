package room

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"pokertable-server/pkg/action"
	"pokertable-server/pkg/engine"
	"pokertable-server/pkg/strategy"
)

// ErrDealerClosed is returned when work is sent to a dealer whose shift has ended
var ErrDealerClosed = errors.New("dealer is closed")

// ErrTableFull is returned when every seat at the table is taken
var ErrTableFull = errors.New("table is full")

// DealerOptions configures a new dealer
type DealerOptions struct {
	// MaxSeats limits how many players may sit at the table. Zero means unlimited.
	MaxSeats int

	// Engine is passed to the engine constructor
	Engine engine.Options
}

// Dealer is responsible for running a single table.
// Every access to the engine happens inside the run loop.
type Dealer struct {
	UUID string

	logger   logrus.FieldLogger
	engine   *engine.Engine
	maxSeats int

	// seats maps player ID to the strategy that plays the seat. A nil strategy is a remote player.
	seats map[string]strategy.Strategy

	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
	done          chan struct{}
}

// NewDealer creates a new dealer object
// The run loop is not started until StartShift is called
func NewDealer(logger logrus.FieldLogger, uuid string, opts DealerOptions) *Dealer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	logger = logger.WithField("table", uuid)

	return &Dealer{
		UUID:          uuid,
		logger:        logger,
		engine:        engine.New(logger, opts.Engine),
		maxSeats:      opts.MaxSeats,
		seats:         make(map[string]strategy.Strategy),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
		done:          make(chan struct{}),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift is called when the dealer is no longer needed
// It is safe to call more than once
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

// Done is closed once the run loop has terminated
func (d *Dealer) Done() <-chan struct{} {
	return d.done
}

func (d *Dealer) runLoop() {
	defer close(d.done)

	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// exec runs fn in the run loop and waits for it to finish
func (d *Dealer) exec(fn func() error) error {
	errCh := make(chan error, 1)
	run := func() {
		errCh <- fn()
	}

	select {
	case d.execInRunLoop <- run:
	case <-d.close:
		return ErrDealerClosed
	}

	select {
	case err := <-errCh:
		return err
	case <-d.close:
		return ErrDealerClosed
	}
}

// Do runs fn against the engine inside the run loop and waits for the result.
// If fn succeeds, the new state is pushed to every connected client.
func (d *Dealer) Do(fn func(e *engine.Engine) error) error {
	return d.exec(func() error {
		if err := fn(d.engine); err != nil {
			return err
		}

		d.sendSnapshots()
		return nil
	})
}

// Snapshot returns the current state of the table
func (d *Dealer) Snapshot() (engine.Snapshot, error) {
	var s engine.Snapshot
	err := d.exec(func() error {
		s = d.engine.Snapshot()
		return nil
	})

	return s, err
}

// AddSeat registers a player at the table and returns the player's ID.
// Seats with a nil strategy are played remotely.
func (d *Dealer) AddSeat(name string, s strategy.Strategy) (string, error) {
	var id string
	err := d.Do(func(e *engine.Engine) error {
		if d.maxSeats > 0 && len(e.PlayerIDs()) >= d.maxSeats {
			return ErrTableFull
		}

		id = e.RegisterPlayer(name)
		d.seats[id] = s

		d.logger.WithFields(logrus.Fields{
			"player": id,
			"name":   name,
			"bot":    s != nil,
		}).Info("player seated")

		return nil
	})

	return id, err
}

// PlayTurn gives the turn to the player.
// Bot seats decide immediately and their action is executed. Remote seats are
// left holding the turn until they submit an action.
func (d *Dealer) PlayTurn(playerID string) error {
	return d.Do(func(e *engine.Engine) error {
		return d.playTurn(e, playerID)
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) playTurn(e *engine.Engine, playerID string) error {
	if err := e.BeginTurn(playerID); err != nil {
		return err
	}

	s := d.seats[playerID]
	if s == nil {
		return nil
	}

	if err := e.SubmitAction(s.Decide(e.Snapshot())); err != nil {
		return err
	}

	return e.ExecuteQueuedActions()
}

// PlayRound starts a new round and lets every bot seat act once per stage until
// the showdown, or until the rules report a stage is not complete.
// Remote seats act through SubmitAction.
func (d *Dealer) PlayRound() error {
	return d.Do(func(e *engine.Engine) error {
		if err := e.StartRound(); err != nil {
			return err
		}

		for e.RoundType() != engine.RoundShowdown {
			for _, id := range e.PlayerIDs() {
				if d.seats[id] == nil {
					continue
				}

				if p, _ := e.Player(id); p.Folded {
					continue
				}

				if err := d.playTurn(e, id); err != nil {
					return err
				}
			}

			advanced, err := e.AdvanceRoundIfComplete()
			if err != nil {
				return err
			}

			if !advanced {
				return nil
			}
		}

		return nil
	})
}

// SubmitAction queues an action on behalf of a remote player
func (d *Dealer) SubmitAction(playerID string, t action.Type, value *float64) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %s", engine.ErrUnknownActionType, string(t))
	}

	return d.Do(func(e *engine.Engine) error {
		return e.SubmitAction(action.Action{
			PlayerID: playerID,
			Type:     t,
			Value:    value,
		})
	})
}

// EndTurn stops waiting on the remote player holding the turn so the table can move on
func (d *Dealer) EndTurn() error {
	return d.Do(func(e *engine.Engine) error {
		return e.EndTurn()
	})
}

// AddClient adds a client and sends it the current state
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	select {
	case d.execInRunLoop <- func() {
		client.Send(newSnapshotResponse(d.engine.Snapshot().ForPlayer(client.playerID)))
	}:
	case <-d.close:
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	return nClients == 0
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendSnapshots() {
	clients := d.Clients()
	if len(clients) == 0 {
		return
	}

	s := d.engine.Snapshot()
	for _, client := range clients {
		if !client.Send(newSnapshotResponse(s.ForPlayer(client.playerID))) {
			d.logger.WithField("client", client.String()).Warn("client buffer is full, dropping update")
		}
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	if c.playerID == "" {
		c.Send(newErrorResponse(msg.Context, errors.New("spectators cannot act")))
		return
	}

	var err error
	switch msg.Action {
	case "action":
		err = d.SubmitAction(c.playerID, action.Type(msg.Type), msg.Value)
	case "chat":
		err = d.Do(func(e *engine.Engine) error {
			return e.SendMessage(c.playerID, msg.Message)
		})
	default:
		d.logger.WithField("msg", msg).Warn("unknown message")
		err = fmt.Errorf("unknown message action: %s", msg.Action)
	}

	if err != nil {
		d.logger.WithError(err).WithField("client", c.String()).Error("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
}
