package room

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"pokertable-server/internal/util"
	"pokertable-server/pkg/strategy"
)

// ErrTableNotFound is returned when no table exists for the UUID
var ErrTableNotFound = errors.New("table not found")

// Options configures every table created by the PitBoss
type Options struct {
	Dealer DealerOptions

	// NewBot returns the strategy for a new bot seat. Defaults to passive bots.
	NewBot func() strategy.Strategy
}

// PitBoss is responsible for dispatching players to tables
type PitBoss struct {
	logger  logrus.FieldLogger
	opts    Options
	dealers map[string]*Dealer
	lock    sync.RWMutex
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger, opts Options) *PitBoss {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if opts.NewBot == nil {
		opts.NewBot = func() strategy.Strategy {
			return strategy.Passive{}
		}
	}

	return &PitBoss{
		logger:  logger,
		opts:    opts,
		dealers: make(map[string]*Dealer),
	}
}

// NewTable opens a table with the given number of bot seats and starts its dealer
func (p *PitBoss) NewTable(bots int) (*Dealer, error) {
	d := NewDealer(p.logger, uuid.New().String(), p.opts.Dealer)
	d.StartShift()

	for i := 0; i < bots; i++ {
		if _, err := d.AddSeat(util.GetRandomName(), p.opts.NewBot()); err != nil {
			d.EndShift()
			return nil, err
		}
	}

	p.lock.Lock()
	p.dealers[d.UUID] = d
	p.lock.Unlock()

	p.logger.WithFields(logrus.Fields{
		"table": d.UUID,
		"bots":  bots,
	}).Info("table opened")

	return d, nil
}

// Dealer returns the dealer running the table
func (p *PitBoss) Dealer(uuid string) (*Dealer, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	d, ok := p.dealers[uuid]
	return d, ok
}

// CloseTable ends the dealer's shift and forgets the table
func (p *PitBoss) CloseTable(uuid string) error {
	p.lock.Lock()
	d, ok := p.dealers[uuid]
	delete(p.dealers, uuid)
	p.lock.Unlock()

	if !ok {
		return ErrTableNotFound
	}

	d.EndShift()
	<-d.Done()

	p.logger.WithField("table", uuid).Info("table closed")
	return nil
}

// Close ends every dealer's shift and waits for the run loops to terminate
func (p *PitBoss) Close(ctx context.Context) error {
	p.lock.Lock()
	dealers := p.dealers
	p.dealers = make(map[string]*Dealer)
	p.lock.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, d := range dealers {
		d := d
		g.Go(func() error {
			d.EndShift()

			select {
			case <-d.Done():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	return g.Wait()
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) error {
	d, ok := p.Dealer(client.tableUUID)
	if !ok {
		return ErrTableNotFound
	}

	p.logger.WithField("client", client.String()).Debug("client connected")
	d.AddClient(client)
	return nil
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.logger.WithField("client", client.String()).Debug("client disconnected")
	if d, ok := p.Dealer(client.tableUUID); ok {
		d.RemoveClient(client)
	}
}
