// Package network is the client side of the match protocol: it joins a
// server, queues snapshots and events for the scene, and sends input.
package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/archer-arena/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

const (
	writeTimeout = 2 * time.Second
	eventBuffer  = 64
)

// ErrNotConnected is returned when sending without an open connection.
var ErrNotConnected = errors.New("not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Client holds one connection to a match server.
// Router callbacks run on necs goroutines, so shared fields are guarded by mu.
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	joined    messages.JoinAccepted
	conn      *websocket.Conn

	// Each channel is drained by the scene once per frame.
	snapshots chan esync.WorldSnapshot // latest wins
	events    chan messages.GameEvent  // dropped when full
	matchOver chan messages.MatchOver  // latest wins
}

func NewClient() *Client {
	return &Client{
		state:     StateDisconnected,
		snapshots: make(chan esync.WorldSnapshot, 1),
		events:    make(chan messages.GameEvent, eventBuffer),
		matchOver: make(chan messages.MatchOver, 1),
	}
}

// Connect dials address in the background and asks to join as playerName
// once the socket is open. Progress is reported through State.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	c.registerHandlers(messages.JoinRequest{Version: version, PlayerName: playerName})
	go c.dial("ws://" + address)
}

func (c *Client) dial(url string) {
	transport := transports.NewWsClientTransport(url)
	err := transport.Start(func(conn *websocket.Conn) {
		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()
	})
	if err != nil {
		c.setError(fmt.Errorf("connect to %s: %w", url, err))
	}
}

func (c *Client) registerHandlers(join messages.JoinRequest) {
	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected, requesting join as", join.PlayerName)
		c.setState(StateConnected)
		if err := c.SendMessage(join); err != nil {
			c.setError(fmt.Errorf("send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] joined %q: actor=%d networkID=%d arena=%q tickRate=%d",
			msg.ServerName, msg.ActorID, msg.NetworkID, msg.Arena, msg.TickRate)
		c.mu.Lock()
		c.joined = msg
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		replaceLatest(c.snapshots, snapshot)
	})

	router.On(func(_ *router.NetworkClient, evt messages.GameEvent) {
		select {
		case c.events <- evt:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.MatchOver) {
		log.Printf("[client] match %s over, winner %q", msg.MatchID, msg.Winner)
		replaceLatest(c.matchOver, msg)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})
}

// Disconnect closes the socket and clears every router handler.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Joined returns the server's join acceptance. Zero until StateJoinedGame.
func (c *Client) Joined() messages.JoinAccepted {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined
}

// NetworkID is the synced entity id of the local archer.
func (c *Client) NetworkID() esync.NetworkId {
	return c.Joined().NetworkID
}

func (c *Client) TickRate() int {
	return c.Joined().TickRate
}

// LatestSnapshot returns the newest WorldSnapshot since the last call, or nil.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshots:
		return &snap
	default:
		return nil
	}
}

// SendMessage serializes msg with the necs router and writes it as one
// binary frame.
func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize %T: %w", msg, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageBinary, payload)
}

func (c *Client) setState(s ClientState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainEvents returns all queued game events in arrival order.
func (c *Client) DrainEvents() []messages.GameEvent {
	var out []messages.GameEvent
	for {
		select {
		case evt := <-c.events:
			out = append(out, evt)
		default:
			return out
		}
	}
}

// MatchOver returns the latest match result, if one arrived since the last call.
func (c *Client) MatchOver() (messages.MatchOver, bool) {
	select {
	case msg := <-c.matchOver:
		return msg, true
	default:
		return messages.MatchOver{}, false
	}
}

// replaceLatest drops any unread value so ch always holds the newest.
func replaceLatest[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
