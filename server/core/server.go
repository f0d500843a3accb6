package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/shared/messages"
	"github.com/automoto/archer-arena/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Options configures a dedicated server.
type Options struct {
	Name     string
	Version  string // Required client version (empty = accept any)
	TickRate int
}

// Server manages the game state and client connections
type Server struct {
	opts      Options
	world     donburi.World
	session   *Session
	mirror    *Mirror
	loop      *GameLoop
	transport *transports.WsServerTransport

	// Track which network client controls which slot
	clientActors map[*router.NetworkClient]components.ID
	mu           sync.RWMutex // Guards clientActors and the world
}

// NewServer creates a new game server around session
func NewServer(opts Options, session *Session) *Server {
	world := donburi.NewWorld()

	s := &Server{
		opts:         opts,
		world:        world,
		session:      session,
		mirror:       NewMirror(world),
		clientActors: make(map[*router.NetworkClient]components.ID),
	}
	s.loop = NewGameLoop(s, opts.TickRate)
	s.mirror.OnSpawn = s.syncEntity

	// Set up the world for esync
	srvsync.UseEsync(world)

	// Mirror the opening state so slots have network IDs before anyone joins
	s.mu.Lock()
	if err := s.mirror.Apply(session.Tick(0)); err != nil {
		log.Printf("Failed to mirror opening state: %v", err)
	}
	s.mu.Unlock()

	// Register router callbacks
	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	router.On(func(client *router.NetworkClient, choice messages.UpgradeChoice) {
		s.onUpgradeChoice(client, choice)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

// syncEntity marks a freshly mirrored entity for network sync.
func (s *Server) syncEntity(kind EntityKind, entity donburi.Entity) error {
	var err error
	switch kind {
	case KindActor:
		err = srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetTransform, netcomponents.NetVelocity),
			netcomponents.NetActor,
		)
	case KindProjectile:
		err = srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetTransform, netcomponents.NetVelocity),
			netcomponents.NetProjectile,
		)
	case KindEnemy:
		err = srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetTransform, netcomponents.NetVelocity),
			netcomponents.NetEnemy,
		)
	case KindEffect:
		err = srvsync.NetworkSync(s.world, &entity,
			netcomponents.NetTransform,
			netcomponents.NetEffect,
		)
	default:
		err = srvsync.NetworkSync(s.world, &entity, netcomponents.NetMatch)
	}
	if err != nil {
		return fmt.Errorf("network sync: %w", err)
	}
	return nil
}

// Step runs one session tick, mirrors it and broadcasts its messages.
func (s *Server) Step(dt float64) {
	frame := s.session.Tick(dt)

	s.mu.Lock()
	if err := s.mirror.Apply(frame); err != nil {
		log.Printf("Mirror error: %v", err)
	}
	s.mu.Unlock()

	for _, msg := range frame.Messages {
		s.broadcast(msg)
	}
}

func (s *Server) broadcast(msg any) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for client := range s.clientActors {
		if err := client.SendMessage(msg); err != nil {
			log.Printf("Send to %s failed: %v", client.Id(), err)
		}
	}
}

func (s *Server) reject(client *router.NetworkClient, reason string) {
	log.Printf("Rejecting client %s: %s", client.Id(), reason)
	if err := client.SendMessage(messages.JoinRejected{Reason: reason}); err != nil {
		log.Printf("Send to %s failed: %v", client.Id(), err)
	}
}

func (s *Server) onJoinRequest(client *router.NetworkClient, req messages.JoinRequest) {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		s.reject(client, fmt.Sprintf("version mismatch: server %s, client %s", s.opts.Version, req.Version))
		return
	}

	s.mu.RLock()
	_, already := s.clientActors[client]
	s.mu.RUnlock()
	if already {
		return
	}

	name := req.PlayerName
	if name == "" {
		name = "archer"
	}
	id, err := s.session.Join(name)
	if err != nil {
		s.reject(client, err.Error())
		return
	}

	s.mu.Lock()
	s.clientActors[client] = id
	var netID esync.NetworkId
	if entity, ok := s.mirror.Entity(KindActor, id); ok {
		if nid := esync.GetNetworkId(s.world.Entry(entity)); nid != nil {
			netID = *nid
		}
	}
	s.mu.Unlock()

	state := s.session.Snapshot()
	accepted := messages.JoinAccepted{
		NetworkID:  netID,
		ActorID:    uint32(id),
		MatchID:    s.session.MatchID(),
		ServerName: s.opts.Name,
		TickRate:   s.opts.TickRate,
		Mode:       int(state.Mode),
		Arena:      state.Arena.Name,
	}
	if err := client.SendMessage(accepted); err != nil {
		log.Printf("Send to %s failed: %v", client.Id(), err)
		return
	}
	log.Printf("Client %s joined as %q (slot %d)", client.Id(), name, id)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	id, exists := s.clientActors[client]
	if exists {
		delete(s.clientActors, client)
	}
	s.mu.Unlock()

	if exists {
		s.session.Leave(id)
	}
}

func (s *Server) actorFor(client *router.NetworkClient) (components.ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.clientActors[client]
	return id, ok
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	if id, ok := s.actorFor(client); ok {
		s.session.SetInput(id, input)
	}
}

func (s *Server) onUpgradeChoice(client *router.NetworkClient, choice messages.UpgradeChoice) {
	id, ok := s.actorFor(client)
	if !ok {
		return
	}
	if err := s.session.ChooseUpgrade(id, choice.UpgradeID); err != nil {
		log.Printf("Client %s upgrade %q ignored: %v", client.Id(), choice.UpgradeID, err)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clientActors)
}
