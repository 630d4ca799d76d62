// Package spectate streams an attract-mode maze chase session to browsers
// and other websocket clients.
//
// A Hub owns one scheduler and advances it on its own ticker. Each tick the
// snapshot is encoded once; connected clients only ever see the encoded
// frames, so no game state is shared between goroutines.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/sim"
)

// Routes served by the hub.
const (
	URIWatch    = "/watch"
	URISnapshot = "/snapshot"
)

const writeWait = time.Second

// Hub runs a single scheduler and fans its frames out to spectators.
type Hub struct {
	router   *way.Router
	upgrader *websocket.Upgrader
	logger   *log.Logger
	interval time.Duration

	sched *sim.Scheduler // Only touched by Step

	mu      sync.RWMutex
	frame   []byte
	seq     uint64
	clients int
}

// NewHub creates a hub that ticks sched tickRate times per second.
func NewHub(sched *sim.Scheduler, tickRate int, logger *log.Logger) *Hub {
	if tickRate <= 0 {
		tickRate = 50
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := &Hub{
		upgrader: &websocket.Upgrader{},
		logger:   logger,
		interval: time.Second / time.Duration(tickRate),
		sched:    sched,
	}
	h.routes()
	h.publish()
	return h
}

func (h *Hub) routes() {
	h.router = way.NewRouter()
	h.router.HandleFunc("GET", URIWatch, h.handleWatch())
	h.router.HandleFunc("GET", URISnapshot, h.handleSnapshot())
}

// ServeHTTP makes the hub usable as an http.Handler.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Run advances the scheduler until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.logger.Info("spectator feed running", "interval", h.interval)
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("spectator feed stopped")
			return
		case <-ticker.C:
			h.Step()
		}
	}
}

// Step runs one tick without input and publishes the new frame.
// Attract sessions steer themselves.
func (h *Hub) Step() {
	h.sched.Tick(sim.Centered())
	h.publish()
}

func (h *Hub) publish() {
	data, err := json.Marshal(h.sched.Snapshot(true))
	if err != nil {
		h.logger.Error("encode snapshot", "error", err)
		return
	}
	h.mu.Lock()
	h.frame = data
	h.seq++
	h.mu.Unlock()
}

// Frame returns the latest encoded snapshot and its sequence number.
func (h *Hub) Frame() ([]byte, uint64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.frame, h.seq
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients
}

func (h *Hub) addClient(delta int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients += delta
	return h.clients
}

func (h *Hub) handleSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		frame, _ := h.Frame()
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(frame); err != nil {
			h.logger.Debug("write snapshot", "error", err)
		}
	}
}

func (h *Hub) handleWatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client.
			h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		defer conn.Close()

		n := h.addClient(1)
		h.logger.Info("spectator joined", "remote", r.RemoteAddr, "clients", n)
		defer func() {
			n := h.addClient(-1)
			h.logger.Info("spectator left", "remote", r.RemoteAddr, "clients", n)
		}()

		conn.SetPingHandler(func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(writeWait))
			var netErr net.Error
			if errors.Is(err, websocket.ErrCloseSent) || (errors.As(err, &netErr) && netErr.Timeout()) {
				return nil
			}
			return err
		})

		closed := make(chan struct{})
		go h.readLoop(conn, closed)

		if err := h.writeLoop(r.Context(), conn, closed); err != nil {
			h.logger.Debug("spectator write ended", "remote", r.RemoteAddr, "error", err)
		}
	}
}

// readLoop discards client messages and closes closed when the peer goes away.
func (h *Hub) readLoop(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

// writeLoop sends every new frame until the client or the request goes away.
func (h *Hub) writeLoop(ctx context.Context, conn *websocket.Conn, closed <-chan struct{}) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var sent uint64
	for {
		frame, seq := h.Frame()
		if seq != sent {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("spectate: set deadline: %w", err)
			}
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return fmt.Errorf("spectate: write frame: %w", err)
			}
			sent = seq
		}

		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			return nil
		case <-ticker.C:
		}
	}
}
