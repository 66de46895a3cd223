// Package server exposes the conversion pipeline over WebSocket, the
// interface the animation frontend consumes. One message in (a dialogue
// line), one message out (the finalized viseme events for it).
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/normanking/mouthsync"
	"github.com/normanking/mouthsync/internal/bus"
	"github.com/normanking/mouthsync/internal/config"
	"github.com/normanking/mouthsync/internal/viseme"
)

// SpeakRequest asks for one dialogue line to be converted. CPS of zero
// means the server's configured default; Raw skips post-processing so the
// client can run finalize itself.
type SpeakRequest struct {
	Text string  `json:"text"`
	CPS  float64 `json:"cps,omitempty"`
	Raw  bool    `json:"raw,omitempty"`
}

// SpeakResponse carries the converted events back to the client.
type SpeakResponse struct {
	Type     string         `json:"type"` // "events"
	Events   []viseme.Event `json:"events"`
	Duration float64        `json:"duration"` // total seconds
}

// noticeMessage announces server-side state changes, e.g. a table reload.
type noticeMessage struct {
	Type string `json:"type"`
}

// client wraps a connection with a write lock, since broadcasts and request
// replies share it.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Server serves the pipeline at /speak.
type Server struct {
	pipe *mouthsync.Pipeline
	bus  *bus.EventBus
	cfg  config.ServerConfig
	log  zerolog.Logger

	upgrader websocket.Upgrader
	httpSrv  *http.Server

	mu      sync.Mutex
	clients map[*client]struct{}
}

// New creates a Server. When b is non-nil the server subscribes to table
// reload events, notifies connected clients, and publishes client lifecycle
// and line-processed events.
func New(pipe *mouthsync.Pipeline, b *bus.EventBus, cfg config.ServerConfig, log zerolog.Logger) *Server {
	s := &Server{
		pipe:    pipe,
		bus:     b,
		cfg:     cfg,
		log:     log.With().Str("component", "server").Logger(),
		clients: make(map[*client]struct{}),
	}
	if b != nil {
		b.Subscribe(bus.EventTypeTablesReloaded, func(bus.Event) {
			s.broadcast(noticeMessage{Type: "tables_reloaded"})
		})
	}
	return s
}

func (s *Server) publish(t bus.EventType, data map[string]any) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(bus.Event{Type: t, Data: data})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/speak", s.handleSpeak)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.httpSrv = &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.ListenAddr).Msg("listening")
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("upgrade failed")
		return
	}

	remote := conn.RemoteAddr().String()
	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	s.log.Debug().Str("remote", remote).Msg("client connected")
	s.publish(bus.EventTypeClientConnected, map[string]any{"remote": remote})

	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		conn.Close()
		s.log.Debug().Str("remote", remote).Msg("client disconnected")
		s.publish(bus.EventTypeClientDisconnected, map[string]any{"remote": remote})
	}()

	for {
		var req SpeakRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn().Err(err).Msg("read failed")
			}
			return
		}

		events := s.pipe.ProcessAt(req.Text, req.CPS)
		if !req.Raw {
			events = viseme.Finalize(events)
		}
		s.publish(bus.EventTypeLineProcessed, map[string]any{
			"chars":  len(req.Text),
			"events": len(events),
		})
		resp := SpeakResponse{
			Type:     "events",
			Events:   events,
			Duration: viseme.TotalDuration(events),
		}
		if err := c.writeJSON(resp); err != nil {
			s.log.Warn().Err(err).Msg("write failed")
			return
		}
	}
}

func (s *Server) broadcast(v any) {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.writeJSON(v); err != nil {
			s.log.Debug().Err(err).Msg("broadcast write failed")
		}
	}
}
