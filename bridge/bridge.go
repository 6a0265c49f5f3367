// Package bridge accepts controller events over WebSocket and posts them to
// an intent mailbox.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/automoto/pong-royale/intent"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const maxMessageBytes = 1 << 12 // 4 KB

// Server is the controller bridge.
type Server struct {
	addr    string
	mailbox *intent.Mailbox
}

func New(addr string, mailbox *intent.Mailbox) *Server {
	return &Server{addr: addr, mailbox: mailbox}
}

// Handler routes the controller socket and a health probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /controller", s.handleController)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// Serve listens until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[bridge] listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleController(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Controllers connect from the local network without an Origin.
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[bridge] accept: %v", err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "bridge closing")
	c.SetReadLimit(maxMessageBytes)

	ctx := r.Context()
	log.Printf("[bridge] controller connected from %s", r.RemoteAddr)

	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				log.Printf("[bridge] read: %v", err)
			}
			return
		}

		ack := s.handleMessage(data)
		if err := wsjson.Write(ctx, c, ack); err != nil {
			log.Printf("[bridge] write ack: %v", err)
			return
		}
	}
}

// handleMessage decodes one event and posts it. Malformed events are
// dropped.
func (s *Server) handleMessage(data []byte) Ack {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("[bridge] dropped malformed event: %v", err)
		return Ack{Error: "invalid json"}
	}
	player, in, err := msg.Decode()
	if err != nil {
		log.Printf("[bridge] dropped event: %v", err)
		return Ack{Error: err.Error()}
	}
	if !s.mailbox.Post(player, in) {
		return Ack{Error: "rejected"}
	}
	return Ack{OK: true}
}
