package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

// FeedHub pushes newly published news posts to connected websocket clients.
// A client that fails a write is dropped; it can reconnect and refetch the
// feed over the regular endpoint.
type FeedHub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewFeedHub() *FeedHub {
	return &FeedHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

// ServeFeed godoc
// @Summary      Live news feed over websocket
// @Tags         news
// @Router       /news/feed [get]
func (h *FeedHub) ServeFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	go h.reader(ctx, conn)
}

// reader drains control frames and unregisters the connection when the
// client goes away.
func (h *FeedHub) reader(ctx context.Context, conn *websocket.Conn) {
	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()

		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "websocket read failed", "error", err)
			}

			return
		}
	}
}

// PublishPost broadcasts a freshly published post to every subscriber.
func (h *FeedHub) PublishPost(post entity.NewsPost) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(post); err != nil {
			slog.Warn("websocket write failed, dropping client", "error", err)

			delete(h.conns, conn)
			_ = conn.Close()
		}
	}
}

// Close disconnects every subscriber, used on shutdown.
func (h *FeedHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		_ = conn.Close()
	}

	h.conns = make(map[*websocket.Conn]bool)
}
