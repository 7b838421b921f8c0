package api

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pageza/recipe-rover/backend/internal/middleware"
	"github.com/pageza/recipe-rover/backend/internal/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 16
)

// Live message types.
const (
	MessageSearch  = "search"
	MessageFlush   = "flush"
	MessageCancel  = "cancel"
	MessagePing    = "ping"
	MessagePong    = "pong"
	MessageResults = "results"
	MessageError   = "error"
)

// LiveMessage is sent by the browser on every keystroke.
type LiveMessage struct {
	Type string `json:"type"`
	Term string `json:"term,omitempty"`
}

// LiveEvent is pushed to the browser. Results events carry the first page of
// the recomputed list.
type LiveEvent struct {
	Type   string `json:"type"`
	Search string `json:"search,omitempty"`
	Active bool   `json:"active,omitempty"`
	Error  string `json:"error,omitempty"`
	*Page
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		h.log.Warn().Msg("websocket connection rejected: missing Origin header")
		return false
	}
	if slices.Contains(h.opts.AllowedOrigins, "*") || slices.Contains(h.opts.AllowedOrigins, origin) {
		return true
	}
	h.log.Warn().Str("origin", origin).Msg("websocket connection rejected from unauthorized origin")
	return false
}

// Live upgrades to a websocket that debounces search keystrokes and pushes
// results whenever the session recomputes.
func (h *Handler) Live(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// The upgrader has already written the error response.
		h.log.Debug().Err(err).Str("session", sess.ID).Msg("websocket upgrade failed")
		return
	}

	client := &liveClient{
		h:       h,
		sess:    sess,
		conn:    conn,
		ctx:     c.Request.Context(),
		premium: middleware.IsPremium(c),
		send:    make(chan LiveEvent, sendBuffer),
		done:    make(chan struct{}),
	}
	client.run()
}

type liveClient struct {
	h       *Handler
	sess    *session.Session
	conn    *websocket.Conn
	ctx     context.Context
	premium bool
	send    chan LiveEvent
	done    chan struct{}
}

func (lc *liveClient) run() {
	unsubscribe := lc.sess.Subscribe(func(snap session.Snapshot) {
		lc.push(lc.results(snap))
	})
	defer func() {
		unsubscribe()
		close(lc.done)
	}()

	go lc.writePump()
	lc.push(lc.results(lc.sess.Snapshot()))
	lc.readPump()
}

func (lc *liveClient) results(snap session.Snapshot) LiveEvent {
	page := lc.h.page(lc.ctx, snap.Results, lc.premium, 1, lc.h.opts.PageSize)
	return LiveEvent{
		Type:   MessageResults,
		Search: snap.State.Search,
		Active: snap.State.Active(),
		Page:   &page,
	}
}

// push never blocks the session; a slow reader misses intermediate results.
func (lc *liveClient) push(ev LiveEvent) {
	select {
	case lc.send <- ev:
	default:
		lc.h.log.Debug().Str("session", lc.sess.ID).Str("type", ev.Type).Msg("live event dropped")
	}
}

func (lc *liveClient) readPump() {
	defer func() {
		_ = lc.conn.Close()
	}()

	lc.conn.SetReadLimit(maxMessageSize)
	if err := lc.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		lc.h.log.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	lc.conn.SetPongHandler(func(string) error {
		return lc.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg LiveMessage
		if err := lc.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				lc.h.log.Error().Err(err).Str("session", lc.sess.ID).Msg("unexpected websocket close error")
			}
			return
		}

		switch msg.Type {
		case MessageSearch:
			lc.sess.QueueSearch(msg.Term)
		case MessageFlush:
			lc.sess.FlushSearch()
		case MessageCancel:
			lc.sess.CancelSearch()
		case MessagePing:
			lc.sess.Touch()
			lc.push(LiveEvent{Type: MessagePong})
		default:
			lc.push(LiveEvent{Type: MessageError, Error: "unknown message type " + msg.Type})
		}
	}
}

func (lc *liveClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = lc.conn.Close()
	}()

	for {
		select {
		case <-lc.done:
			_ = lc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = lc.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case ev := <-lc.send:
			if err := lc.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				lc.h.log.Error().Err(err).Msg("failed to set write deadline")
				return
			}
			if err := lc.conn.WriteJSON(ev); err != nil {
				lc.h.log.Debug().Err(err).Msg("failed to write live event")
				return
			}

		case <-ticker.C:
			if err := lc.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				lc.h.log.Error().Err(err).Msg("failed to set write deadline for ping")
				return
			}
			if err := lc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
