package notification

import (
	"auction-engine/internal/models"
	"auction-engine/utils"
	"sync"
)

// sessionBuffer bounds how many undelivered notifications a live session may
// queue before broadcasts to it are dropped. Dropped pushes are harmless: the
// store remains the record of truth and reconnecting clients catch up from it.
const sessionBuffer = 16

// Session is one live delivery channel for one connected client. A user may
// hold several concurrent sessions.
type Session struct {
	userID string
	ch     chan models.Notification
	hub    *Hub
	once   sync.Once
}

// Notifications returns the session's receive channel. It is closed when the
// session is unsubscribed or the hub shuts down.
func (s *Session) Notifications() <-chan models.Notification {
	return s.ch
}

// Close detaches the session from the hub and closes its channel.
func (s *Session) Close() {
	s.hub.unsubscribe(s)
}

// Hub is an in-process registry of live sessions keyed by user id. It holds
// no durable state: the registry is wiped on process restart and clients must
// reopen their channels and catch up from the store.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*Session]struct{}
}

// NewHub creates a new, empty Hub. Each test creates its own instance; there
// is no ambient singleton.
func NewHub() *Hub {
	return &Hub{sessions: make(map[string]map[*Session]struct{})}
}

// Subscribe opens a live session for the user.
func (h *Hub) Subscribe(userID string) *Session {
	s := &Session{
		userID: userID,
		ch:     make(chan models.Notification, sessionBuffer),
		hub:    h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sessions[userID] == nil {
		h.sessions[userID] = make(map[*Session]struct{})
	}
	h.sessions[userID][s] = struct{}{}
	return s
}

func (h *Hub) unsubscribe(s *Session) {
	h.mu.Lock()
	set, ok := h.sessions[s.userID]
	if ok {
		delete(set, s)
		if len(set) == 0 {
			delete(h.sessions, s.userID)
		}
	}
	h.mu.Unlock()

	if ok {
		s.once.Do(func() { close(s.ch) })
	}
}

// Broadcast delivers a notification to every open session for the user and
// returns how many sessions received it. No open session is not an error.
// A full session buffer drops the push rather than blocking settlement.
func (h *Hub) Broadcast(userID string, n models.Notification) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for s := range h.sessions[userID] {
		select {
		case s.ch <- n:
			delivered++
		default:
			utils.Warn("hub: session buffer full, dropping push", map[string]any{
				"user_id":    userID,
				"auction_id": n.AuctionID,
			})
		}
	}
	return delivered
}

// Sessions reports how many live sessions the user currently holds.
func (h *Hub) Sessions(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[userID])
}

// CloseAll closes every live session, as on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	all := h.sessions
	h.sessions = make(map[string]map[*Session]struct{})
	h.mu.Unlock()

	for _, set := range all {
		for s := range set {
			s.once.Do(func() { close(s.ch) })
		}
	}
}
