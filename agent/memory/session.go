// Package memory keeps per-conversation state in process memory: the message
// log, the recent window handed to agents, and the facts extracted from what
// the customer wrote. Nothing is persisted; sessions expire after an idle
// period.
package memory

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	contractx "github.com/careloop/techcare-agents/agent/contract"
)

const (
	defaultSessionTTL = time.Hour
	recentWindowSize  = 5
)

var ErrSessionNotFound = errors.New("session not found or expired")

// Message is one logged conversation turn with bookkeeping metadata.
type Message struct {
	Role      contractx.TurnRole
	Content   string
	AgentUsed contractx.AgentRole
	ToolsUsed []string
	At        time.Time
}

type session struct {
	id           string
	createdAt    time.Time
	lastActivity time.Time

	messages          []Message
	customerContext   string
	ordersDiscussed   []string
	issuesMentioned   []string
	productsDiscussed []string
}

// SessionMemory is an in-memory session store with idle expiry.
type SessionMemory struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

// Option customizes a SessionMemory.
type Option func(*SessionMemory)

// WithTTL overrides the idle expiry period.
func WithTTL(ttl time.Duration) Option {
	return func(m *SessionMemory) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithClock injects the time source. Tests use this to drive expiry.
func WithClock(now func() time.Time) Option {
	return func(m *SessionMemory) {
		if now != nil {
			m.now = now
		}
	}
}

func New(opts ...Option) *SessionMemory {
	m := &SessionMemory{
		sessions: make(map[string]*session),
		ttl:      defaultSessionTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetOrCreate returns the id of a live session, creating a fresh one when the
// id is empty, unknown, or expired.
func (m *SessionMemory) GetOrCreate(sessionID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s := m.live(sessionID); s != nil {
		return s.id
	}

	id := strings.TrimSpace(sessionID)
	if id == "" {
		id = uuid.NewString()
	}
	now := m.now()
	m.sessions[id] = &session{id: id, createdAt: now, lastActivity: now}
	return id
}

// AddMessage appends a turn to the session log and absorbs any order numbers,
// issue phrases, or product names the content mentions.
func (m *SessionMemory) AddMessage(sessionID string, role contractx.TurnRole, content string, agentUsed contractx.AgentRole, toolsUsed []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.live(sessionID)
	if s == nil {
		return ErrSessionNotFound
	}

	s.messages = append(s.messages, Message{
		Role:      role,
		Content:   content,
		AgentUsed: agentUsed,
		ToolsUsed: toolsUsed,
		At:        m.now(),
	})
	s.lastActivity = m.now()
	s.absorb(content)
	return nil
}

// SetCustomerContext replaces the free-form customer context line.
func (m *SessionMemory) SetCustomerContext(sessionID, context string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.live(sessionID)
	if s == nil {
		return ErrSessionNotFound
	}
	s.customerContext = context
	s.lastActivity = m.now()
	return nil
}

// ContextFor assembles the read-only conversation context an agent consumes.
// The recent window holds the last few turns, oldest first; expired or
// unknown sessions yield an empty context.
func (m *SessionMemory) ContextFor(sessionID string) contractx.ConversationContext {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.live(sessionID)
	if s == nil {
		return contractx.ConversationContext{}
	}

	messages := s.messages
	if len(messages) > recentWindowSize {
		messages = messages[len(messages)-recentWindowSize:]
	}
	window := make([]contractx.Turn, 0, len(messages))
	for _, msg := range messages {
		window = append(window, contractx.Turn{Role: msg.Role, Content: msg.Content})
	}

	return contractx.ConversationContext{
		CustomerContext:    s.customerContext,
		OrdersDiscussed:    append([]string(nil), s.ordersDiscussed...),
		IssuesMentioned:    append([]string(nil), s.issuesMentioned...),
		ProductsDiscussed:  append([]string(nil), s.productsDiscussed...),
		RecentConversation: window,
	}
}

// Clear drops one session. It reports whether the session existed.
func (m *SessionMemory) Clear(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return false
	}
	delete(m.sessions, sessionID)
	return true
}

// ActiveSessions lists live session ids, dropping expired ones along the way.
func (m *SessionMemory) ActiveSessions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, id)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// live returns the session when it exists and is not expired; expired
// sessions are removed on sight. Callers hold the lock.
func (m *SessionMemory) live(sessionID string) *session {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil
	}
	if m.expired(s) {
		delete(m.sessions, sessionID)
		return nil
	}
	return s
}

func (m *SessionMemory) expired(s *session) bool {
	return m.now().Sub(s.lastActivity) > m.ttl
}

var orderPattern = regexp.MustCompile(`order\s*#?(\d+)`)

var issuePhrases = []string{
	"won't turn on", "not turning on", "overheating", "slow", "wifi",
	"screen", "display", "battery", "charging", "keyboard", "trackpad",
}

var productNames = []string{
	"techbook", "laptop", "computer", "pro 15", "air 13", "gaming 17",
}

func (s *session) absorb(content string) {
	lower := strings.ToLower(content)

	for _, match := range orderPattern.FindAllStringSubmatch(lower, -1) {
		s.ordersDiscussed = appendUnique(s.ordersDiscussed, match[1])
	}
	for _, phrase := range issuePhrases {
		if strings.Contains(lower, phrase) {
			s.issuesMentioned = appendUnique(s.issuesMentioned, phrase)
		}
	}
	for _, name := range productNames {
		if strings.Contains(lower, name) {
			s.productsDiscussed = appendUnique(s.productsDiscussed, name)
		}
	}
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
