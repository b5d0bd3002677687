package intake

import (
	"context"
	"sync"
	"time"

	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type Stage int

const (
	StageIdle Stage = iota
	StageAwaitRegistration
	StageAwaitCategory
	StageAwaitDescription
)

const maxPendingMedia = 5

type PendingMedia struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Session is the per-sender conversation state. Values returned by the store
// are copies.
type Session struct {
	Stage        Stage
	Category     vo.Category
	PendingMedia []PendingMedia
	LastTicketID uint
	LastTicketAt time.Time
}

// MessageDeduplicator records inbound message ids across instances.
// FirstSeen reports true only for the first caller with a given id.
type MessageDeduplicator interface {
	FirstSeen(ctx context.Context, messageID string, ttl time.Duration) (bool, error)
}

type senderLock struct {
	mu   sync.Mutex
	refs int
}

type lastMessage struct {
	text string
	at   time.Time
}

// StateStore owns all mutable intake state shared between webhook workers.
type StateStore struct {
	mu       sync.Mutex
	seen     map[string]time.Time
	last     map[string]lastMessage
	timers   map[string]*time.Timer
	sessions map[string]Session
	locks    map[string]*senderLock

	dedup   MessageDeduplicator
	seenTTL time.Duration
	logger  logger.Interface
}

// NewStateStore creates a store. dedup may be nil, in which case message ids
// are only tracked in process.
func NewStateStore(dedup MessageDeduplicator, seenTTL time.Duration, log logger.Interface) *StateStore {
	if seenTTL <= 0 {
		seenTTL = 24 * time.Hour
	}
	return &StateStore{
		seen:     make(map[string]time.Time),
		last:     make(map[string]lastMessage),
		timers:   make(map[string]*time.Timer),
		sessions: make(map[string]Session),
		locks:    make(map[string]*senderLock),
		dedup:    dedup,
		seenTTL:  seenTTL,
		logger:   log,
	}
}

// MarkSeen reports whether messageID is new. Redis errors fall back to the
// in-process set.
func (s *StateStore) MarkSeen(ctx context.Context, messageID string, now time.Time) bool {
	if s.dedup != nil {
		first, err := s.dedup.FirstSeen(ctx, messageID, s.seenTTL)
		if err == nil {
			return first
		}
		s.logger.Warnw("message dedup unavailable, using local set", "message_id", messageID, "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[messageID]; ok {
		return false
	}
	s.seen[messageID] = now
	if len(s.seen) > 4096 {
		for id, at := range s.seen {
			if now.Sub(at) > s.seenTTL {
				delete(s.seen, id)
			}
		}
	}
	return true
}

// IsRepeat reports whether sender sent the same text within window, and
// records text as the sender's latest message.
func (s *StateStore) IsRepeat(sender, text string, now time.Time, window time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.last[sender]
	s.last[sender] = lastMessage{text: text, at: now}
	return ok && prev.text == text && now.Sub(prev.at) < window
}

// LockSender serialises conversation steps for one sender and returns the
// release func. Different senders never wait on each other.
func (s *StateStore) LockSender(sender string) (unlock func()) {
	s.mu.Lock()
	l, ok := s.locks[sender]
	if !ok {
		l = &senderLock{}
		s.locks[sender] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, sender)
		}
		s.mu.Unlock()
	}
}

func (s *StateStore) Session(sender string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[sender]
	sess.PendingMedia = append([]PendingMedia(nil), sess.PendingMedia...)
	return sess
}

func (s *StateStore) SetSession(sender string, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sender] = sess
}

// AddPendingMedia buffers an attachment for the next ticket. It returns false
// when the buffer is full.
func (s *StateStore) AddPendingMedia(sender string, m PendingMedia) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[sender]
	if len(sess.PendingMedia) >= maxPendingMedia {
		return false
	}
	sess.PendingMedia = append(sess.PendingMedia, m)
	s.sessions[sender] = sess
	return true
}

// ArmTimer replaces any pending timer for sender with one that runs fn after d.
func (s *StateStore) ArmTimer(sender string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[sender]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		current := s.timers[sender] == t
		if current {
			delete(s.timers, sender)
		}
		s.mu.Unlock()
		if current {
			fn()
		}
	})
	s.timers[sender] = t
}

// CancelTimer stops the pending timer for sender, if any.
func (s *StateStore) CancelTimer(sender string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[sender]; ok {
		t.Stop()
		delete(s.timers, sender)
	}
}

// ResetIf puts sender back to idle when the session is still at stage with
// category. It reports whether a reset happened.
func (s *StateStore) ResetIf(sender string, stage Stage, category vo.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sender]
	if !ok || sess.Stage != stage || sess.Category != category {
		return false
	}
	sess.Stage = StageIdle
	sess.Category = ""
	sess.PendingMedia = nil
	s.sessions[sender] = sess
	return true
}

// Close stops every pending timer.
func (s *StateStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sender, t := range s.timers {
		t.Stop()
		delete(s.timers, sender)
	}
}
