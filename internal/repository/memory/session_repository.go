// Package memory holds an in-process SessionRepository used when no database
// is configured (local development) and by unit tests. Semantics mirror the
// gorm implementation, including per-user write exclusivity.
package memory

import (
	"context"
	"sync"
	"time"

	"survey-interview-be/internal/entity"
	"survey-interview-be/internal/repository/contract"
	"survey-interview-be/pkg/transcript"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	// Sessions never expire: this store is authoritative while the process
	// lives, not a TTL cache.
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository() contract.SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
		locks: make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex for a single user id, creating it on first use.
// Locking is keyed per user so writes on different users never serialize.
func (r *SessionRepository) userLock(userId string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.locks[userId]; ok {
		return l
	}
	l := &sync.Mutex{}
	r.locks[userId] = l
	return l
}

func (r *SessionRepository) get(userId string) *entity.UserSession {
	if x, found := r.cache.Get(userId); found {
		session := x.(entity.UserSession)
		return &session
	}
	return nil
}

func (r *SessionRepository) put(session *entity.UserSession) {
	r.cache.Set(session.UserId, *session, cache.NoExpiration)
}

func (r *SessionRepository) FindByUserId(_ context.Context, userId string) (*entity.UserSession, error) {
	return r.get(userId), nil
}

func (r *SessionRepository) UpsertSurveyResult(_ context.Context, result *entity.SurveyResult) error {
	lock := r.userLock(result.UserId)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()
	session := r.get(result.UserId)
	if session == nil {
		session = &entity.UserSession{
			Id:        uuid.New(),
			UserId:    result.UserId,
			CreatedAt: now,
		}
		if result.FormId != "" {
			session.FormId = &result.FormId
		}
		if result.FormToken != "" {
			session.FormToken = &result.FormToken
		}
		if result.EventId != "" {
			session.EventId = &result.EventId
		}
	}

	session.SurveyStatus = result.SurveyStatus
	if result.Segment != "" {
		segment := result.Segment
		session.Segment = &segment
	}
	session.SubmittedAt = result.SubmittedAt
	session.UpdatedAt = now

	r.put(session)
	return nil
}

func (r *SessionRepository) BindConversation(_ context.Context, userId, conversationId string) error {
	lock := r.userLock(userId)
	lock.Lock()
	defer lock.Unlock()

	session := r.get(userId)
	if session == nil {
		return entity.ErrSessionNotFound
	}

	session.ConversationId = &conversationId
	session.UpdatedAt = time.Now()
	r.put(session)
	return nil
}

func (r *SessionRepository) AppendTranscript(_ context.Context, userId, fragment string) (string, error) {
	lock := r.userLock(userId)
	lock.Lock()
	defer lock.Unlock()

	session := r.get(userId)
	if session == nil {
		return "", entity.ErrSessionNotFound
	}

	existing := ""
	if session.Transcript != nil {
		existing = *session.Transcript
	}
	merged := transcript.Merge(existing, fragment)

	session.Transcript = &merged
	session.ConversationId = nil
	session.UpdatedAt = time.Now()
	r.put(session)

	return merged, nil
}
