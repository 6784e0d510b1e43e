package session

import (
	"context"
	"sync"
	"time"

	"app/internal/checkout"
	repo "app/internal/repository"
)

// メモリ上のセッション保管。カートはプロセスを跨いで永続化しない。
// 各セッションは単一クライアントが占有する前提（カート内の排他は不要）。
// mapへのアクセスだけロックで守る。
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*checkout.Session
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*checkout.Session),
		ttl:      ttl,
	}
}

func (s *MemoryStore) GetOrCreate(ctx context.Context, sessionID string) (*checkout.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}

	sess := checkout.NewSession(sessionID)
	s.sessions[sessionID] = sess
	return sess, nil
}

func (s *MemoryStore) Find(ctx context.Context, sessionID string) (*checkout.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// 期限切れセッションの掃除（呼び出し側でロック済み）。
func (s *MemoryStore) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
