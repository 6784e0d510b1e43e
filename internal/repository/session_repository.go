package repository

import (
	"context"

	"app/internal/checkout"
)

// 買い物セッションの保管だけを約束。カートはセッション越しに永続化しない。
type SessionRepository interface {
	// 無ければ新規セッションを作って返す
	GetOrCreate(ctx context.Context, sessionID string) (*checkout.Session, error)
	Find(ctx context.Context, sessionID string) (*checkout.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
