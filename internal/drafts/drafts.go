// Package drafts persists normalized resume snapshots so a preview can be
// re-opened or re-rendered later.
package drafts

import (
	"context"
	"errors"
	"time"

	"github.com/Tpupu/resume-builder/resume/model"
)

// ErrNotFound signals a missing draft.
var ErrNotFound = errors.New("draft not found")

// Draft is one saved resume snapshot.
type Draft struct {
	ID        string       `json:"id"`
	FullName  string       `json:"fullName"`
	Email     string       `json:"email"`
	Template  string       `json:"template"`
	Resume    model.Resume `json:"resume"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Repo stores drafts. Implementations: Postgres and in-memory fallback.
type Repo interface {
	Create(ctx context.Context, d Draft) error
	GetByID(ctx context.Context, id string) (Draft, error)
	ListRecent(ctx context.Context, limit int) ([]Draft, error)
}
