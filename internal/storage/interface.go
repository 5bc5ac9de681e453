package storage

import (
	"context"

	"github.com/mcoot/frogfen/internal/model"
)

// Storage defines the interface for game session persistence. Sessions are
// ephemeral: implementations may expire them.
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)
	GetSessionsForSeed(ctx context.Context, seed string) ([]*model.Session, error)

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
