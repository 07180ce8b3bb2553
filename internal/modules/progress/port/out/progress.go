package out

import "context"

const (
	KeyStreak          = "streak"
	KeyDailySaveWindow = "dailySaveWindow"
	KeyPlacementGrid   = "placementGrid"
)

// Keys lists every cell the engine owns, in write order.
var Keys = []string{KeyDailySaveWindow, KeyPlacementGrid, KeyStreak}

// PersistentStore is durable key-value storage. Each key is an independent
// cell; failures wrap apperrors.ErrStorage.
type PersistentStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}
