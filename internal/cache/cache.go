// Package cache memoizes computed moves for the strong difficulty tier.
// The strong tier is deterministic, so a position seen once always gets
// the same answer; the weak and moderate tiers are never cached.
package cache

import (
	"context"
	"fmt"

	"github.com/connect4/server/internal/game"
)

// MoveCache stores a computed column per position. Implementations must
// treat failures as misses; a cache problem must never reach the player.
type MoveCache interface {
	Get(ctx context.Context, key string) (int, bool)
	Set(ctx context.Context, key string, column int)
	Close() error
}

// MoveKey builds the cache key for a position: win length and search
// depth (processes with different settings may share one Redis), side
// to move, and the flat board serialization.
func MoveKey(e *game.Engine, state game.State) string {
	return fmt.Sprintf("move:w%d:d%d:%d:%s", e.WinLength, e.MaxDepth, state.CurrentPlayer, state.Board.Key())
}

// Noop is the cache used when Redis is not configured.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) (int, bool) { return 0, false }

func (Noop) Set(ctx context.Context, key string, column int) {}

func (Noop) Close() error { return nil }
