package sequence

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStore keeps counters in the counters table. The increment relies on the
// database to serialize concurrent writers, so it is safe across processes.
type PgxStore struct {
	pool *pgxpool.Pool
}

func NewPgxStore(pool *pgxpool.Pool) *PgxStore {
	return &PgxStore{pool: pool}
}

func (s *PgxStore) Increment(ctx context.Context, name Name, year int) (int, error) {
	const q = `
		INSERT INTO counters (name, year, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (name, year)
		DO UPDATE SET value = counters.value + 1
		RETURNING value`

	var value int
	if err := s.pool.QueryRow(ctx, q, string(name), year).Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}

// MemoryStore is an in-process Store used by tests and the CLI dry runs.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (s *MemoryStore) Increment(_ context.Context, name Name, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := counterKey(name, year)
	s.values[key]++
	return s.values[key], nil
}

func counterKey(name Name, year int) string {
	return Format(year, 0) + "/" + string(name)
}
