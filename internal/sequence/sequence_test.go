package sequence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorNext(t *testing.T) {
	g := NewGenerator(NewMemoryStore())
	ctx := context.Background()

	first, err := g.Next(ctx, VariableSymbol, 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025-001", first)

	second, err := g.Next(ctx, VariableSymbol, 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025-002", second)
}

func TestGeneratorCountersAreIndependent(t *testing.T) {
	g := NewGenerator(NewMemoryStore())
	ctx := context.Background()

	vs, err := g.Next(ctx, VariableSymbol, 2025)
	require.NoError(t, err)
	inv, err := g.Next(ctx, InvoiceNumber, 2025)
	require.NoError(t, err)

	assert.Equal(t, "2025-001", vs)
	assert.Equal(t, "2025-001", inv)
}

func TestGeneratorRestartsPerYear(t *testing.T) {
	g := NewGenerator(NewMemoryStore())
	ctx := context.Background()

	_, err := g.Next(ctx, VariableSymbol, 2025)
	require.NoError(t, err)
	_, err = g.Next(ctx, VariableSymbol, 2025)
	require.NoError(t, err)

	next, err := g.Next(ctx, VariableSymbol, 2026)
	require.NoError(t, err)
	assert.Equal(t, "2026-001", next)
}

func TestFormatPadding(t *testing.T) {
	assert.Equal(t, "2025-007", Format(2025, 7))
	assert.Equal(t, "2025-042", Format(2025, 42))
	assert.Equal(t, "2025-999", Format(2025, 999))
	assert.Equal(t, "2025-1000", Format(2025, 1000))
}

func TestMemoryStoreConcurrentIncrements(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const workers = 50
	seen := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, err := store.Increment(ctx, VariableSymbol, 2025)
			assert.NoError(t, err)
			seen[i] = n
		}(i)
	}
	wg.Wait()

	unique := make(map[int]bool, workers)
	for _, n := range seen {
		assert.False(t, unique[n], "value %d allocated twice", n)
		unique[n] = true
	}
	assert.Len(t, unique, workers)
}
