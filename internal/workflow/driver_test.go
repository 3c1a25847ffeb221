package workflow_test

import (
	"context"
	"testing"

	"github.com/publab/publication-service/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterate_AlreadyDone(t *testing.T) {
	nextCalls := 0
	next := func(n int) []workflow.Transition[int] {
		nextCalls++
		return nil
	}
	var observed []int

	result := workflow.Iterate(context.Background(),
		next,
		func(n int) bool { return n >= 10 },
		func(n int) { observed = append(observed, n) },
		42)

	assert.Equal(t, 42, result)
	assert.Zero(t, nextCalls, "a finished value must not schedule work")
	assert.Empty(t, observed)
}

func TestIterate_FoldsSequentially(t *testing.T) {
	// each round contributes two transitions; the second must see the
	// first's output, and every intermediate value must be observed in order
	next := func(n int) []workflow.Transition[int] {
		return []workflow.Transition[int]{
			func(_ context.Context, current int) int { return current * 10 },
			func(_ context.Context, current int) int { return current + 1 },
		}
	}
	var observed []int

	result := workflow.Iterate(context.Background(),
		next,
		func(n int) bool { return n > 100 },
		func(n int) { observed = append(observed, n) },
		1)

	assert.Equal(t, 111, result)
	assert.Equal(t, []int{10, 11, 110, 111}, observed)
}

func TestIterate_NilObserve(t *testing.T) {
	next := func(n int) []workflow.Transition[int] {
		return []workflow.Transition[int]{
			func(_ context.Context, current int) int { return current + 1 },
		}
	}

	result := workflow.Iterate(context.Background(), next, func(n int) bool { return n >= 3 }, nil, 0)
	require.Equal(t, 3, result)
}
