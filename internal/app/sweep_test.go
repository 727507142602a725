package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

func TestSweepRashis_CollectsEveryKeyInOrder(t *testing.T) {
	results := SweepRashis(context.Background(), 3, func(_ context.Context, key domain.RashiKey) (int, error) {
		return key.SignNumber(), nil
	})

	require.Len(t, results, 12)

	for i, r := range results {
		assert.Equal(t, domain.RashiKeys()[i], r.Key)
		assert.Equal(t, i+1, r.Value)
		assert.NoError(t, r.Err)
	}

	assert.Empty(t, Failed(results))
}

func TestSweepRashis_FailureDoesNotStopOthers(t *testing.T) {
	boom := errors.New("boom")

	var calls atomic.Int32

	results := SweepRashis(context.Background(), 0, func(_ context.Context, key domain.RashiKey) (string, error) {
		calls.Add(1)

		if key == domain.Karka {
			return "", boom
		}

		return string(key), nil
	})

	assert.Equal(t, int32(12), calls.Load())

	failed := Failed(results)
	require.Len(t, failed, 1)
	assert.Equal(t, domain.Karka, failed[0].Key)
	assert.ErrorIs(t, failed[0].Err, boom)
}

func TestSweepRashis_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	SweepRashis(context.Background(), 2, func(context.Context, domain.RashiKey) (struct{}, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)

		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}

		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(2))
}
