package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/stretchr/testify/require"
)

func TestTransientClassification(t *testing.T) {
	require.True(t, retryx.IsTransient(store.ErrConflict))
	require.True(t, retryx.IsTransient(fmt.Errorf("add xp: %w", store.ErrConflict)))
	require.True(t, retryx.IsTransient(fmt.Errorf("%w: database is locked", store.ErrUnavailable)))

	require.False(t, retryx.IsTransient(store.ErrNotFound))
	require.False(t, retryx.IsTransient(store.ErrAlreadyExists))

	require.False(t, errors.Is(store.ErrConflict, store.ErrUnavailable))
}
