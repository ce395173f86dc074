package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagingJanitor_EvictsExpiredSelections(t *testing.T) {
	staging := NewStagingService(time.Millisecond, nil)
	staging.Start(opKey, recordParams())

	janitor, err := NewStagingJanitor(staging, 10*time.Millisecond)
	require.NoError(t, err)
	janitor.Start()
	t.Cleanup(func() { _ = janitor.Shutdown() })

	assert.Eventually(t, func() bool {
		return staging.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
