package fleet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/factory-monitor/pkg/common"
	_ "liyu1981.xyz/factory-monitor/pkg/testing"
)

func TestScheduler_TicksImmediatelyAndOnInterval(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	s := NewScheduler(fleetObj, time.Second)
	assert.Equal(t, "@every 1s", s.Spec())

	require.NoError(t, s.Start())
	defer s.Stop(context.Background())

	first := fleetObj.Snapshot.Current()
	require.NotNil(t, first)

	assert.Eventually(t, func() bool {
		current := fleetObj.Snapshot.Current()
		return current != nil && current.Snapshot.ID != first.Snapshot.ID
	}, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_RejectsSubSecondInterval(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	s := NewScheduler(fleetObj, 100*time.Millisecond)
	assert.Error(t, s.Start())
	assert.Nil(t, fleetObj.Snapshot.Current())
}
