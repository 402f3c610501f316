package rotator

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/factory-monitor/pkg/models"
	"liyu1981.xyz/factory-monitor/pkg/telemetry"
)

// fixedSource makes every dwell MinDwell + jitter.
type fixedSource struct {
	jitter int
}

func (s fixedSource) Intn(n int) int {
	if s.jitter >= n {
		return n - 1
	}
	return s.jitter
}

func (s fixedSource) Float64() float64 { return 0 }

func fleet(statuses ...models.Status) []models.Machine {
	machines := make([]models.Machine, len(statuses))
	for i, s := range statuses {
		machines[i] = models.Machine{ID: fmt.Sprintf("m%d", i), Name: fmt.Sprintf("machine %d", i), Status: s}
	}
	return machines
}

func ids(list []models.TimedOverride) []string {
	out := make([]string, len(list))
	for i, o := range list {
		out[i] = o.MachineID
	}
	return out
}

var t0 = time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

func TestAdvance_CriticalCapacity(t *testing.T) {
	r := New(fixedSource{jitter: 0})
	machines := fleet(
		models.StatusCritical, models.StatusCritical, models.StatusCritical,
		models.StatusCritical, models.StatusCritical, models.StatusNormal,
	)

	o := r.Advance(models.Overrides{}, machines, t0)
	assert.Equal(t, []string{"m0", "m1", "m2"}, ids(o.Critical))
	for _, held := range o.Critical {
		assert.Equal(t, t0, held.Start)
		assert.Equal(t, MinDwell, held.Duration)
	}
}

func TestAdvance_DwellRange(t *testing.T) {
	r := New(telemetry.NewSource(99))
	machines := fleet(models.StatusCritical, models.StatusWarning, models.StatusNormal)

	for i := 0; i < 200; i++ {
		o := r.Advance(models.Overrides{}, machines, t0.Add(time.Duration(i)*time.Hour))
		for _, held := range append(o.Critical, o.Warning...) {
			assert.GreaterOrEqual(t, held.Duration, 60*time.Second)
			assert.Less(t, held.Duration, 120*time.Second)
		}
	}

	longest := New(fixedSource{jitter: DwellJitter}).hold("x", t0)
	assert.Equal(t, 60*time.Second+59999*time.Millisecond, longest.Duration)
}

func TestAdvance_ExpiryIsExact(t *testing.T) {
	r := New(fixedSource{jitter: 0})
	machines := fleet(models.StatusNormal, models.StatusNormal, models.StatusNormal, models.StatusNormal)

	prev := models.Overrides{
		Critical: []models.TimedOverride{{MachineID: "m2", Start: t0, Duration: 90 * time.Second}},
		Warning:  []models.TimedOverride{{MachineID: "m3", Start: t0, Duration: 90 * time.Second}},
	}

	early := r.Advance(prev, machines, t0.Add(90*time.Second-time.Millisecond))
	assert.Equal(t, []string{"m2"}, ids(early.Critical))
	assert.Equal(t, []string{"m3"}, ids(early.Warning[:1]))

	onTime := r.Advance(prev, machines, t0.Add(90*time.Second))
	assert.Empty(t, onTime.Critical)
	assert.NotContains(t, ids(onTime.Warning), "m3")
}

func TestAdvance_NewCriticalWaitsForCapacity(t *testing.T) {
	r := New(fixedSource{jitter: 0})
	prev := models.Overrides{
		Critical: []models.TimedOverride{
			{MachineID: "m0", Start: t0, Duration: 61 * time.Second},
			{MachineID: "m1", Start: t0, Duration: 90 * time.Second},
			{MachineID: "m2", Start: t0, Duration: 90 * time.Second},
		},
	}
	machines := fleet(
		models.StatusNormal, models.StatusNormal, models.StatusNormal,
		models.StatusCritical, models.StatusCritical,
	)

	full := r.Advance(prev, machines, t0.Add(30*time.Second))
	assert.Equal(t, []string{"m0", "m1", "m2"}, ids(full.Critical))

	freed := r.Advance(full, machines, t0.Add(61*time.Second))
	assert.Equal(t, []string{"m1", "m2", "m3"}, ids(freed.Critical))
	assert.Equal(t, t0.Add(61*time.Second), freed.Critical[2].Start)
}

func TestAdvance_WarningAdmitsTrueWarningsFirst(t *testing.T) {
	r := New(fixedSource{jitter: 0})
	machines := fleet(
		models.StatusNormal, models.StatusWarning, models.StatusCritical,
		models.StatusWarning, models.StatusWarning,
	)

	o := r.Advance(models.Overrides{}, machines, t0)
	assert.Equal(t, []string{"m1", "m3"}, ids(o.Warning))
}

func TestAdvance_WarningBackfillPriority(t *testing.T) {
	r := New(fixedSource{jitter: 0})

	cases := []struct {
		name     string
		machines []models.Machine
		want     string
	}{
		{"normal before critical", fleet(models.StatusCritical, models.StatusOffline, models.StatusNormal), "m2"},
		{"non-offline before offline", fleet(models.StatusOffline, models.StatusCritical), "m1"},
		{"first machine when all offline", fleet(models.StatusOffline, models.StatusOffline), "m0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := r.Advance(models.Overrides{}, c.machines, t0)
			assert.Equal(t, []string{c.want}, ids(o.Warning))
		})
	}
}

func TestAdvance_WarningHolderShadowedByCritical(t *testing.T) {
	r := New(fixedSource{jitter: 0})
	machines := fleet(models.StatusCritical, models.StatusOffline)

	o := r.Advance(models.Overrides{}, machines, t0)
	assert.Equal(t, []string{"m0"}, ids(o.Critical))
	assert.Equal(t, []string{"m0"}, ids(o.Warning), "the warning set is still filled")

	adjusted := Apply(o, machines)
	assert.Equal(t, models.StatusCritical, adjusted[0].Status)
	assert.Equal(t, models.StatusNormal, adjusted[1].Status)
	for _, m := range adjusted {
		assert.NotEqual(t, models.StatusWarning, m.Status, "no machine shows warning")
	}
}

func TestAdvance_HeadExpiryKeepsLiveEntry(t *testing.T) {
	r := New(fixedSource{jitter: 0})
	machines := fleet(models.StatusNormal, models.StatusNormal, models.StatusNormal)

	prev := models.Overrides{
		Warning: []models.TimedOverride{
			{MachineID: "m0", Start: t0, Duration: 60 * time.Second},
			{MachineID: "m1", Start: t0, Duration: 100 * time.Second},
		},
	}

	o := r.Advance(prev, machines, t0.Add(60*time.Second))
	require.Len(t, o.Warning, 2)
	assert.Equal(t, prev.Warning[1], o.Warning[0], "live entry survives untouched")
	assert.Equal(t, t0.Add(60*time.Second), o.Warning[1].Start)
}

func TestAdvance_EmptyRoster(t *testing.T) {
	r := New(fixedSource{jitter: 0})
	o := r.Advance(models.Overrides{}, nil, t0)
	assert.Empty(t, o.Critical)
	assert.Empty(t, o.Warning)
}

func TestAdvance_SingleWarningExpiresAndIsReplacedSameTick(t *testing.T) {
	r := New(fixedSource{jitter: 0})
	machines := fleet(models.StatusNormal, models.StatusNormal, models.StatusNormal)

	prev := models.Overrides{
		Warning: []models.TimedOverride{{MachineID: "m1", Start: t0, Duration: 60 * time.Second}},
	}

	now := t0.Add(60 * time.Second)
	o := r.Advance(prev, machines, now)
	require.Len(t, o.Warning, 1)
	assert.Equal(t, now, o.Warning[0].Start)
	assert.Equal(t, "m0", o.Warning[0].MachineID)
}

func TestAdvance_HeadExpiryBackfillsExcludingHeld(t *testing.T) {
	r := New(fixedSource{jitter: 0})
	machines := fleet(models.StatusNormal, models.StatusNormal, models.StatusNormal)

	prev := models.Overrides{
		Warning: []models.TimedOverride{
			{MachineID: "m0", Start: t0, Duration: 60 * time.Second},
			{MachineID: "m1", Start: t0, Duration: 100 * time.Second},
		},
	}

	o := r.Advance(prev, machines, t0.Add(70*time.Second))
	assert.Equal(t, []string{"m1", "m0"}, ids(o.Warning))
	assert.Equal(t, t0.Add(70*time.Second), o.Warning[1].Start)

	// m0 is still held so the replacement skips it
	prev.Warning[1].MachineID = "m0"
	prev.Warning[0].MachineID = "m2"
	o = r.Advance(prev, machines, t0.Add(70*time.Second))
	assert.Equal(t, []string{"m0", "m1"}, ids(o.Warning))
}

func TestAdvance_BoundsAcrossTicks(t *testing.T) {
	src := telemetry.NewSource(2026)
	gen := telemetry.NewGenerator(src, telemetry.GeneratorOpts{})
	r := New(src)

	var o models.Overrides
	now := t0
	for i := 0; i < 500; i++ {
		snapshot := gen.Generate(now)
		next := r.Advance(o, snapshot.Machines, now)

		assert.LessOrEqual(t, len(next.Critical), CriticalCapacity)
		assert.GreaterOrEqual(t, len(next.Warning), 1)
		assert.LessOrEqual(t, len(next.Warning), WarningCapacity)

		// nothing still in force was dropped
		for _, held := range append(o.Critical, o.Warning...) {
			if !held.Expired(now) {
				assert.True(t, isHeld(next.Critical, held.MachineID) || isHeld(next.Warning, held.MachineID),
					"%s dropped before expiry", held.MachineID)
			}
		}
		// nothing expired survived
		for _, held := range append(next.Critical, next.Warning...) {
			assert.False(t, held.Expired(now))
		}

		o = next
		now = now.Add(10 * time.Second)
	}
}

func TestAdvance_Idempotent(t *testing.T) {
	src := telemetry.NewSource(17)
	gen := telemetry.NewGenerator(src, telemetry.GeneratorOpts{})
	r := New(src)

	var o models.Overrides
	now := t0
	for i := 0; i < 50; i++ {
		snapshot := gen.Generate(now)
		once := r.Advance(o, snapshot.Machines, now)
		twice := r.Advance(once, snapshot.Machines, now)

		assert.Equal(t, once, twice)
		assert.Equal(t, Apply(once, snapshot.Machines), Apply(twice, snapshot.Machines))

		o = once
		now = now.Add(10 * time.Second)
	}
}

func TestApply(t *testing.T) {
	machines := fleet(
		models.StatusCritical, models.StatusWarning, models.StatusNormal,
		models.StatusOffline, models.StatusCritical,
	)
	o := models.Overrides{
		Critical: []models.TimedOverride{{MachineID: "m0"}, {MachineID: "m2"}},
		Warning:  []models.TimedOverride{{MachineID: "m2"}, {MachineID: "m1"}},
	}

	adjusted := Apply(o, machines)
	require.Len(t, adjusted, 5)
	assert.Equal(t, models.StatusCritical, adjusted[0].Status)
	assert.Equal(t, models.StatusWarning, adjusted[1].Status)
	assert.Equal(t, models.StatusCritical, adjusted[2].Status, "critical takes precedence")
	assert.Equal(t, models.StatusNormal, adjusted[3].Status, "offline is coerced when not held")
	assert.Equal(t, models.StatusNormal, adjusted[4].Status, "critical without override is shown normal")

	// input untouched
	assert.Equal(t, models.StatusOffline, machines[3].Status)
	assert.Equal(t, models.StatusCritical, machines[4].Status)
}
