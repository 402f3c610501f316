// Package rotator decides which machines may display an elevated status.
//
// A machine's intrinsic status only makes it eligible. It is displayed critical or warning
// while it holds a timed override, and overrides are handed out from two small bounded
// sets that rotate as they expire. The warning set is never left empty while there is
// at least one machine to put in it.
package rotator

import (
	"slices"
	"time"

	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
	"liyu1981.xyz/factory-monitor/pkg/telemetry"
)

const (
	CriticalCapacity = 3
	WarningCapacity  = 2

	MinDwell    = 60 * time.Second
	DwellJitter = 60000 // ms, exclusive
)

type Rotator struct {
	src telemetry.Source
}

func New(src telemetry.Source) *Rotator {
	return &Rotator{src: src}
}

func (r *Rotator) hold(machineID string, now time.Time) models.TimedOverride {
	return models.TimedOverride{
		MachineID: machineID,
		Start:     now,
		Duration:  MinDwell + time.Duration(r.src.Intn(DwellJitter))*time.Millisecond,
	}
}

// Advance computes the override sets for a new snapshot. prev is not modified.
func (r *Rotator) Advance(prev models.Overrides, machines []models.Machine, now time.Time) models.Overrides {
	return models.Overrides{
		Critical: r.advanceCritical(prev.Critical, machines, now),
		Warning:  r.advanceWarning(prev.Warning, machines, now),
	}
}

func (r *Rotator) advanceCritical(prev []models.TimedOverride, machines []models.Machine, now time.Time) []models.TimedOverride {
	next := unexpired(prev, now)
	for _, m := range machines {
		if len(next) >= CriticalCapacity {
			break
		}
		if m.Status == models.StatusCritical && !isHeld(next, m.ID) {
			next = append(next, r.hold(m.ID, now))
		}
	}
	return next
}

func (r *Rotator) advanceWarning(prev []models.TimedOverride, machines []models.Machine, now time.Time) []models.TimedOverride {
	next := unexpired(prev, now)
	for _, m := range machines {
		if len(next) >= WarningCapacity {
			break
		}
		if m.Status == models.StatusWarning && !isHeld(next, m.ID) {
			next = append(next, r.hold(m.ID, now))
		}
	}

	backfilled := false
	if len(next) == 0 {
		if candidate, ok := warningCandidate(machines, next); ok {
			next = append(next, r.hold(candidate.ID, now))
			backfilled = true
		}
	}

	// the head rotated out this tick: replace it right away. Only the expired head makes
	// room; a live entry behind it is never dropped for the replacement.
	headExpired := len(prev) > 0 && prev[0].Expired(now)
	if headExpired && !backfilled && len(next) < WarningCapacity {
		if candidate, ok := warningCandidate(machines, next); ok {
			next = append(next, r.hold(candidate.ID, now))
		}
	}

	return next
}

// warningCandidate picks by priority: true warning, true normal, anything not offline, anything.
func warningCandidate(machines []models.Machine, held []models.TimedOverride) (models.Machine, bool) {
	priorities := []func(models.Machine) bool{
		func(m models.Machine) bool { return m.Status == models.StatusWarning },
		func(m models.Machine) bool { return m.Status == models.StatusNormal },
		func(m models.Machine) bool { return m.Status != models.StatusOffline },
		func(m models.Machine) bool { return true },
	}

	for _, matches := range priorities {
		candidate, ok := common.FindFirst(machines, func(m models.Machine) bool {
			return matches(m) && !isHeld(held, m.ID)
		})
		if ok {
			return candidate, true
		}
	}
	return models.Machine{}, false
}

// Apply returns a copy of machines with displayed statuses. Critical overrides win over
// warning ones; every machine without an override is shown normal, offline ones included.
func Apply(o models.Overrides, machines []models.Machine) []models.Machine {
	adjusted := make([]models.Machine, len(machines))
	for i, m := range machines {
		switch {
		case isHeld(o.Critical, m.ID):
			m.Status = models.StatusCritical
		case isHeld(o.Warning, m.ID):
			m.Status = models.StatusWarning
		default:
			m.Status = models.StatusNormal
		}
		adjusted[i] = m
	}
	return adjusted
}

func unexpired(list []models.TimedOverride, now time.Time) []models.TimedOverride {
	return common.Filter(list, func(o models.TimedOverride) bool {
		return !o.Expired(now)
	})
}

func isHeld(list []models.TimedOverride, machineID string) bool {
	return slices.ContainsFunc(list, func(o models.TimedOverride) bool {
		return o.MachineID == machineID
	})
}
