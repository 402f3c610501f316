package telemetry

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"liyu1981.xyz/factory-monitor/pkg/alerting"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

const (
	DefaultCriticalCount = 3
	TrendPoints          = 12
	TrendSpacing         = 5 * time.Minute
)

type Generator struct {
	src           Source
	roster        []string
	criticalCount int
}

type GeneratorOpts struct {
	Roster        []string
	CriticalCount *int
}

func NewGenerator(src Source, opts GeneratorOpts) *Generator {
	g := &Generator{
		src:           src,
		roster:        DefaultRoster,
		criticalCount: DefaultCriticalCount,
	}
	if opts.Roster != nil {
		g.roster = opts.Roster
	}
	if opts.CriticalCount != nil {
		g.criticalCount = *opts.CriticalCount
	}
	if g.criticalCount > len(g.roster) {
		g.criticalCount = len(g.roster)
	}
	if g.criticalCount < 0 {
		g.criticalCount = 0
	}
	return g
}

func (g *Generator) Roster() []string {
	return slices.Clone(g.roster)
}

// Generate builds a complete snapshot. It keeps no state between calls.
func (g *Generator) Generate(now time.Time) models.FleetSnapshot {
	machines := g.generateMachines()

	return models.FleetSnapshot{
		ID:          uuid.NewString(),
		GeneratedAt: now,
		Machines:    machines,
		Telemetry:   GenerateReading(g.src, models.FaultNone),
		Alerts:      alerting.DeriveAlerts(machines, now),
		KPIs:        g.generateKPIs(machines),
		Trends:      g.generateTrends(now),
	}
}

// pickCritical returns distinct roster indices in the order they were drawn.
func (g *Generator) pickCritical() []int {
	picked := make([]int, 0, g.criticalCount)
	for len(picked) < g.criticalCount {
		idx := g.src.Intn(len(g.roster))
		if !slices.Contains(picked, idx) {
			picked = append(picked, idx)
		}
	}
	return picked
}

func (g *Generator) generateMachines() []models.Machine {
	critical := g.pickCritical()

	machines := make([]models.Machine, len(g.roster))
	for i, name := range g.roster {
		machine := models.Machine{
			ID:       MachineID(name),
			Name:     name,
			Position: MachinePosition(i),
		}

		if rank := slices.Index(critical, i); rank >= 0 {
			machine.Telemetry = GenerateReading(g.src, FaultCycle[rank%len(FaultCycle)])
			machine.Status = models.StatusCritical
		} else {
			machine.Telemetry = GenerateReading(g.src, models.FaultNone)
			machine.Status = Classify(machine.Telemetry)
		}

		machines[i] = machine
	}
	return machines
}

func (g *Generator) generateKPIs(machines []models.Machine) models.KPIData {
	kpis := models.KPIData{
		TotalMachines:  len(machines),
		AvgTemperature: meanTemperature(machines),
	}
	for _, m := range machines {
		switch m.Status {
		case models.StatusCritical:
			kpis.CriticalStatus++
		case models.StatusWarning:
			kpis.WarningStatus++
		}
	}

	// presentation figures, intentionally not derived from telemetry
	kpis.AvgLoad = randInt(g.src, 75, 85)
	kpis.AvgVibration = randInt(g.src, 3, 6)
	kpis.EnergyConsumption = randInt(g.src, 450, 650)

	return kpis
}

func (g *Generator) trendPoints(now time.Time, base, variance float64) []models.TrendPoint {
	points := make([]models.TrendPoint, TrendPoints)
	for i := 0; i < TrendPoints; i++ {
		at := now.Add(-time.Duration(i) * TrendSpacing)
		points[i] = models.TrendPoint{
			Time:      at.Format("15:04"),
			Timestamp: at,
			Value:     base + math.Floor(g.src.Float64()*variance) - variance/2,
		}
	}
	return points
}

func (g *Generator) generateTrends(now time.Time) models.TrendData {
	return models.TrendData{
		Temperature: g.trendPoints(now, 75, 20),
		RPM:         g.trendPoints(now, 2400, 400),
		Vibration:   g.trendPoints(now, 5, 4),
		Load:        g.trendPoints(now, 80, 30),
	}
}
