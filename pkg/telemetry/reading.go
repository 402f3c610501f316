package telemetry

import (
	"math"

	"liyu1981.xyz/factory-monitor/pkg/models"
)

// FaultCycle is the order in which critical machines are assigned a fault.
var FaultCycle = []models.FaultType{
	models.FaultOverheat,
	models.FaultOverload,
	models.FaultLowOil,
	models.FaultVibration,
	models.FaultPressure,
	models.FaultNoise,
}

// Warning thresholds for machines that were not forced critical.
const (
	WarnTemperatureAbove = 80.0
	WarnLoadAbove        = 85.0
	WarnOilLevelBelow    = 25.0
	WarnVibrationAbove   = 35.0
	WarnPressureBelow    = 3.0
	WarnPressureAbove    = 9.0
	WarnNoiseLevelAbove  = 100.0
)

// GenerateReading draws every field from its normal range, then forces the field
// belonging to fault (if any) into its fault band.
func GenerateReading(src Source, fault models.FaultType) models.TelemetryReading {
	reading := models.TelemetryReading{
		Temperature: float64(randInt(src, 40, 70)),
		MotorSpeed:  float64(randInt(src, 2000, 6000)),
		Pressure:    randFloat(src, 3, 7),
		Vibration:   randFloat(src, 0, 20),
		Load:        randFloat(src, 30, 70),
		Humidity:    randFloat(src, 40, 60),
		OilLevel:    randFloat(src, 60, 100),
		NoiseLevel:  randFloat(src, 60, 90),
	}

	switch fault {
	case models.FaultOverheat:
		reading.Temperature = float64(randInt(src, 86, 100))
	case models.FaultOverload:
		reading.Load = randFloat(src, 91, 100)
	case models.FaultLowOil:
		reading.OilLevel = randFloat(src, 0, 19)
	case models.FaultVibration:
		reading.Vibration = randFloat(src, 41, 50)
	case models.FaultPressure:
		if src.Float64() < 0.5 {
			reading.Pressure = randFloat(src, 0, 2)
		} else {
			reading.Pressure = randFloat(src, 11, 12)
		}
	case models.FaultNoise:
		reading.NoiseLevel = randFloat(src, 111, 120)
	}

	return reading
}

// Classify returns warning when any threshold is crossed, normal otherwise.
// It never reports critical: criticality is assigned, not measured.
func Classify(reading models.TelemetryReading) models.Status {
	if reading.Temperature > WarnTemperatureAbove ||
		reading.Load > WarnLoadAbove ||
		reading.OilLevel < WarnOilLevelBelow ||
		reading.Vibration > WarnVibrationAbove ||
		reading.Pressure < WarnPressureBelow || reading.Pressure > WarnPressureAbove ||
		reading.NoiseLevel > WarnNoiseLevelAbove {
		return models.StatusWarning
	}
	return models.StatusNormal
}

func meanTemperature(machines []models.Machine) int {
	if len(machines) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range machines {
		sum += m.Telemetry.Temperature
	}
	return int(math.Floor(sum / float64(len(machines))))
}
