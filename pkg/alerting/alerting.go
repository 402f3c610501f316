// Package alerting turns displayed machine statuses into operator alerts.
package alerting

import (
	"fmt"
	"strings"
	"time"

	"liyu1981.xyz/factory-monitor/pkg/models"
)

var faultMessages = map[models.FaultType]string{
	models.FaultOverheat:  "Motor is overheating",
	models.FaultOverload:  "Load exceeds safe threshold",
	models.FaultLowOil:    "Oil level critically low",
	models.FaultVibration: "Joints vibrating abnormally",
	models.FaultPressure:  "Hydraulic pressure unstable",
	models.FaultNoise:     "Noise levels exceed safety threshold",
}

// MessageFor tests the fault conditions in priority order and returns the first that holds.
// A reading that satisfies none yields FaultNone and an empty message.
func MessageFor(reading models.TelemetryReading) (models.FaultType, string) {
	var fault models.FaultType
	switch {
	case reading.Temperature > 85:
		fault = models.FaultOverheat
	case reading.Load > 90:
		fault = models.FaultOverload
	case reading.OilLevel < 20:
		fault = models.FaultLowOil
	case reading.Vibration > 40:
		fault = models.FaultVibration
	case reading.Pressure < 2 || reading.Pressure > 10:
		fault = models.FaultPressure
	case reading.NoiseLevel > 110:
		fault = models.FaultNoise
	default:
		return models.FaultNone, ""
	}
	return fault, faultMessages[fault]
}

func AlertID(machineID string) string {
	return "alert-" + machineID
}

// DeriveAlerts emits one alert per critical machine, in machine order.
func DeriveAlerts(machines []models.Machine, now time.Time) []models.Alert {
	alerts := []models.Alert{}
	for _, m := range machines {
		if m.Status != models.StatusCritical {
			continue
		}
		fault, msg := MessageFor(m.Telemetry)
		alerts = append(alerts, models.Alert{
			ID:        AlertID(m.ID),
			MachineID: m.ID,
			Machine:   m.Name,
			Fault:     fault,
			Message:   msg,
			Severity:  models.StatusCritical,
			Timestamp: now.Format("15:04"),
		})
	}
	return alerts
}

// MaintenancePrompt is the analysis request sent to the AI service when an operator escalates an alert.
func MaintenancePrompt(alert models.Alert) string {
	issue := alert.Message
	if issue == "" {
		issue = "Critical status without an out-of-band reading"
	}
	return fmt.Sprintf(`EMERGENCY MAINTENANCE ALERT ANALYSIS REQUIRED

Machine: %s
Issue: %s
Severity: %s
Time: %s

As an Industrial Maintenance Engineer, please provide:

IMMEDIATE SAFETY ACTIONS:
- Emergency shutdown procedures if required
- Safety hazards and PPE requirements
- Personnel evacuation if needed

TECHNICAL ANALYSIS:
- Root cause analysis for this specific issue
- System components that may be affected
- Failure mode identification

MAINTENANCE PROCEDURES:
- Step-by-step repair/inspection procedures
- Required tools and spare parts
- LOTO (Lockout/Tagout) requirements
- Quality control checkpoints

URGENCY ASSESSMENT:
- Can this wait for scheduled maintenance?
- Risk of cascading failures
- Production impact assessment

SAFETY PROTOCOLS:
- Specific PPE requirements for this repair
- Environmental hazards (confined space, electrical, etc.)
- Two-person work requirements

Please provide immediate actionable guidance for our maintenance team.`,
		alert.Machine, issue, strings.ToUpper(string(alert.Severity)), alert.Timestamp)
}
