package models

import "time"

type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusOffline  Status = "offline"
)

type FaultType string

const (
	FaultNone      FaultType = ""
	FaultOverheat  FaultType = "overheat"
	FaultOverload  FaultType = "overload"
	FaultLowOil    FaultType = "lowoil"
	FaultVibration FaultType = "vibration"
	FaultPressure  FaultType = "pressure"
	FaultNoise     FaultType = "noise"
)

type TelemetryReading struct {
	Temperature float64 `json:"temperature"`
	MotorSpeed  float64 `json:"motorSpeed"`
	Pressure    float64 `json:"pressure"`
	Vibration   float64 `json:"vibration"`
	Load        float64 `json:"load"`
	Humidity    float64 `json:"humidity"`
	OilLevel    float64 `json:"oilLevel"`
	NoiseLevel  float64 `json:"noiseLevel"`
}

type Machine struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Position  [3]float64       `json:"position"`
	Status    Status           `json:"status"`
	Telemetry TelemetryReading `json:"telemetry"`
}

type KPIData struct {
	TotalMachines     int `json:"totalMachines"`
	CriticalStatus    int `json:"criticalStatus"`
	WarningStatus     int `json:"warningStatus"`
	AvgTemperature    int `json:"avgTemperature"`
	AvgLoad           int `json:"avgLoad"`
	AvgVibration      int `json:"avgVibration"`
	EnergyConsumption int `json:"energyConsumption"`
}

type TrendPoint struct {
	Time      string    `json:"time"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

type TrendData struct {
	Temperature []TrendPoint `json:"temperature"`
	RPM         []TrendPoint `json:"rpm"`
	Vibration   []TrendPoint `json:"vibration"`
	Load        []TrendPoint `json:"load"`
}

type Alert struct {
	ID        string    `json:"id"`
	MachineID string    `json:"machineId"`
	Machine   string    `json:"machine"`
	Fault     FaultType `json:"fault,omitempty"`
	Message   string    `json:"message"`
	Severity  Status    `json:"severity"`
	Timestamp string    `json:"timestamp"`
}

// FleetSnapshot is one full generation of the fleet. Statuses are the intrinsic ones.
type FleetSnapshot struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Machines    []Machine        `json:"machines"`
	Telemetry   TelemetryReading `json:"telemetry"`
	Alerts      []Alert          `json:"alerts"`
	KPIs        KPIData          `json:"kpis"`
	Trends      TrendData        `json:"trends"`
}

type TimedOverride struct {
	MachineID string        `json:"machineId"`
	Start     time.Time     `json:"start"`
	Duration  time.Duration `json:"duration"`
}

func (o TimedOverride) Expired(now time.Time) bool {
	return now.Sub(o.Start) >= o.Duration
}

type Overrides struct {
	Critical []TimedOverride `json:"critical"`
	Warning  []TimedOverride `json:"warning"`
}

// DashboardView is what the transports serve: the snapshot plus displayed statuses.
type DashboardView struct {
	Snapshot  FleetSnapshot `json:"snapshot"`
	Machines  []Machine     `json:"machines"`
	Alerts    []Alert       `json:"alerts"`
	Overrides Overrides     `json:"overrides"`
}

func (v *DashboardView) Machine(machineID string) (Machine, bool) {
	for _, m := range v.Machines {
		if m.ID == machineID {
			return m, true
		}
	}
	return Machine{}, false
}

func (v *DashboardView) Alert(alertID string) (Alert, bool) {
	for _, a := range v.Alerts {
		if a.ID == alertID {
			return a, true
		}
	}
	return Alert{}, false
}

type AlertRecord struct {
	ID         uint   `gorm:"primaryKey"`
	SnapshotID string `gorm:"index"`
	AlertID    string
	MachineID  string `gorm:"index"`
	Machine    string
	Fault      FaultType `gorm:"type:varchar(20)"`
	Message    string
	Severity   Status    `gorm:"type:varchar(20);check:severity IN ('normal','warning','critical','offline')"`
	Timestamp  time.Time `gorm:"index"`
}

type KPIRecord struct {
	ID                uint   `gorm:"primaryKey"`
	SnapshotID        string `gorm:"uniqueIndex"`
	Timestamp         time.Time
	TotalMachines     int
	CriticalStatus    int
	WarningStatus     int
	AvgTemperature    int
	AvgLoad           int
	AvgVibration      int
	EnergyConsumption int
}
