package telemetry

import (
	"regexp"
	"strings"
)

// DefaultRoster is the fixed set of machines on the facility floor.
var DefaultRoster = []string{
	"mixing machine",
	"cnc cutting",
	"cnc cutting2",
	"coloring chamber",
	"coloring chamber2",
	"CNC ROUTER",
	"CNC ROUTER2",
	"CNC Router 20",
	"CNC Router 21",
	"knuth",
	"knuth2",
	"knuth3",
	"injection machine",
	"injection machine2",
	"injection machine3",
	"injection machine4",
	"injection machine5",
	"injection machine6",
	"injection machine7",
	"injection machine8",
	"injection machine9",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// MachineID derives the stable id used for override bookkeeping.
func MachineID(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// MachinePosition lays machines out on a 4-wide grid centred on the origin.
func MachinePosition(index int) [3]float64 {
	row := index / 4
	col := index % 4
	return [3]float64{(float64(col) - 1.5) * 3, 0, float64(row-1) * 3}
}
