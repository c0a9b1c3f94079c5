package robot

import "math"

// Intensity is one row of the distance→strike-power calibration: outputs is
// the digital-output pattern for pins 15 down to 9. Recalibrating the rig
// means editing this table, never the planner.
type Intensity struct {
	UpperBound float64
	Label      string
	Outputs    [7]bool // pins 15,14,13,12,11,10,9
}

// intensityTable is ordered by ascending distance bound. The first row's
// bound is inclusive, the rest are exclusive, matching the rig calibration.
// The 175–200 band intentionally reuses pin 13.
var intensityTable = []Intensity{
	{100, "really close", [7]bool{true, false, false, false, false, false, false}},
	{150, "very close", [7]bool{false, true, false, false, false, false, false}},
	{175, "close", [7]bool{false, false, true, false, false, false, false}},
	{200, "a little bit close", [7]bool{false, false, true, false, false, false, false}},
	{250, "middle", [7]bool{false, false, true, false, false, false, false}},
	{350, "a little bit far", [7]bool{false, false, false, true, false, false, false}},
	{450, "far", [7]bool{false, false, false, false, false, true, false}},
	{math.Inf(1), "really far", [7]bool{true, true, true, true, true, true, true}},
}

// SelectIntensity maps a total shot distance to its strike intensity.
func SelectIntensity(distance float64) Intensity {
	if distance <= intensityTable[0].UpperBound {
		return intensityTable[0]
	}
	for _, row := range intensityTable[1:] {
		if distance < row.UpperBound {
			return row
		}
	}
	return intensityTable[len(intensityTable)-1]
}
