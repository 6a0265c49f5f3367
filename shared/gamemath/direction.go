package gamemath

import "math"

// FromAngle returns the unit vector for an angle in radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// NudgeFromAxes pushes an angle lying within band radians of a multiple of
// π/2 out to the band edge on its own side. An angle exactly on the axis goes
// to the positive side.
func NudgeFromAxes(angle, band float64) float64 {
	const quarter = math.Pi / 2
	nearest := math.Round(angle/quarter) * quarter
	d := angle - nearest
	if math.Abs(d) >= band {
		return angle
	}
	if d < 0 {
		return nearest - band
	}
	return nearest + band
}

// Deflect maps a strike offset rel in [0, 1] across a paddle into a unit
// direction leaving the paddle. The map is linear over arc radians centred on
// normal; rel 0 leans toward +tangent and rel 1 toward -tangent.
func Deflect(rel, arc float64, tangent, normal Vec2) Vec2 {
	rel = Clamp(rel, 0, 1)
	theta := (0.5 - rel) * arc
	return tangent.Scale(math.Sin(theta)).Add(normal.Scale(math.Cos(theta)))
}
