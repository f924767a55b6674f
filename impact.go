package splash

import "math"

// Impact describes an object hitting the water, as reported by the
// collision collaborator.
type Impact struct {
	// Center is the object's world position at the moment of contact.
	Center Vec2
	// Extents is half the object's bounding box size.
	Extents Vec2
	// VerticalSpeed is the object's Y velocity. Negative means falling.
	VerticalSpeed float64
}

// Radius returns the impact radius: the object's half-width scaled by mult.
func (im Impact) Radius(mult float64) float64 {
	return im.Extents.X * mult
}

// FromAbove reports whether the object hit the surface at surfaceY from
// above. An object centered exactly on the surface counts as above.
func (im Impact) FromAbove(surfaceY float64) bool {
	return im.Center.Y >= surfaceY
}

// SpawnPoint returns where splash particles should appear: the object's
// bottom edge for hits from above, its top edge otherwise.
func (im Impact) SpawnPoint(surfaceY float64) Vec2 {
	if im.FromAbove(surfaceY) {
		return Vec2{im.Center.X, im.Center.Y - im.Extents.Y}
	}
	return Vec2{im.Center.X, im.Center.Y + im.Extents.Y}
}

// ImpactForce converts a vertical speed into an impulse:
// |verticalSpeed·multiplier| clamped to [0, maxForce], carrying the sign of
// verticalSpeed. Zero speed yields +0.
func ImpactForce(verticalSpeed, multiplier, maxForce float64) float64 {
	sign := 1.0
	if verticalSpeed < 0 {
		sign = -1
	}
	f := math.Abs(verticalSpeed * multiplier)
	f = math.Max(0, math.Min(f, maxForce))
	return f * sign
}
