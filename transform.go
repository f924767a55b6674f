package splash

import "github.com/hajimehoshi/ebiten/v2"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// translateTransform returns a pure translation matrix.
func translateTransform(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// geomTransform converts an ebiten.GeoM into the [6]float64 layout.
func geomTransform(g ebiten.GeoM) [6]float64 {
	return [6]float64{
		g.Element(0, 0), g.Element(1, 0),
		g.Element(0, 1), g.Element(1, 1),
		g.Element(0, 2), g.Element(1, 2),
	}
}

// ScreenGeoM returns the GeoM that maps Y-up world space onto a Y-down
// screen of the given height, scaled by pixelsPerUnit, with world (0, 0) at
// screen (originX, originY).
func ScreenGeoM(pixelsPerUnit, originX, originY float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(pixelsPerUnit, -pixelsPerUnit)
	g.Translate(originX, originY)
	return g
}
