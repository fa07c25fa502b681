package polygon

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// CCW is the only geometric predicate in the package, and the only place
// the precision tolerance touches geometry. It returns the sign of twice
// the signed area of triangle (p0, p1, p2): +1 for counterclockwise, -1
// for clockwise, and 0 whenever the triangle's altitude is at most tol —
// the triangle is squashed flat enough that its orientation cannot be
// trusted. The altitude is |area| / longestEdge, so the test below
// compares area² against base²·tol² to avoid the square root.
//
// Swapping the last two arguments exactly negates the result, which the
// sweep relies on.
func CCW(p0, p1, p2 mgl.Vec2, tol float32) int {
	v1 := p1.Sub(p0)
	v2 := p2.Sub(p0)
	area := v1.X()*v2.Y() - v1.Y()*v2.X()
	base2 := v1.Dot(v1)
	if b := v2.Dot(v2); b > base2 {
		base2 = b
	}
	if area*area <= base2*tol*tol {
		return 0
	}
	if area > 0 {
		return 1
	}
	return -1
}
