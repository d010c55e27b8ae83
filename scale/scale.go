package scale

import "github.com/cwbudde/algo-geom/vec3"

// Expand returns v with every component multiplied by q².
func Expand(v vec3.Vec3, q float64) vec3.Vec3 {
	return v.Scale(q * q)
}

// Contract returns v with every component divided by q².
// The inverse of [Expand]. If q == 0 the result has infinite or NaN
// components per IEEE-754 division; no error is raised.
func Contract(v vec3.Vec3, q float64) vec3.Vec3 {
	return v.Div(q * q)
}

// Balance applies quadratic scaling in the selected direction: expansion
// (v·q²) when expand is true, contraction (v/q²) when false. Contraction is
// identical to [Contract], including the q == 0 behavior.
func Balance(v vec3.Vec3, q float64, expand bool) vec3.Vec3 {
	if expand {
		return Expand(v, q)
	}
	return Contract(v, q)
}
