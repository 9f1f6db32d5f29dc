package geo

import "math"

// SphericalToCartesian converts a Vec3 holding spherical coordinates
// (r, theta, phi) -- theta the polar angle from +z, phi the azimuth from
// +x -- into Cartesian coordinates. The patch id is preserved.
func SphericalToCartesian(p Vec3) Vec3 {
	r, theta, phi := p.X, p.Y, p.Z
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return Vec3{X: r * st * cp, Y: r * st * sp, Z: r * ct, PatchID: p.PatchID}
}

// CartesianToSpherical converts a Cartesian Vec3 into spherical coordinates
// (r, theta, phi), with phi normalized to [0, 2*pi) by the same
// atan2(y, x) + pi convention as the rest of the scene-object math.
func CartesianToSpherical(p Vec3) Vec3 {
	r := p.Len()
	rho := math.Hypot(p.X, p.Y)
	theta := math.Atan2(rho, p.Z)
	phi := math.Atan2(p.Y, p.X) + math.Pi
	if phi >= 2*math.Pi {
		phi -= 2 * math.Pi
	}
	return Vec3{X: r, Y: theta, Z: phi, PatchID: p.PatchID}
}
