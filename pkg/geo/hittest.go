package geo

// HitTestResult is the outcome of testing a geodesic segment against a
// scene object. Distance is measured from the segment's start point and is
// only meaningful when Hit is true.
type HitTestResult struct {
	Hit      bool
	Color    Color
	Distance float64
}
