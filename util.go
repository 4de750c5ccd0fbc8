package circlemode

import "github.com/paulmach/orb"

// IsRingClosed - true when the ring has at least three points and its
// first point equals its last
func IsRingClosed(ring orb.Ring) bool {
	if len(ring) > 2 {
		return ring[0].Equal(ring[len(ring)-1])
	}
	return false
}

// PointToLngLat - GeoJSON position for a point
func PointToLngLat(point orb.Point) []float64 {
	return []float64{point.Lon(), point.Lat()}
}

func polygonCoordinates(polygon orb.Polygon) [][][]float64 {
	coords := make([][][]float64, len(polygon))
	for i, ring := range polygon {
		coords[i] = make([][]float64, len(ring))
		for j, point := range ring {
			coords[i][j] = PointToLngLat(point)
		}
	}
	return coords
}
