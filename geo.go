package circlemode

import (
	"math"

	geo "github.com/paulmach/go.geo"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm - mean earth radius used for circle radii and ring vertices
const EarthRadiusKm = 6371.0088

// DistanceKm - great-circle distance between two lng/lat points in kilometers
func DistanceKm(a, b orb.Point) float64 {
	from := geo.NewPoint(a[0], a[1])
	to := geo.NewPoint(b[0], b[1])

	// go.geo measures on the WGS84 equatorial radius, keep the central angle
	// and rescale it to the mean radius
	return from.GeoDistanceFrom(to, true) / geo.EarthRadius * EarthRadiusKm
}

// GenerateCircle - compute a closed ring of `steps` edges approximating the
// circle of radiusKm around center. The first vertex lies due north of the
// center and the ring winds counter-clockwise; the last vertex repeats the first.
func GenerateCircle(center orb.Point, radiusKm float64, steps int) orb.Ring {
	meters := radiusKm / EarthRadiusKm * orb.EarthRadius

	ring := make(orb.Ring, steps+1)
	for i := 0; i < steps; i++ {
		bearing := float64(i) * -360 / float64(steps)
		ring[i] = orbgeo.PointAtBearingAndDistance(center, bearing, meters)
	}
	ring[steps] = ring[0]

	return ring
}

// RingArea - spherical area enclosed by a ring in square meters
func RingArea(ring orb.Ring) float64 {
	return math.Abs(orbgeo.Area(orb.Polygon{ring}))
}
