// SPDX-License-Identifier: MIT
// Package geo computes great-circle distances between map coordinates.
//
// Distances are in statute miles, the unit every footway weight and every
// navigation report uses.
package geo

import (
	"fmt"
	"math"
	"strconv"
)

// EarthRadiusMiles is the mean earth radius used by DistanceMiles.
const EarthRadiusMiles = 3963.1676

const degToRad = math.Pi / 180.0

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// String renders c as "(lat, lon)" with 8 significant digits.
func (c Coordinates) String() string {
	return fmt.Sprintf("(%s, %s)", FormatFloat(c.Lat), FormatFloat(c.Lon))
}

// Valid reports whether c lies within the latitude/longitude ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// DistanceMiles returns the haversine distance between a and b.
// It is symmetric, non-negative and zero for identical points.
func DistanceMiles(a, b Coordinates) float64 {
	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * degToRad

	sLat := math.Sin(dLat / 2)
	sLon := math.Sin(dLon / 2)
	h := sLat*sLat + math.Cos(lat1)*math.Cos(lat2)*sLon*sLon

	return EarthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FormatFloat renders f with at most 8 significant digits and no trailing
// zeros, e.g. 41.870796 or 0.0043460349.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 8, 64)
}
