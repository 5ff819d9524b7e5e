package types

import (
	"math"

	"github.com/TheMlok/meteo-tools/conversions"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// Wind is a wind speed in every supported unit plus its direction. Speeds
// other than the one the Wind was built from are rounded to 4 decimal places.
type Wind struct {
	SpeedMps          float64
	SpeedKmph         float64
	SpeedMph          float64
	SpeedKnots        float64
	DirectionDegrees  float64
	DirectionCardinal string
}

func NewWindFromMps(speedMps, directionDegrees float64) Wind {
	return Wind{
		SpeedMps:          speedMps,
		SpeedKmph:         conversions.MpsToKmph(speedMps),
		SpeedMph:          conversions.MpsToMph(speedMps),
		SpeedKnots:        conversions.MpsToKnots(speedMps),
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: Cardinal(directionDegrees),
	}
}

func NewWindFromKmph(speedKmph, directionDegrees float64) Wind {
	return Wind{
		SpeedMps:          conversions.KmphToMps(speedKmph),
		SpeedKmph:         speedKmph,
		SpeedMph:          conversions.KmphToMph(speedKmph),
		SpeedKnots:        conversions.KmphToKnots(speedKmph),
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: Cardinal(directionDegrees),
	}
}

func NewWindFromMph(speedMph, directionDegrees float64) Wind {
	return Wind{
		SpeedMps:          conversions.MphToMps(speedMph),
		SpeedKmph:         conversions.MphToKmph(speedMph),
		SpeedMph:          speedMph,
		SpeedKnots:        conversions.MphToKnots(speedMph),
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: Cardinal(directionDegrees),
	}
}

func NewWindFromKnots(speedKnots, directionDegrees float64) Wind {
	return Wind{
		SpeedMps:          conversions.KnotsToMps(speedKnots),
		SpeedKmph:         conversions.KnotsToKmph(speedKnots),
		SpeedMph:          conversions.KnotsToMph(speedKnots),
		SpeedKnots:        speedKnots,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: Cardinal(directionDegrees),
	}
}

// Cardinal returns the 16-point compass direction for a bearing in degrees.
// Bearings outside [0, 360) wrap around. NaN and infinite bearings have no
// direction and return "".
func Cardinal(directionDegrees float64) string {
	if math.IsNaN(directionDegrees) || math.IsInf(directionDegrees, 0) {
		return ""
	}
	degrees := math.Mod(directionDegrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	index := int(degrees/22.5+.5) % 16 // .5 for rounding
	return compassPoints[index]
}
