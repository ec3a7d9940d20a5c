package glicko

// Ratings are stored on the Glicko-2 scale (rating centered at 0) and
// converted to the familiar 1500-centered scale at the API boundary.
// Volatility is the same on both scales.
const (
	GlickoScale      = 173.7178
	InitialRating    = 1500.0
	InitialDeviation = 350.0
)

func RatingToInternal(rating float64) float64 {
	return (rating - InitialRating) / GlickoScale
}

func RatingFromInternal(mu float64) float64 {
	return GlickoScale*mu + InitialRating
}

func DeviationToInternal(deviation float64) float64 {
	return deviation / GlickoScale
}

func DeviationFromInternal(phi float64) float64 {
	return GlickoScale * phi
}
