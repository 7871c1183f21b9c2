package handicapservice

import (
	"math"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// standardSlope is the USGA standard slope rating.
const standardSlope = 113

// handicapAllowance is the fraction of the raw differential that counts
// toward the published handicap.
const handicapAllowance = 0.96

// ComputeDifferential computes a per-round score differential:
//
//	round(((score - rating) * 113 / slope) * 0.96, 2)
//
// Slope must be positive; zero would divide by zero, so it is rejected here
// rather than left to the caller.
func ComputeDifferential(score sharedtypes.Score, rating sharedtypes.Rating, slope sharedtypes.Slope) (sharedtypes.Differential, error) {
	if slope <= 0 {
		return 0, ErrInvalidSlope
	}

	raw := (float64(score) - float64(rating)) * standardSlope / float64(slope)
	return sharedtypes.Differential(round2(raw * handicapAllowance)), nil
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
