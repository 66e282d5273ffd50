package workout

import "strconv"

// ClassifyBMI returns the body-mass index rounded to two decimals and its band.
// heightCm must be positive; callers validate before calling.
//
// The band is chosen from the rounded value, so 180cm/81kg reports 25 and
// "Overweight" rather than falling just under the boundary in floating point.
func ClassifyBMI(heightCm, weightKg float64) (float64, Category) {
	heightM := heightCm / 100
	bmi := round2(weightKg / (heightM * heightM))

	switch {
	case bmi < 18.5:
		return bmi, CategoryUnderweight
	case bmi < 25:
		return bmi, CategoryNormal
	case bmi < 30:
		return bmi, CategoryOverweight
	default:
		return bmi, CategoryObese
	}
}

// round2 rounds to two decimals from the exact binary value, breaking exact
// ties to even: 18.125 becomes 18.12.
func round2(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return r
}
