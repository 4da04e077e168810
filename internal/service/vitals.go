package service

import "math"

// ComputeBMI derives body mass index from weight in kilograms and height in
// centimetres, rounded to 2 decimal places. Returns 0 for a non-positive
// height.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*100) / 100
}
