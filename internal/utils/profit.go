package utils

import "math"

// Profit returns the absolute margin and margin percent for a catalog item.
// Percent is 0 when basePrice is 0 to avoid division blowups on free items.
func Profit(sellingPrice, basePrice float64) (margin float64, percent float64) {
	margin = round2(sellingPrice - basePrice)
	if basePrice == 0 {
		return margin, 0
	}
	percent = math.Round(margin/basePrice*1000) / 10
	return margin, percent
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
