package bom

// AggregateCost sums unit price x quantity over all records, applying the
// lenient normalization rules (missing quantity counts as 1, missing price as
// 0). It never fails: a malformed record contributes its normalized defaults
// instead of aborting the sum. The result is independent of record order.
func AggregateCost(records []PartRecord) float64 {
	total := 0.0
	for _, rec := range records {
		total += rec.LineCost()
	}
	return total
}
