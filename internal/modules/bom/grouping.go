package bom

import (
	"fmt"
	"strings"
)

// GroupKey selects the record field used to partition a part list.
type GroupKey string

const (
	GroupByCategory     GroupKey = "category"
	GroupByManufacturer GroupKey = "manufacturer"
	GroupByPackage      GroupKey = "package"
	GroupByNone         GroupKey = "none"
)

// UnknownGroupLabel is the reserved group for records whose value for the
// active grouping field is absent or empty.
const UnknownGroupLabel = "Unknown"

// AllPartsLabel is the single group label used when grouping is disabled.
const AllPartsLabel = "All Parts"

// ParseGroupKey validates a grouping key received from a query parameter.
// The empty string defaults to GroupByNone.
func ParseGroupKey(s string) (GroupKey, error) {
	switch GroupKey(strings.ToLower(strings.TrimSpace(s))) {
	case GroupByCategory:
		return GroupByCategory, nil
	case GroupByManufacturer:
		return GroupByManufacturer, nil
	case GroupByPackage:
		return GroupByPackage, nil
	case GroupByNone, "":
		return GroupByNone, nil
	}
	return "", fmt.Errorf("unknown grouping key %q", s)
}

// accessor returns the typed field accessor for this key, or nil for
// GroupByNone. Unknown keys also map to nil so a malformed key degrades to
// the ungrouped view instead of failing.
func (k GroupKey) accessor() func(PartRecord) string {
	switch k {
	case GroupByCategory:
		return func(p PartRecord) string { return p.Category }
	case GroupByManufacturer:
		return func(p PartRecord) string { return p.Manufacturer }
	case GroupByPackage:
		return func(p PartRecord) string { return p.Package }
	}
	return nil
}

// Group is a derived display grouping: a label, the member records in input
// order, and the total cost of the members. Groups are computed fresh on
// every call and never stored.
type Group struct {
	Label     string       `json:"label"`
	Parts     []PartRecord `json:"parts"`
	TotalCost float64      `json:"total_cost"`
}

// Partition splits records into groups by the selected field. Group order
// follows the first occurrence of each label in the input; records inside a
// group keep their input order. Records with an empty value for the field go
// into the reserved "Unknown" group. The union of all groups is exactly the
// input list: no record is dropped or duplicated.
//
// With GroupByNone the result is a single "All Parts" group holding every
// record in input order.
func Partition(records []PartRecord, key GroupKey) []Group {
	access := key.accessor()
	if access == nil {
		all := make([]PartRecord, len(records))
		copy(all, records)
		return []Group{{
			Label:     AllPartsLabel,
			Parts:     all,
			TotalCost: AggregateCost(all),
		}}
	}

	index := make(map[string]int)
	var groups []Group
	for _, rec := range records {
		label := strings.TrimSpace(access(rec))
		if label == "" {
			label = UnknownGroupLabel
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Parts = append(groups[i].Parts, rec)
	}

	for i := range groups {
		groups[i].TotalCost = AggregateCost(groups[i].Parts)
	}

	return groups
}
