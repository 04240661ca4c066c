package dataprocessing

import "strings"

// TaxonomyEntry holds the four texts associated with a root cause label.
type TaxonomyEntry struct {
	SymptomCondition string
	SymptomComponent string
	FixCondition     string
	FixComponent     string
}

// taxonomyRule pairs a root cause label with its entry. The taxonomy is a
// slice, not a map: definition order doubles as match priority and must
// stay reproducible.
type taxonomyRule struct {
	Label string
	Entry TaxonomyEntry
}

// RootCauseOther is the fallback label when no taxonomy rule matches.
const RootCauseOther = "Other"

// taxonomy is the fixed root-cause rule set. A rule matches a Cause cell
// when its label appears, case-insensitively, anywhere in the cell text;
// the first matching rule wins.
var taxonomy = []taxonomyRule{
	{"Not Tightened", TaxonomyEntry{"Loose", "Cab P Clip", "Retightened", "Cab P Clip"}},
	{"Not Installed", TaxonomyEntry{"Won't stay open", "Fuel Door", "Installed", "Gas Strut"}},
	{"Not Mentioned", TaxonomyEntry{"Crushed", "Compressor Pressure Line", "Replaced", "Braided Steel"}},
	{"Loosened", TaxonomyEntry{"Oil Running", "Not Mentioned", "Topped Off", "O-Ring"}},
	{"Not Included", TaxonomyEntry{"Missing", "Vector", "Not Mentioned", "Vector"}},
	{"Out of Fitting", TaxonomyEntry{"Oil Dripping", "Coupler", "Cleaned Out", "Coupler"}},
	{"Blown", TaxonomyEntry{"Oil Leak", "Mount SVM Sign", "Reseted", "Brackets"}},
	{"Poor Material", TaxonomyEntry{"Broke", "Harness", "Repaired", "Hydraulic"}},
	{"Leaking", TaxonomyEntry{"Leak", "Rinse Tank", "Tightened", "Not Mentioned"}},
	{"Failed Sending", TaxonomyEntry{"Open", "Fuel Sender", "", "NCV Harness"}},
	{"No Oring", TaxonomyEntry{"Hydraulic Leak", "Boom", "", "Tube"}},
	{"Not Tighten", TaxonomyEntry{"Fold Uneven", "Auto Boom", "", "Oring"}},
	{"Out of Range", TaxonomyEntry{"Getting Fault Code", "Condenser", "", "Sensor"}},
	{"Lubricant Drip Drown", TaxonomyEntry{"Not Working", "Left-Air Duct", "", "Counter"}},
	{"Fault", TaxonomyEntry{"Error Codes", "Bulkhead Connector", "", "Threads"}},
	{"Internal Issue", TaxonomyEntry{"Product Leak", "Braided Steel", "", "Left Air Duct"}},
	{"Screwed in a Thread", TaxonomyEntry{"Does not Light", "Intrip Unlocks", "", "Compressor Line"}},
	{"Faulty", TaxonomyEntry{"", "Sensor", "", "Intrip Unlocks"}},
}

// ClassifyRootCause returns the first taxonomy label contained in cause,
// or RootCauseOther when none is.
func ClassifyRootCause(cause string) string {
	lowered := strings.ToLower(cause)
	for _, rule := range taxonomy {
		if strings.Contains(lowered, strings.ToLower(rule.Label)) {
			return rule.Label
		}
	}
	return RootCauseOther
}

// LookupTaxonomy returns the entry for a root cause label. ok is false
// for RootCauseOther and any label outside the rule set.
func LookupTaxonomy(label string) (TaxonomyEntry, bool) {
	for _, rule := range taxonomy {
		if rule.Label == label {
			return rule.Entry, true
		}
	}
	return TaxonomyEntry{}, false
}

// TaxonomyLabels returns the rule labels in definition (priority) order.
func TaxonomyLabels() []string {
	labels := make([]string, len(taxonomy))
	for i, rule := range taxonomy {
		labels[i] = rule.Label
	}
	return labels
}
