package app

import (
	"sort"

	"tableflip.dev/shoplist/pkg/category"
)

// ReportSection counts one category across both lists.
type ReportSection struct {
	Category  category.Key `json:"category"`
	Label     string       `json:"label"`
	Inventory int          `json:"inventory"`
	Listed    int          `json:"listed"`
	Bought    int          `json:"bought"`
}

// Remaining returns how many listed items are still to buy.
func (r ReportSection) Remaining() int {
	return r.Listed - r.Bought
}

// ReportResult summarises the lists per category.
type ReportResult struct {
	Sections  []ReportSection `json:"sections"`
	Inventory int             `json:"inventory"`
	Listed    int             `json:"listed"`
	Bought    int             `json:"bought"`
}

// Report counts inventory, listed and bought items per category. Sections
// are ordered by category key.
func (s *Service) Report() ReportResult {
	grouped := make(map[category.Key]*ReportSection)
	section := func(key category.Key) *ReportSection {
		if r, ok := grouped[key]; ok {
			return r
		}
		r := &ReportSection{Category: key, Label: category.Label(key)}
		grouped[key] = r
		return r
	}

	var out ReportResult
	for _, it := range s.inventory {
		section(it.Category).Inventory++
		out.Inventory++
	}
	for _, it := range s.shopping {
		r := section(it.Category)
		r.Listed++
		out.Listed++
		if it.Bought {
			r.Bought++
			out.Bought++
		}
	}

	keys := make([]category.Key, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out.Sections = make([]ReportSection, 0, len(keys))
	for _, key := range keys {
		out.Sections = append(out.Sections, *grouped[key])
	}
	return out
}
