package services

import "github.com/samber/lo"

// Merge combines two ordered service lists into one, deduplicated by
// ID. When both lists carry the same ID the record from src wins.
// Output order is the first-appearance order of each ID across dst
// then src, so merging is idempotent and stable.
func Merge(dst, src []Service) []Service {
	byID := make(map[string]Service, len(dst)+len(src))
	order := make([]string, 0, len(dst)+len(src))

	for _, s := range dst {
		if _, seen := byID[s.ID]; !seen {
			order = append(order, s.ID)
		}
		byID[s.ID] = s
	}
	for _, s := range src {
		if _, seen := byID[s.ID]; !seen {
			order = append(order, s.ID)
		}
		byID[s.ID] = s
	}

	return lo.Map(order, func(id string, _ int) Service {
		return byID[id]
	})
}

// MergeAll folds an ordered list of sources left to right, later
// sources overriding earlier ones per ID.
func MergeAll(sources ...[]Service) []Service {
	var merged []Service
	for _, src := range sources {
		merged = Merge(merged, src)
	}
	return merged
}
