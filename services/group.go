package services

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports services that cannot be assigned to a group.
type ValidationError struct {
	IDs []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Services with id: %s has an empty or missing 'group' key.", strings.Join(e.IDs, ", "))
}

// BuildFile derives the sorted group list from a merged service list
// and assembles the combined services file. Any service with an empty
// group fails the whole operation; the error lists every offender.
//
// Groups are registered at their first occurrence and then sorted
// lexicographically by ID. The service list is sorted by ID as well.
func BuildFile(merged []Service) (*File, error) {
	var invalid []string
	seen := make(map[string]bool, len(merged))
	groups := make([]Group, 0, len(merged))

	for _, s := range merged {
		if s.Group == "" {
			invalid = append(invalid, s.ID)
			continue
		}
		if !seen[s.Group] {
			seen[s.Group] = true
			groups = append(groups, Group{ID: s.Group})
		}
	}

	if len(invalid) > 0 {
		return nil, &ValidationError{IDs: invalid}
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].ID < groups[j].ID
	})

	sorted := append(make([]Service, 0, len(merged)), merged...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	return &File{BlockedServices: sorted, Groups: groups}, nil
}

// GroupIDs returns the group IDs of a combined file in file order.
func (f *File) GroupIDs() []string {
	ids := make([]string, len(f.Groups))
	for i, g := range f.Groups {
		ids[i] = g.ID
	}
	return ids
}
