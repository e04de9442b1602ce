package planner

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/models"
)

// BuildTagIndex returns the sorted, case-folded, duplicate-free union of the
// tags of every plant. Plants without tags contribute nothing. The result is
// never nil.
func BuildTagIndex(plants []models.Plant) []string {
	seen := make(map[string]struct{})
	index := make([]string, 0)

	for _, plant := range plants {
		for _, tag := range plant.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			index = append(index, tag)
		}
	}

	slices.Sort(index)
	return index
}

// NormalizeTags turns a comma separated tag field ("Indoor, shade,,indoor")
// into the stored tag set: trimmed, lowercase, no empties, no duplicates,
// first occurrence order.
func NormalizeTags(raw string) []string {
	return normalize(strings.Split(raw, ","))
}

// NormalizeTagList applies the same rules as [NormalizeTags] to an already
// split list.
func NormalizeTagList(tags []string) []string {
	return normalize(tags)
}

func normalize(parts []string) []string {
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" || slices.Contains(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
