package favmeta

import (
	"sort"
	"strconv"
	"strings"
)

// IconCandidate is one discovered favicon or touch-icon declaration.
// Identity is URL: a ranked list never holds two candidates with the same URL.
type IconCandidate struct {
	URL  string `json:"url"`
	Size string `json:"size"` // "180x180", "default", ...
	Type string `json:"type"` // rel keyword, e.g. "icon", "apple-touch-icon"
}

// Fallback icon appended to every ranked list.
const (
	FallbackIconPath = "/favicon.ico"
	FallbackIconSize = "16x16"
	FallbackIconType = "icon"
)

// RankIcons appends the well-known /favicon.ico of baseURL's origin,
// deduplicates by URL keeping the first occurrence, drops anything that is not
// an absolute http(s) URL and sorts by descending SizeRank. Equal ranks keep
// their input order.
func RankIcons(candidates []IconCandidate, baseURL string) []IconCandidate {
	all := make([]IconCandidate, 0, len(candidates)+1)
	all = append(all, candidates...)
	if origin := Origin(baseURL); origin != "" {
		all = append(all, IconCandidate{
			URL:  origin + FallbackIconPath,
			Size: FallbackIconSize,
			Type: FallbackIconType,
		})
	}

	seen := make(map[string]struct{}, len(all))
	icons := make([]IconCandidate, 0, len(all))
	for _, c := range all {
		if _, ok := seen[c.URL]; ok {
			continue
		}
		seen[c.URL] = struct{}{}

		if !strings.HasPrefix(c.URL, "http") {
			continue
		}
		icons = append(icons, c)
	}

	sort.SliceStable(icons, func(i, j int) bool {
		return SizeRank(icons[i].Size) > SizeRank(icons[j].Size)
	})

	return icons
}

// SizeRank returns the leading integer of the part of size before the first
// "x", so "180x180" ranks 180. Sizes without an "x" or without leading digits
// rank 0.
func SizeRank(size string) int {
	width, _, ok := strings.Cut(size, "x")
	if !ok {
		return 0
	}
	width = strings.TrimSpace(width)

	end := 0
	for end < len(width) && width[end] >= '0' && width[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(width[:end])
	if err != nil {
		return 0
	}
	return n
}
