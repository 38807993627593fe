package storage

import (
	"sort"
	"strings"

	sent "github.com/revelaction/phrasal/sentence"
)

// HasLabel reports whether one of labels contains match. An empty match is
// always satisfied.
func HasLabel(labels []string, match string) bool {
	if match == "" {
		return true
	}
	for _, l := range labels {
		if strings.Contains(l, match) {
			return true
		}
	}
	return false
}

// UniqueLabels returns the sorted set of labels of docs containing pattern.
func UniqueLabels(docs []sent.Doc, pattern string) []string {
	seen := map[string]bool{}
	for _, d := range docs {
		for _, l := range d.Labels {
			if strings.Contains(l, pattern) {
				seen[l] = true
			}
		}
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
