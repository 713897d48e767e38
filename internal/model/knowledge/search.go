package knowledge

import (
	"sort"
	"strings"
)

// Weights are the relevance signals added per matching tag, title, and
// category. The values are hand-tuned: tag hits should dominate incidental
// title or category mentions.
type Weights struct {
	Tag      float64
	Title    float64
	Category float64
}

// DefaultWeights returns the standard search weighting.
func DefaultWeights() Weights {
	return Weights{Tag: 2, Title: 1.5, Category: 1}
}

// Search ranks catalog entries against free-form user text and returns at
// most limit entries, best first. Matching is deliberately crude substring
// containment over the lowercased query; ties keep catalog order.
func (s *MemoryStore) Search(query string, limit int) []Entry {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		entry Entry
		score float64
	}

	matches := make([]scored, 0, len(s.items))
	for _, entry := range s.items {
		score := s.score(normalized, entry)
		if score == 0 {
			continue
		}
		matches = append(matches, scored{entry: entry, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]Entry, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.entry)
	}
	return results
}

func (s *MemoryStore) score(normalized string, entry Entry) float64 {
	var score float64
	for _, tag := range entry.Tags {
		if tag == "" {
			continue
		}
		if strings.Contains(normalized, tag) {
			score += s.weights.Tag
		}
	}
	if strings.Contains(normalized, strings.ToLower(entry.Title)) {
		score += s.weights.Title
	}
	if strings.Contains(normalized, string(entry.Category)) {
		score += s.weights.Category
	}
	return score
}
