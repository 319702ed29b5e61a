package models

import "slices"

// Progress lists the completed levels of one topic. CompletedLevels never
// holds duplicates.
type Progress struct {
	TopicID         string   `json:"topicId"`
	CompletedLevels []string `json:"completedLevels"`
}

// Has reports whether level is completed.
func (p *Progress) Has(level string) bool {
	return slices.Contains(p.CompletedLevels, level)
}

// Complete adds level and reports whether it was new.
func (p *Progress) Complete(level string) bool {
	if p.Has(level) {
		return false
	}
	p.CompletedLevels = append(p.CompletedLevels, level)
	return true
}

// Dedup drops repeated levels, keeping first occurrences.
func (p *Progress) Dedup() {
	seen := make(map[string]struct{}, len(p.CompletedLevels))
	out := p.CompletedLevels[:0]
	for _, l := range p.CompletedLevels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	p.CompletedLevels = out
}
