package search

import (
	"github.com/poiesic/certsearch/core"
)

// SearchMonitor provides hooks to observe the suggestion pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterExpansion(keywords []string)
	Candidate(record *core.Record, match Match)
	Rejected(record *core.Record, match Match)
	AfterRanking(candidates []Candidate)
	Finish(results []core.Suggestion)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                     {}
func (n *noopMonitor) AfterExpansion(_ []string)          {}
func (n *noopMonitor) Candidate(_ *core.Record, _ Match)  {}
func (n *noopMonitor) Rejected(_ *core.Record, _ Match)   {}
func (n *noopMonitor) AfterRanking(_ []Candidate)         {}
func (n *noopMonitor) Finish(_ []core.Suggestion)         {}
