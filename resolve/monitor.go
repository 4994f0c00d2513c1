package resolve

import (
	"fmt"
	"io"

	"github.com/poiesic/termfinder/core"
)

// Monitor receives callbacks at each stage of a lookup.
// It is meant for tracing and diagnostics; implementations must not
// retain the slices they are given.
type Monitor interface {
	Start(term string)
	PageFetched(pass Pass, page int, hits []core.SearchResult)
	PassFailed(pass Pass, page int, err error)
	AfterResolve(candidates core.CandidateList)
	CandidateTried(cui string, atoms []core.Atom, err error)
	Finish(res *core.Resolution)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                   {}
func (n *noopMonitor) PageFetched(_ Pass, _ int, _ []core.SearchResult) {}
func (n *noopMonitor) PassFailed(_ Pass, _ int, _ error)                {}
func (n *noopMonitor) AfterResolve(_ core.CandidateList)                {}
func (n *noopMonitor) CandidateTried(_ string, _ []core.Atom, _ error)  {}
func (n *noopMonitor) Finish(_ *core.Resolution)                        {}

// TraceMonitor writes a human-readable trace of a lookup.
type TraceMonitor struct {
	w io.Writer
}

var _ Monitor = (*TraceMonitor)(nil)

// NewTraceMonitor creates a monitor writing to w.
func NewTraceMonitor(w io.Writer) *TraceMonitor {
	return &TraceMonitor{w: w}
}

func (m *TraceMonitor) Start(term string) {
	fmt.Fprintf(m.w, "searching for %q\n", term)
}

func (m *TraceMonitor) PageFetched(pass Pass, page int, hits []core.SearchResult) {
	fmt.Fprintf(m.w, "  %s page %d: %d hits\n", pass, page, len(hits))
	for _, hit := range hits {
		fmt.Fprintf(m.w, "    %s %s\n", hit.UI, hit.Name)
	}
}

func (m *TraceMonitor) PassFailed(pass Pass, page int, err error) {
	fmt.Fprintf(m.w, "  %s page %d failed: %v\n", pass, page, err)
}

func (m *TraceMonitor) AfterResolve(candidates core.CandidateList) {
	fmt.Fprintf(m.w, "%d candidates\n", len(candidates))
}

func (m *TraceMonitor) CandidateTried(cui string, atoms []core.Atom, err error) {
	if err != nil {
		fmt.Fprintf(m.w, "  %s: %v\n", cui, err)
		return
	}
	fmt.Fprintf(m.w, "  %s: %d atoms\n", cui, len(atoms))
}

func (m *TraceMonitor) Finish(res *core.Resolution) {
	if !res.Found() {
		fmt.Fprintln(m.w, "no terminology entry found")
		return
	}
	fmt.Fprintf(m.w, "matched %s with %d atoms\n", res.ConceptUI, len(res.Atoms))
}
