package control

import (
	"log"
	"sync/atomic"

	"github.com/sweeney/ledpanel/internal/logic"
)

// EdgeHandler is the body of the edge context. It only debounces, applies
// the scenario's mode writes and logs; it never samples, actuates, renders
// or sleeps.
type EdgeHandler struct {
	debouncer *logic.Debouncer
	clock     logic.Clock
	scenario  Scenario

	accepted [logic.NumSources]atomic.Uint32
	rejected [logic.NumSources]atomic.Uint32
}

// NewEdgeHandler binds a debouncer and clock to a scenario.
func NewEdgeHandler(debouncer *logic.Debouncer, clock logic.Clock, scenario Scenario) *EdgeHandler {
	return &EdgeHandler{
		debouncer: debouncer,
		clock:     clock,
		scenario:  scenario,
	}
}

// Handle processes one falling edge from src.
func (h *EdgeHandler) Handle(src logic.Source) {
	if src >= logic.NumSources {
		return
	}
	if !h.debouncer.Accept(src, h.clock.NowMs()) {
		h.rejected[src].Add(1)
		return
	}
	h.accepted[src].Add(1)

	if msg, ok := h.scenario.HandleEdge(src); ok {
		log.Printf("%s button: %s", src, msg)
	}
}

// Counts returns the accepted and rejected edge counters.
func (h *EdgeHandler) Counts() logic.EdgeCounts {
	return logic.EdgeCounts{
		PrimaryAccepted:   h.accepted[logic.SourcePrimary].Load(),
		PrimaryRejected:   h.rejected[logic.SourcePrimary].Load(),
		SecondaryAccepted: h.accepted[logic.SourceSecondary].Load(),
		SecondaryRejected: h.rejected[logic.SourceSecondary].Load(),
	}
}
