package api

import "github.com/lookbusy1344/bigint/bigint"

// broadcastTracer adapts a Broadcaster to bigint.Tracer so an evaluate
// request can stream its division/multiplication steps to subscribers of
// one session ID.
type broadcastTracer struct {
	sessionID   string
	broadcaster *Broadcaster
}

func (t *broadcastTracer) DivisionStep(s bigint.DivisionStep) {
	t.broadcaster.BroadcastDivisionStep(t.sessionID, s.BitIndex, s.QuotientBit, s.Remainder)
}

func (t *broadcastTracer) MultiplyStep(s bigint.MultiplyStep) {
	t.broadcaster.BroadcastMultiplyStep(t.sessionID, s.BitIndex, s.Accumulator)
}
