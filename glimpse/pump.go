package glimpse

// Pump collects events emitted by platform callbacks and delivers them to
// a handler in cycles. A cycle consists of all queued events in the order
// they were pushed, followed by Idle and, if requested, a single RedrawRequest.
type Pump struct {
	queue  []Event
	redraw bool
}

func (p *Pump) Push(ev Event) {
	p.queue = append(p.queue, ev)
}

func (p *Pump) RequestRedraw() {
	p.redraw = true
}

// Pending returns the number of queued events.
func (p *Pump) Pending() int {
	return len(p.queue)
}

// Cycle delivers one cycle of events to handler. Delivery stops as soon as
// the flow requests exit, remaining events are discarded.
func (p *Pump) Cycle(handler Handler, flow *ControlFlow) {
	// the handler may push new events while we deliver, those
	// are part of the next cycle.
	queue := p.queue
	p.queue = nil

	for _, ev := range queue {
		if flow.ShouldExit() {
			return
		}

		handler(ev, flow)
	}

	if flow.ShouldExit() {
		return
	}

	handler(Idle{}, flow)

	if p.redraw && !flow.ShouldExit() {
		p.redraw = false
		handler(RedrawRequest{}, flow)
	}
}
