package glimpse

// Handler processes a single event. Termination is requested through flow.
type Handler func(ev Event, flow *ControlFlow)

type Window interface {
	// FramebufferSize returns the current size in physical pixels.
	FramebufferSize() (uint32, uint32)

	// RequestRedraw schedules a RedrawRequest for the current cycle.
	// Multiple requests within one cycle result in a single redraw.
	RequestRedraw()

	// Run pumps events into handler until the flow requests exit. It returns
	// the error passed to ControlFlow.Fail, if any.
	Run(handler Handler) error

	Terminate()
}
