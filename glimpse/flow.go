package glimpse

// ControlFlow is the loop control flag shared between the event loop and
// its handler. Setting it never interrupts work in progress, the loop
// checks it between events.
type ControlFlow struct {
	exit bool
	err  error
}

// Exit requests the loop to stop after the current event.
func (c *ControlFlow) Exit() {
	c.exit = true
}

// Fail requests the loop to stop and report err. The first error wins.
func (c *ControlFlow) Fail(err error) {
	if c.err == nil {
		c.err = err
	}

	c.exit = true
}

func (c *ControlFlow) ShouldExit() bool {
	return c.exit
}

func (c *ControlFlow) Err() error {
	return c.err
}
