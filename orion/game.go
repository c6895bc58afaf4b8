package orion

// Updater advances per frame state. It runs on the event loop
// right before the frame is rendered.
type Updater interface {
	Update(state *RenderState) error
}

type UpdaterFunc func(state *RenderState) error

func (fn UpdaterFunc) Update(state *RenderState) error {
	return fn(state)
}

type noopUpdater struct{}

func (noopUpdater) Update(*RenderState) error {
	return nil
}
