//go:build !js

package screen

// watchPageTeardown is a no-op outside the browser; the window close button
// and the run context stop the loop there.
func (s *Simulation) watchPageTeardown() {}
