//go:build js

package screen

import "syscall/js"

// watchPageTeardown stops the loop when the browser unloads the page.
func (s *Simulation) watchPageTeardown() {
	var onHide js.Func
	onHide = js.FuncOf(func(js.Value, []js.Value) any {
		s.Stop()
		onHide.Release()
		return nil
	})
	js.Global().Get("window").Call("addEventListener", "pagehide", onHide)
}
