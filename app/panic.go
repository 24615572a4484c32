package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"pocketcalc/ui"
)

type panicInfo struct {
	Value any
	Stack []byte
}

// installPanicHandler arms the panic screen. It is a no-op without a framebuffer.
func installPanicHandler(a *App) {
	a.onPanic = func(info panicInfo) {
		a.logf("pocketcalc panic: %v", info.Value)
		lines := strings.Split(string(info.Stack), "\n")
		for _, line := range lines {
			if line == "" {
				continue
			}
			a.logf("%s", line)
		}

		if a.fb == nil {
			return
		}
		screen := []string{
			"Calculator panic:",
			fmt.Sprintf("%v", info.Value),
		}
		screen = append(screen, lines...)
		_ = ui.RenderLines(a.fb, screen)
	}
}

// recoverStep turns a panic inside Step into a logged error so the run loop ends.
func (a *App) recoverStep(err *error) {
	v := recover()
	if v == nil {
		return
	}
	if a.onPanic != nil {
		a.onPanic(panicInfo{Value: v, Stack: debug.Stack()})
	}
	*err = fmt.Errorf("app step panic: %v", v)
}
