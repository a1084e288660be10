package router

import (
	"github.com/careercompass/compass/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// Navigation messages. Screens emit these as commands instead of
// touching the router directly.
type (
	// PushScreenMsg opens a screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg closes the current screen and returns to the one below.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the current screen without growing the stack.
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Router owns the screen stack. The top screen receives all messages
// and renders; screens below keep their state until revealed again.
type Router struct {
	stack []screen.Screen
}

func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

func (r *Router) Depth() int { return len(r.stack) }

// Active returns the screen currently on top, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Push opens s on top of the stack and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen. The bottom screen never pops.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the top screen for s and runs its Init. Depth is
// unchanged; on an empty stack it degenerates to Push.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Update intercepts navigation messages and forwards everything else
// to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	if len(r.stack) == 0 {
		return nil
	}
	updated, cmd := r.stack[len(r.stack)-1].Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
