// Package router keeps the stack of screens. The bottom screen is the home
// screen and is never popped.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/svenska/internal/screen"
)

type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s on top and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Replace swaps the top screen for s, which may be the root.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// PopToRoot closes everything above the root.
func (r *Router) PopToRoot() {
	clear(r.stack[1:])
	r.stack = r.stack[:1]
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update hands msg to the active screen. Screens return themselves or a
// replacement.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
