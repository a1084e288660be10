package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/careercompass/compass/internal/screen"
)

type fakeScreen struct {
	name  string
	inits int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

// expectTop asserts the stack depth and the title of the active screen.
func expectTop(t *testing.T, r *Router, depth int, title string) {
	t.Helper()
	if r.Depth() != depth {
		t.Errorf("depth = %d, want %d", r.Depth(), depth)
	}
	if got := r.Active().Title(); got != title {
		t.Errorf("active = %q, want %q", got, title)
	}
}

func TestNavigation(t *testing.T) {
	home := &fakeScreen{name: "home"}
	detail := &fakeScreen{name: "detail"}
	form := &fakeScreen{name: "form"}

	r := New(home)
	expectTop(t, r, 1, "home")

	r.Push(detail)
	expectTop(t, r, 2, "detail")
	if detail.inits != 1 {
		t.Errorf("detail inits = %d, want 1", detail.inits)
	}

	r.Replace(form)
	expectTop(t, r, 2, "form")
	if form.inits != 1 {
		t.Errorf("form inits = %d, want 1", form.inits)
	}

	r.Pop()
	expectTop(t, r, 1, "home")
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Pop()
	r.Pop()
	expectTop(t, r, 1, "home")
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	pushed := &fakeScreen{name: "pushed"}
	r.Update(PushScreenMsg{Screen: pushed})
	expectTop(t, r, 2, "pushed")
	if pushed.inits != 1 {
		t.Errorf("pushed inits = %d, want 1", pushed.inits)
	}

	swapped := &fakeScreen{name: "swapped"}
	r.Update(ReplaceScreenMsg{Screen: swapped})
	expectTop(t, r, 2, "swapped")
	if swapped.inits != 1 {
		t.Errorf("swapped inits = %d, want 1", swapped.inits)
	}

	r.Update(PopScreenMsg{})
	expectTop(t, r, 1, "home")
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "detail"})

	if got := r.View(80, 24); got != "detail" {
		t.Errorf("View() = %q, want %q", got, "detail")
	}
}
