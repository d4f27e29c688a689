package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/learnhub/internal/common"
)

// toastNotifier prints session notifications on their own line.
type toastNotifier struct {
	out io.Writer
}

func (n *toastNotifier) Success(_ context.Context, msg string) {
	fmt.Fprintf(n.out, "[ok] %s\n", msg)
}

func (n *toastNotifier) Error(_ context.Context, msg string) {
	fmt.Fprintf(n.out, "[error] %s\n", msg)
}

// Router records the route the user is on. It starts at the home page.
type Router struct {
	mu      sync.Mutex
	out     io.Writer
	current string
	history []string
}

func NewRouter(out io.Writer) *Router {
	return &Router{out: out, current: common.RouteHome}
}

func (r *Router) Navigate(_ context.Context, route string) {
	r.mu.Lock()
	r.current = route
	r.history = append(r.history, route)
	r.mu.Unlock()

	fmt.Fprintf(r.out, "-> %s\n", route)
}

func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns every route navigated to, oldest first.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}
