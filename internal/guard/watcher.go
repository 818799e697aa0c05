package guard

import (
	"context"
	"sync"

	"devlink_backend/internal/session"
)

// Watcher keeps a guard decision current against a session stream. Each
// identity transition starts a fresh check pass; a pass that resolves
// after a newer identity has been observed is discarded, so a stale
// lookup can never override the newer pass's decision.
type Watcher struct {
	guard    *Guard
	sessions *session.Provider
	redirect func(path string)

	mu       sync.Mutex
	gen      uint64
	decision Decision
}

// NewWatcher wires a guard to a session provider. redirect is the
// one-way navigation primitive; it is invoked at most once per
// committed mismatch and may be nil.
func NewWatcher(g *Guard, sessions *session.Provider, redirect func(path string)) *Watcher {
	return &Watcher{
		guard:    g,
		sessions: sessions,
		redirect: redirect,
		decision: Decision{State: StateInitializing},
	}
}

// Run subscribes to the session stream and re-checks on every identity
// change until ctx is done. The initial check uses the identity already
// resolved by the provider.
func (w *Watcher) Run(ctx context.Context) {
	updates, cancel := w.sessions.Subscribe()
	defer cancel()

	w.recheck(ctx, w.sessions.Current())

	for {
		select {
		case <-ctx.Done():
			return
		case identity, ok := <-updates:
			if !ok {
				return
			}
			w.recheck(ctx, identity)
		}
	}
}

// Recheck starts a new check pass for the identity and invalidates any
// pass still in flight.
func (w *Watcher) Recheck(ctx context.Context, identity *session.Identity) {
	w.recheck(ctx, identity)
}

func (w *Watcher) recheck(ctx context.Context, identity *session.Identity) {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.decision = Decision{State: StateChecking}
	w.mu.Unlock()

	// The profile lookup is asynchronous; the generation captured above
	// decides whether its result is still current when it lands.
	go w.complete(ctx, gen, identity)
}

func (w *Watcher) complete(ctx context.Context, gen uint64, identity *session.Identity) {
	decision := w.guard.Check(ctx, identity)

	w.mu.Lock()
	if gen != w.gen {
		// A newer identity was observed while this pass was in flight.
		w.mu.Unlock()
		return
	}
	w.decision = decision
	redirect := w.redirect
	w.mu.Unlock()

	if decision.State == StateRedirecting && redirect != nil {
		redirect(decision.RedirectTo)
	}
}

// Decision returns the current decision.
func (w *Watcher) Decision() Decision {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.decision
}

// Authorized reports whether the protected subtree may be rendered.
// False in every non-terminal state: children are never shown before a
// check cycle reaches StateAuthorized.
func (w *Watcher) Authorized() bool {
	return w.Decision().State == StateAuthorized
}
