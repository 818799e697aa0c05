package session

import "sync"

// Identity is the authenticated principal as seen by this core.
type Identity struct {
	ID    string
	Email string
}

// Provider holds the current identity and notifies subscribers of
// sign-in/sign-out transitions. Safe for concurrent use.
type Provider struct {
	mu      sync.RWMutex
	current *Identity
	subs    map[int]chan *Identity
	nextID  int
}

func NewProvider() *Provider {
	return &Provider{
		subs: make(map[int]chan *Identity),
	}
}

// Current returns the authenticated identity, or nil when signed out.
func (p *Provider) Current() *Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Set records a sign-in and notifies subscribers.
func (p *Provider) Set(identity *Identity) {
	p.publish(identity)
}

// Clear records a sign-out and notifies subscribers.
func (p *Provider) Clear() {
	p.publish(nil)
}

// Subscribe returns a channel receiving every identity transition and a
// cancel func. The channel carries the latest value only; a slow
// consumer observes the newest identity, not the full history.
func (p *Provider) Subscribe() (<-chan *Identity, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := make(chan *Identity, 1)
	p.subs[id] = ch

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if _, ok := p.subs[id]; ok {
			delete(p.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (p *Provider) publish(identity *Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = identity
	for _, ch := range p.subs {
		// Replace a pending unread value instead of blocking.
		select {
		case <-ch:
		default:
		}
		ch <- identity
	}
}
