package mainloop

import "sync"

// Coalescer merges bursts of same-key main-loop tasks. Only the most recently
// posted callback for a key runs, once, on the next main-loop turn.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	post      func(func())
	destroyed bool
}

func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending: make(map[string]func()),
		post:    post,
	}
}

// Post schedules fn under key. While a task for key is pending, fn replaces
// its callback without scheduling another turn.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.pending[key]
	c.pending[key] = fn
	if scheduled {
		c.mu.Unlock()
		return
	}
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.pending[key]
	delete(c.pending, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if ok && !destroyed && fn != nil {
		fn()
	}
}

// Pending reports whether a task for key is waiting to run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn, ok := c.pending[key]
	return ok && fn != nil
}

// Cancel drops the pending callback for key. The scheduled turn still fires
// and runs whatever was posted after the cancel, if anything.
func (c *Coalescer) Cancel(key string) {
	c.mu.Lock()
	if _, ok := c.pending[key]; ok {
		c.pending[key] = nil
	}
	c.mu.Unlock()
}

// Destroy drops all pending work and ignores further posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]func(){}
	c.mu.Unlock()
}
