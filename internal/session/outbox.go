package session

import (
	"fmt"
	"sync"
)

type OverflowPolicy string

const (
	DropOldest OverflowPolicy = "drop_oldest"
	Disconnect OverflowPolicy = "disconnect"
)

func ParseOverflowPolicy(raw string) (OverflowPolicy, error) {
	switch OverflowPolicy(raw) {
	case DropOldest, Disconnect:
		return OverflowPolicy(raw), nil
	}
	return "", fmt.Errorf("unknown overflow policy %q", raw)
}

type PushResult int

const (
	Queued PushResult = iota
	// QueuedDroppedOldest means the frame was queued after evicting the oldest pending one.
	QueuedDroppedOldest
	// Overflowed means the outbox closed itself instead of queueing.
	Overflowed
	Closed
)

// Outbox is the bounded queue of encoded frames waiting to be written to one connection.
// Push never blocks, so a slow reader only ever affects its own session.
type Outbox struct {
	mu     sync.Mutex
	frames [][]byte
	limit  int
	policy OverflowPolicy
	closed bool
	reason string

	ready chan struct{}
	done  chan struct{}
}

func NewOutbox(limit int, policy OverflowPolicy) *Outbox {
	if limit < 1 {
		limit = 1
	}
	return &Outbox{
		frames: make([][]byte, 0, limit),
		limit:  limit,
		policy: policy,
		ready:  make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (o *Outbox) Push(frame []byte) PushResult {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return Closed
	}

	result := Queued
	if len(o.frames) >= o.limit {
		if o.policy == Disconnect {
			o.closeLocked("outbound queue overflow")
			o.mu.Unlock()
			return Overflowed
		}
		o.frames[0] = nil
		o.frames = o.frames[1:]
		result = QueuedDroppedOldest
	}
	o.frames = append(o.frames, frame)
	o.mu.Unlock()

	select {
	case o.ready <- struct{}{}:
	default:
	}
	return result
}

// Drain removes and returns every pending frame in push order.
func (o *Outbox) Drain() [][]byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.frames) == 0 {
		return nil
	}
	frames := o.frames
	o.frames = make([][]byte, 0, o.limit)
	return frames
}

func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.frames)
}

// Ready is signalled after a push. One signal may cover several frames.
func (o *Outbox) Ready() <-chan struct{} {
	return o.ready
}

// Done is closed once the outbox stops accepting frames.
func (o *Outbox) Done() <-chan struct{} {
	return o.done
}

func (o *Outbox) Close(reason string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closeLocked(reason)
}

func (o *Outbox) Reason() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.reason
}

func (o *Outbox) closeLocked(reason string) {
	if o.closed {
		return
	}
	o.closed = true
	o.reason = reason
	o.frames = nil
	close(o.done)
}
