// Package notify is the transient status region read by assistive
// technology. One message is live at a time; publishing overwrites any
// pending one and the message clears itself after the TTL.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

type Message struct {
	Text     string
	Severity Severity
}

type Region struct {
	mu    sync.Mutex
	cur   Message
	timer *time.Timer
	ttl   time.Duration
}

func NewRegion(ttl time.Duration) *Region {
	return &Region{ttl: ttl}
}

func (r *Region) Success(message string) {
	r.publish(Message{Text: message, Severity: SeveritySuccess})
}

func (r *Region) Info(message string) {
	r.publish(Message{Text: message, Severity: SeverityInfo})
}

func (r *Region) publish(m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
	}
	r.cur = m
	r.timer = time.AfterFunc(r.ttl, r.clear)
}

func (r *Region) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cur = Message{}
	r.timer = nil
}

// Current returns the live message, zero-valued when none is pending.
func (r *Region) Current() Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cur
}
