package service

import "sync"

// PendingReplies tracks which user each admin is currently drafting a reply
// to. At most one target per admin; setting again overwrites. Entries live in
// memory only and are lost on restart.
type PendingReplies struct {
	mu      sync.Mutex
	targets map[int64]int64
}

// NewPendingReplies creates an empty registry
func NewPendingReplies() *PendingReplies {
	return &PendingReplies{targets: make(map[int64]int64)}
}

// Set records the reply target for an admin, replacing any previous one
func (p *PendingReplies) Set(adminID, targetID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.targets[adminID] = targetID
}

// Take returns the admin's reply target and removes it in the same step,
// so a pending reply is consumed at most once
func (p *PendingReplies) Take(adminID int64) (int64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	target, ok := p.targets[adminID]
	if ok {
		delete(p.targets, adminID)
	}
	return target, ok
}

// Clear drops the admin's pending reply, if any
func (p *PendingReplies) Clear(adminID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.targets, adminID)
}
