package repository

import (
	"sync"
	"time"

	"YenDong/internal/domain/models"
	"YenDong/internal/domain/repository"
)

// MemAlertRegistry stores alerts in insertion order. Ids start at 1 and are never reused.
type MemAlertRegistry struct {
	mu     sync.RWMutex
	nextID int64
	items  []models.Alert
}

func NewMemAlertRegistry() *MemAlertRegistry {
	return &MemAlertRegistry{nextID: 1}
}

var _ repository.AlertRegistry = (*MemAlertRegistry)(nil)

func (r *MemAlertRegistry) Create(email string, targetRate float64, isAbove bool, created time.Time) models.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := models.Alert{
		ID:         r.nextID,
		Email:      email,
		TargetRate: targetRate,
		IsAbove:    isAbove,
		Created:    created,
	}
	r.nextID++
	r.items = append(r.items, a)
	return a
}

func (r *MemAlertRegistry) List() []models.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Alert, len(r.items))
	copy(out, r.items)
	return out
}

// MemPollRegistry stores votes in insertion order and keeps running per-label counts.
type MemPollRegistry struct {
	mu     sync.RWMutex
	nextID int64
	items  []models.Vote
	counts map[models.VoteLabel]int
}

func NewMemPollRegistry() *MemPollRegistry {
	return &MemPollRegistry{nextID: 1, counts: make(map[models.VoteLabel]int)}
}

var _ repository.PollRegistry = (*MemPollRegistry)(nil)

func (r *MemPollRegistry) Create(label models.VoteLabel, created time.Time) models.Vote {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := models.Vote{ID: r.nextID, Vote: label, Created: created}
	r.nextID++
	r.items = append(r.items, v)
	r.counts[label]++
	return v
}

func (r *MemPollRegistry) Counts() (map[models.VoteLabel]int, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[models.VoteLabel]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out, len(r.items)
}
