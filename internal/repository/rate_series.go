package repository

import (
	"sort"
	"sync"

	"YenDong/internal/domain/models"
	"YenDong/internal/domain/repository"

	"cloud.google.com/go/civil"
)

// MemRateSeries implements RateSeries in memory. Dates are kept sorted so
// reads never need to sort.
type MemRateSeries struct {
	mu    sync.RWMutex
	byDay   map[civil.Date]models.RateObservation
	days    []civil.Date
	version uint64
}

// NewMemRateSeries creates an empty series.
func NewMemRateSeries() *MemRateSeries {
	return &MemRateSeries{byDay: make(map[civil.Date]models.RateObservation)}
}

var _ repository.RateSeries = (*MemRateSeries)(nil)

func (s *MemRateSeries) Append(obs models.RateObservation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.byDay[obs.Date]
	s.byDay[obs.Date] = obs
	s.version++
	if exists {
		return false
	}

	i := sort.Search(len(s.days), func(i int) bool { return !s.days[i].Before(obs.Date) })
	s.days = append(s.days, civil.Date{})
	copy(s.days[i+1:], s.days[i:])
	s.days[i] = obs.Date
	return true
}

func (s *MemRateSeries) Latest() (models.RateObservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.days) == 0 {
		return models.RateObservation{}, false
	}
	return s.byDay[s.days[len(s.days)-1]], true
}

func (s *MemRateSeries) Tail(n int) []models.RateObservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []models.RateObservation{}
	}
	start := len(s.days) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.RateObservation, 0, len(s.days)-start)
	for _, d := range s.days[start:] {
		out = append(out, s.byDay[d])
	}
	return out
}

func (s *MemRateSeries) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
