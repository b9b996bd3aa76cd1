package observability

import (
	"strconv"
	"sync"
	"time"
)

// ClaimOutcome labels the result of a claim attempt.
type ClaimOutcome string

const (
	ClaimOutcomeWon      ClaimOutcome = "won"
	ClaimOutcomeLost     ClaimOutcome = "lost"
	ClaimOutcomeNotFound ClaimOutcome = "not_found"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	claimCount   map[ClaimOutcome]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		claimCount:   make(map[ClaimOutcome]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordClaim tallies claim attempts by outcome.
func (m *Metrics) RecordClaim(outcome ClaimOutcome) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.claimCount[outcome]++
}

// ClaimCount reports the tally for one outcome.
func (m *Metrics) ClaimCount(outcome ClaimOutcome) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.claimCount[outcome]
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
