// File: /jobs/ratelimit_sweep_job.go
package jobs

import (
	"fmt"
	"time"

	"tampa-blades-api/middleware"
)

// RateLimitSweepJob periodically evicts idle client entries from the
// in-memory rate limiters so the maps do not grow without bound.
type RateLimitSweepJob struct {
	limiters []*middleware.RateLimiter
	ticker   *time.Ticker
	done     chan bool
}

// NewRateLimitSweepJob creates a sweep job over the given limiters
func NewRateLimitSweepJob(interval time.Duration, limiters ...*middleware.RateLimiter) *RateLimitSweepJob {
	return &RateLimitSweepJob{
		limiters: limiters,
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
	}
}

// Start begins the sweep job
func (j *RateLimitSweepJob) Start() {
	fmt.Println("Rate limit sweep job started")

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.sweep()
			case <-j.done:
				fmt.Println("Rate limit sweep job stopped")
				return
			}
		}
	}()
}

// Stop stops the sweep job
func (j *RateLimitSweepJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *RateLimitSweepJob) sweep() {
	for _, rl := range j.limiters {
		rl.Sweep()
	}
}
