// Package runner bounds long-running work (BruteForce, ASP) behind a
// worker-pool/TTL-cleanup job store, adapted from the teacher's
// service.JobService (graph-clustering-backend/src2/service/job.go):
// algorithms themselves support no cancellation (spec.md §5), so
// anything that might run long is wrapped here instead, with a
// per-job context timeout and periodic sweep of stale results.
package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"graphpart/internal/partition"
)

type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Job struct {
	ID          string
	Status      Status
	Err         string
	Result      partition.Partition
	ExecutionMS int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Work is the bounded operation a Runner executes: given a context it
// can observe for cancellation/timeout, produce a partition.
type Work func(ctx context.Context) (partition.Partition, error)

type Runner struct {
	jobs            map[string]*Job
	workers         chan struct{}
	mutex           sync.RWMutex
	jobTimeout      time.Duration
	resultTTL       time.Duration
	cleanupInterval time.Duration
}

// New builds a Runner with maxWorkers concurrent slots, a per-job
// timeout, and a TTL-based result sweep — mirrors NewJobService's
// constructor shape and its background cleanupLoop.
func New(maxWorkers int, jobTimeout, resultTTL, cleanupInterval time.Duration) *Runner {
	r := &Runner{
		jobs:            make(map[string]*Job),
		workers:         make(chan struct{}, maxWorkers),
		jobTimeout:      jobTimeout,
		resultTTL:       resultTTL,
		cleanupInterval: cleanupInterval,
	}
	go r.cleanupLoop()
	return r
}

// Submit queues work and returns its job ID immediately; the caller
// polls Get for the result.
func (r *Runner) Submit(work Work) string {
	id := uuid.New().String()
	now := time.Now()
	job := &Job{ID: id, Status: StatusQueued, CreatedAt: now, UpdatedAt: now}

	r.mutex.Lock()
	r.jobs[id] = job
	r.mutex.Unlock()

	go r.run(id, work)
	return id
}

// Run executes work synchronously, still subject to the configured
// job timeout, and returns the partition directly — for callers that
// want to block for the result rather than poll (Submit/Get exists for
// callers that want to decouple submission from polling). The HTTP
// handlers use Bound instead, since they return a serialized string.
func (r *Runner) Run(ctx context.Context, work Work) (partition.Partition, error) {
	ctx, cancel := context.WithTimeout(ctx, r.jobTimeout)
	defer cancel()

	r.workers <- struct{}{}
	defer func() { <-r.workers }()

	return work(ctx)
}

// Bound runs fn under a worker slot and the configured job timeout,
// without constraining fn's result type to partition.Partition — the
// HTTP façade uses this to bound BruteForce/ASP requests that return
// an already-serialized matrix string rather than a raw Partition.
func (r *Runner) Bound(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.jobTimeout)
	defer cancel()

	r.workers <- struct{}{}
	defer func() { <-r.workers }()

	return fn(ctx)
}

func (r *Runner) run(id string, work Work) {
	r.workers <- struct{}{}
	defer func() { <-r.workers }()

	r.setStatus(id, StatusRunning, "")

	ctx, cancel := context.WithTimeout(context.Background(), r.jobTimeout)
	defer cancel()

	start := time.Now()
	result, err := work(ctx)
	elapsed := time.Since(start)

	if err != nil {
		r.fail(id, err)
		log.Error().Str("job_id", id).Err(err).Msg("runner job failed")
		return
	}
	r.complete(id, result, elapsed)
	log.Info().Str("job_id", id).Dur("elapsed", elapsed).Msg("runner job completed")
}

func (r *Runner) Get(id string) (*Job, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job not found: %s", id)
	}
	return job, nil
}

func (r *Runner) setStatus(id string, status Status, errMsg string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.Status = status
	job.Err = errMsg
	job.UpdatedAt = time.Now()
}

func (r *Runner) complete(id string, result partition.Partition, elapsed time.Duration) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.Status = StatusCompleted
	job.Result = result
	job.ExecutionMS = elapsed.Milliseconds()
	job.UpdatedAt = time.Now()
}

func (r *Runner) fail(id string, err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.Status = StatusFailed
	job.Err = err.Error()
	job.UpdatedAt = time.Now()
}

func (r *Runner) cleanupLoop() {
	ticker := time.NewTicker(r.cleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		r.cleanup()
	}
}

func (r *Runner) cleanup() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	cutoff := time.Now().Add(-r.resultTTL)
	cleaned := 0
	for id, job := range r.jobs {
		if job.UpdatedAt.Before(cutoff) {
			delete(r.jobs, id)
			cleaned++
		}
	}
	if cleaned > 0 {
		log.Info().Int("cleaned_jobs", cleaned).Msg("runner cleanup completed")
	}
}
