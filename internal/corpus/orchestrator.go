package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrStopped is returned by Submit once Stop has been called.
var ErrStopped = errors.New("orchestrator stopped")

// Orchestrator runs scan jobs on a fixed pool of workers.
type Orchestrator struct {
	jobs     *JobStore
	queue    chan *Job
	scanner  *Scanner
	log      *slog.Logger
	workers  int
	maxQueue int

	cancel context.CancelFunc
	wg     sync.WaitGroup

	// mu guards stopped and the close of queue against concurrent sends.
	mu      sync.RWMutex
	stopped bool
}

// NewOrchestrator creates the pool; call Start to launch workers.
func NewOrchestrator(scanner *Scanner, workers, maxQueue int, jobTTL time.Duration, log *slog.Logger) *Orchestrator {
	if workers <= 0 {
		workers = 1
	}
	if maxQueue <= 0 {
		maxQueue = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		jobs:     NewJobStore(jobTTL),
		queue:    make(chan *Job, maxQueue),
		scanner:  scanner,
		log:      log,
		workers:  workers,
		maxQueue: maxQueue,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.workers {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					o.process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pool.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if !o.stopped {
		o.stopped = true
		close(o.queue)
	}
	o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.mu.RLock()
	defer o.mu.RUnlock()

	o.jobs.Put(job)
	if o.stopped {
		job.SetStatus(StatusFailed, "stopped")
		return ErrStopped
	}
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.maxQueue)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

func (o *Orchestrator) process(ctx context.Context, job *Job) {
	log := o.log.With("job_id", job.ID, "dir", job.Dir)

	job.SetStatus(StatusScanning, "scanning")
	result, err := o.scanner.Scan(ctx, job.Root)
	if err != nil {
		log.Error("scan failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "scanning")
		return
	}

	log.Info("scan job complete", "documents", result.Totals.FileCount, "bytes", result.Totals.TotalBytes)
	job.Complete(result)
}
