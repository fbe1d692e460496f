package corpus

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the state of a scan job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusScanning  JobStatus = "scanning"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job tracks one asynchronous corpus scan.
type Job struct {
	mu sync.Mutex

	ID     string
	Dir    string // as requested, workspace-relative
	Root   string // resolved absolute directory
	Status JobStatus
	Phase  string

	CreatedAt time.Time
	UpdatedAt time.Time

	result *Result
	errors []string
}

// NewJob returns a queued job with a fresh ID.
func NewJob(dir, root string) *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.NewString(),
		Dir:       dir,
		Root:      root,
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		expired := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if expired {
			delete(s.jobs, id)
		}
	}
}

// Len reports the number of tracked jobs.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.UpdatedAt = time.Now()
}

// Complete stores the scan result and marks the job completed.
func (j *Job) Complete(r *Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = r
	j.Status = StatusCompleted
	j.Phase = "done"
	j.UpdatedAt = time.Now()
}

// Result returns the scan result, or nil until the job completes.
func (j *Job) Result() *Result {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	Dir       string    `json:"dir"`
	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	Errors    []string  `json:"errors"`
	Totals    *Totals   `json:"totals,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := append([]string{}, j.errors...)
	snap := JobSnapshot{
		ID:        j.ID,
		Dir:       j.Dir,
		Status:    j.Status,
		Phase:     j.Phase,
		Errors:    errs,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
	if j.result != nil {
		totals := j.result.Totals
		snap.Totals = &totals
	}
	return snap
}
