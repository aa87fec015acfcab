package shell

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoJobs is returned by job lookups when the table is empty.
var ErrNoJobs = errors.New("no current job")

// Job is one tracked background process.
type Job struct {
	ID          int
	Pid         int
	Handle      ProcessHandle
	CommandLine string
	Stopped     bool
}

// JobTable records backgrounded processes for the session. Job ids are
// assigned sequentially starting at 1 and never reused, even after removal.
// The table is safe for use from concurrent pipeline stages.
type JobTable struct {
	mu     sync.Mutex
	jobs   []*Job
	nextID int
}

func NewJobTable() *JobTable {
	return &JobTable{nextID: 1}
}

// Register adds a job for a freshly launched background process and returns
// it with its assigned id.
func (t *JobTable) Register(handle ProcessHandle, commandLine string) *Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	job := &Job{
		ID:          t.nextID,
		Pid:         handle.Pid(),
		Handle:      handle,
		CommandLine: commandLine,
	}
	t.nextID++
	t.jobs = append(t.jobs, job)
	return job
}

// Reap removes every job whose process has exited, invoking notify with the
// job and its exit code for each one removed.
func (t *JobTable) Reap(notify func(job *Job, code int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	remaining := t.jobs[:0]
	for _, job := range t.jobs {
		if code, done := job.Handle.TryWait(); done {
			if notify != nil {
				notify(job, code)
			}
			continue
		}
		remaining = append(remaining, job)
	}
	t.jobs = remaining
}

// Jobs returns a snapshot of the live jobs in registration order.
func (t *JobTable) Jobs() []*Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*Job, len(t.jobs))
	copy(out, t.jobs)
	return out
}

// Len reports the number of live jobs.
func (t *JobTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.jobs)
}

// take removes and returns the job with the given id, or the most recently
// registered job when id is 0.
func (t *JobTable) take(id int) (*Job, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.jobs) == 0 {
		return nil, ErrNoJobs
	}

	if id == 0 {
		job := t.jobs[len(t.jobs)-1]
		t.jobs = t.jobs[:len(t.jobs)-1]
		return job, nil
	}

	for i, job := range t.jobs {
		if job.ID == id {
			t.jobs = append(t.jobs[:i], t.jobs[i+1:]...)
			return job, nil
		}
	}
	return nil, fmt.Errorf("job %d not found", id)
}

// Foreground removes the job from the table and hands it to the caller to
// wait on. This is terminal: the job cannot return to the table.
func (t *JobTable) Foreground(id int) (*Job, error) {
	return t.take(id)
}

// Background resumes a stopped job in place. There is no mechanism in this
// core that stops a foreground process, so outside of tests the stopped
// flag is never set and this reports an error; the operation exists to
// honor the job-control contract.
func (t *JobTable) Background(id int) (*Job, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.jobs) == 0 {
		return nil, ErrNoJobs
	}

	var target *Job
	if id == 0 {
		target = t.jobs[len(t.jobs)-1]
	} else {
		for _, job := range t.jobs {
			if job.ID == id {
				target = job
				break
			}
		}
		if target == nil {
			return nil, fmt.Errorf("job %d not found", id)
		}
	}

	if !target.Stopped {
		return nil, fmt.Errorf("job %d is already running", target.ID)
	}
	target.Stopped = false
	return target, nil
}
