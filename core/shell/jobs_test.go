package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubHandle is a ProcessHandle whose state the test controls directly.
type stubHandle struct {
	pid    int
	done   bool
	code   int
	killed bool
}

func (h *stubHandle) Pid() int { return h.pid }

func (h *stubHandle) Wait() int { return h.code }

func (h *stubHandle) TryWait() (int, bool) {
	if h.done {
		return h.code, true
	}
	return 0, false
}

func (h *stubHandle) Kill() error {
	h.killed = true
	h.done = true
	return nil
}

func TestJobTableIDsNeverReused(t *testing.T) {
	table := NewJobTable()

	j1 := table.Register(&stubHandle{pid: 100}, "sleep 1 &")
	j2 := table.Register(&stubHandle{pid: 101}, "sleep 2 &")
	j3 := table.Register(&stubHandle{pid: 102}, "sleep 3 &")

	assert.Equal(t, 1, j1.ID)
	assert.Equal(t, 2, j2.ID)
	assert.Equal(t, 3, j3.ID)

	_, err := table.Foreground(2)
	assert.NoError(t, err)

	j4 := table.Register(&stubHandle{pid: 103}, "sleep 4 &")
	assert.Equal(t, 4, j4.ID)
	assert.Equal(t, 3, table.Len())
}

func TestJobTableReap(t *testing.T) {
	table := NewJobTable()

	live := &stubHandle{pid: 200}
	dead := &stubHandle{pid: 201, done: true, code: 7}
	table.Register(live, "running &")
	finished := table.Register(dead, "finished &")

	var reaped []*Job
	var codes []int
	table.Reap(func(job *Job, code int) {
		reaped = append(reaped, job)
		codes = append(codes, code)
	})

	assert.Len(t, reaped, 1)
	assert.Equal(t, finished.ID, reaped[0].ID)
	assert.Equal(t, []int{7}, codes)
	assert.Equal(t, 1, table.Len())

	// A reaped id is gone for good.
	_, err := table.Foreground(finished.ID)
	assert.Error(t, err)
}

func TestJobTableForeground(t *testing.T) {
	table := NewJobTable()

	t.Run("empty table", func(t *testing.T) {
		_, err := table.Foreground(0)
		assert.ErrorIs(t, err, ErrNoJobs)
	})

	first := table.Register(&stubHandle{pid: 300}, "first &")
	second := table.Register(&stubHandle{pid: 301}, "second &")

	t.Run("zero means most recent", func(t *testing.T) {
		job, err := table.Foreground(0)
		assert.NoError(t, err)
		assert.Equal(t, second.ID, job.ID)
	})

	t.Run("by id", func(t *testing.T) {
		job, err := table.Foreground(first.ID)
		assert.NoError(t, err)
		assert.Equal(t, first.ID, job.ID)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("unknown id", func(t *testing.T) {
		table.Register(&stubHandle{pid: 302}, "third &")
		_, err := table.Foreground(99)
		assert.Error(t, err)
	})
}

func TestJobTableBackground(t *testing.T) {
	table := NewJobTable()

	job := table.Register(&stubHandle{pid: 400}, "task &")

	_, err := table.Background(job.ID)
	assert.Error(t, err, "a running job cannot be resumed")

	job.Stopped = true
	resumed, err := table.Background(0)
	assert.NoError(t, err)
	assert.False(t, resumed.Stopped)
	assert.Equal(t, 1, table.Len(), "background keeps the job in the table")
}
