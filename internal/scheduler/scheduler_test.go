package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/newsquant/pkg/logger"
)

type countingJob struct {
	name     string
	schedule string
	failFor  int32
	calls    atomic.Int32
}

func (j *countingJob) Name() string     { return j.name }
func (j *countingJob) Schedule() string { return j.schedule }

func (j *countingJob) Run(ctx context.Context) error {
	n := j.calls.Add(1)
	if n <= j.failFor {
		return fmt.Errorf("attempt %d failed", n)
	}
	return nil
}

func newTestScheduler(retries int) *Scheduler {
	return New(logger.Nop(), Options{MaxRetries: retries, RetryDelay: time.Millisecond})
}

func TestAddJob(t *testing.T) {
	s := newTestScheduler(0)

	require.NoError(t, s.AddJob(&countingJob{name: "b", schedule: "@hourly"}))
	require.NoError(t, s.AddJob(&countingJob{name: "a", schedule: "0 */15 * * * *"}))

	assert.Error(t, s.AddJob(&countingJob{name: "a", schedule: "@hourly"}), "duplicate name")
	assert.Error(t, s.AddJob(&countingJob{name: "bad", schedule: "not a cron"}))

	assert.Equal(t, []string{"a", "b"}, s.GetAllJobs())
}

func TestRemoveJob(t *testing.T) {
	s := newTestScheduler(0)
	require.NoError(t, s.AddJob(&countingJob{name: "a", schedule: "@hourly"}))

	require.NoError(t, s.RemoveJob("a"))
	assert.Empty(t, s.GetAllJobs())
	assert.Error(t, s.RemoveJob("a"))
}

func TestRunNow_Retries(t *testing.T) {
	s := newTestScheduler(2)
	job := &countingJob{name: "flaky", schedule: "@hourly", failFor: 2}
	require.NoError(t, s.AddJob(job))

	result, err := s.RunNow(context.Background(), "flaky")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, int32(3), job.calls.Load())

	history, err := s.GetJobHistory("flaky", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Success)
}

func TestRunNow_FailsAfterRetries(t *testing.T) {
	s := newTestScheduler(1)
	job := &countingJob{name: "broken", schedule: "@hourly", failFor: 100}
	require.NoError(t, s.AddJob(job))

	result, err := s.RunNow(context.Background(), "broken")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, "attempt 2 failed", result.Error)

	stats := s.GetJobStats()["broken"]
	assert.Equal(t, 1, stats.TotalRuns)
	assert.Equal(t, 1, stats.FailureCount)
	assert.Equal(t, 0.0, stats.SuccessRate)
	assert.NotNil(t, stats.LastFailure)
	assert.Nil(t, stats.LastSuccess)
}

func TestRunNow_CanceledStopsRetrying(t *testing.T) {
	s := New(logger.Nop(), Options{MaxRetries: 5, RetryDelay: time.Hour})
	job := &countingJob{name: "slow", schedule: "@hourly", failFor: 100}
	require.NoError(t, s.AddJob(job))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result, err := s.RunNow(ctx, "slow")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, int32(1), job.calls.Load())
	assert.True(t, errors.Is(ctx.Err(), context.DeadlineExceeded))
}

func TestRunNow_UnknownJob(t *testing.T) {
	s := newTestScheduler(0)
	_, err := s.RunNow(context.Background(), "missing")
	assert.Error(t, err)
	assert.Error(t, s.RunJob("missing"))
}

func TestScheduledExecution(t *testing.T) {
	s := newTestScheduler(0)
	job := &countingJob{name: "tick", schedule: "* * * * * *"}
	require.NoError(t, s.AddJob(job))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return job.calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)

	stats := s.GetJobStats()["tick"]
	assert.NotNil(t, stats.NextRun)
}

func TestJobHistory_Bounded(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: fmt.Sprint(i), Success: i%2 == 0})
	}

	assert.Len(t, h.Results, maxHistory)
	assert.Equal(t, "50", h.Results[0].JobName)
	assert.Equal(t, "149", h.GetLatestResults(1)[0].JobName)
	assert.Len(t, h.GetLatestResults(500), maxHistory)
	assert.Empty(t, h.GetLatestResults(0))
	assert.InDelta(t, 0.5, h.GetSuccessRate(), 1e-9)
	assert.Len(t, h.GetFailedResults(), 50)
}
