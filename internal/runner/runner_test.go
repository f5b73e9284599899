package runner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"graphpart/internal/partition"
	"graphpart/internal/runner"
)

func TestRunReturnsResultSynchronously(t *testing.T) {
	r := runner.New(2, time.Second, time.Minute, time.Minute)
	want := partition.New([][]int{{0, 1}, {2, 3}})

	got, err := r.Run(context.Background(), func(ctx context.Context) (partition.Partition, error) {
		return want, nil
	})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRunPropagatesWorkError(t *testing.T) {
	r := runner.New(2, time.Second, time.Minute, time.Minute)
	boom := errors.New("boom")

	_, err := r.Run(context.Background(), func(ctx context.Context) (partition.Partition, error) {
		return partition.Partition{}, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestRunRespectsJobTimeout(t *testing.T) {
	r := runner.New(2, 10*time.Millisecond, time.Minute, time.Minute)

	_, err := r.Run(context.Background(), func(ctx context.Context) (partition.Partition, error) {
		select {
		case <-ctx.Done():
			return partition.Partition{}, ctx.Err()
		case <-time.After(time.Second):
			return partition.Partition{}, nil
		}
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSubmitAndGetTracksJobLifecycle(t *testing.T) {
	r := runner.New(2, time.Second, time.Minute, time.Minute)
	want := partition.New([][]int{{0}, {1}})

	id := r.Submit(func(ctx context.Context) (partition.Partition, error) {
		return want, nil
	})

	require.Eventually(t, func() bool {
		job, err := r.Get(id)
		return err == nil && job.Status == runner.StatusCompleted
	}, time.Second, 5*time.Millisecond)

	job, err := r.Get(id)
	require.NoError(t, err)
	require.Equal(t, want, job.Result)
}
