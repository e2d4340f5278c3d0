package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/job"
)

func TestService_RunsRegisteredTasks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var runs atomic.Int32

	s := job.NewService()
	s.RegisterJob("count", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	})
	s.RegisterJob("fail", time.Hour, func(context.Context) error {
		return errors.New("sweep failed")
	})
	s.RegisterJob("panic", time.Hour, func(context.Context) error {
		panic("bad sweep")
	})

	s.Start(ctx)

	// Every task runs once at startup; a failing or panicking task must not
	// take the others down.
	require.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	s.Stop()
}
