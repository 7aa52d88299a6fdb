package vsphere

import (
	"context"

	"github.com/vmware/govmomi/object"
)

// awaiter blocks until a remote task reaches a terminal state (success or
// fault). Clone and destroy go through it; power operations do not wait.
type awaiter interface {
	Await(ctx context.Context, task *object.Task) error
}

// taskAwaiter delegates to the endpoint's own task tracking. There is no
// local polling interval and no timeout; cancellation comes only from the
// caller's context.
type taskAwaiter struct{}

func (taskAwaiter) Await(ctx context.Context, task *object.Task) error {
	_, err := task.WaitForResult(ctx, nil)
	return err
}
