package tasklist

import (
	"github.com/pkg/errors"
)

// Configuration errors, returned synchronously from the Resource Registry
// and Graph Builder calls that detect them. The Task List's state is left
// unchanged when one of these is returned (spec.md section 7).
var (
	// ErrUnknownResource: a use references a TaskBufferId/TaskImageId the
	// registry has never seen.
	ErrUnknownResource = errors.New("tasklist: unknown resource")

	// ErrSelfConflict: a task declares two uses of the same resource with
	// different accesses that are not both reads (and, for images, do not
	// agree on layout). Identical accesses, and image uses over disjoint
	// slices, are not conflicts.
	ErrSelfConflict = errors.New("tasklist: task has internally conflicting uses of the same resource")

	// ErrSliceOutOfRange: an ImageUse's slice is not contained within the
	// resource's declared extent.
	ErrSliceOutOfRange = errors.New("tasklist: image slice out of range")

	// ErrDuplicateName: create_task_buffer/create_task_image was called
	// with a non-empty debug name already used by another resource
	// (persistent or transient) of the same registry.
	ErrDuplicateName = errors.New("tasklist: duplicate persistent resource name")

	// ErrAlreadyCompiled: add_task/create_task_buffer/create_task_image
	// was called after compile().
	ErrAlreadyCompiled = errors.New("tasklist: task list is no longer in the Building state")

	// ErrNotCompiled: compile()-only state was queried before compile()
	// succeeded.
	ErrNotCompiled = errors.New("tasklist: task list has not been compiled")
)

// wrapf is a thin helper around errors.Wrapf so call sites read as
// "wrapf(sentinel, context, args...)" instead of repeating the package
// prefix at each call site.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
