package vkg

import (
	"github.com/study-game-engines/daxa/tasklist"
)

// TaskListDevice adapts a Device/CommandPool pair to tasklist.Device, so a
// TaskList can be driven without any direct vkg dependency in the
// tasklist package itself. Each CreateCommandList call allocates a fresh
// one-time command buffer from Pool and begins recording it; the caller
// is responsible for ending and submitting it once the TaskList has
// finished issuing work into it.
type TaskListDevice struct {
	Device *Device
	Pool   *CommandPool
}

// NewTaskListDevice creates a transient command pool on q and wraps it
// together with d to satisfy tasklist.Device.
func NewTaskListDevice(d *Device, q *QueueFamily) (*TaskListDevice, error) {
	pool, err := d.CreateCommandPool(q)
	if err != nil {
		return nil, err
	}
	return &TaskListDevice{Device: d, Pool: pool}, nil
}

// CreateCommandList implements tasklist.Device.
func (t *TaskListDevice) CreateCommandList() (tasklist.CommandList, error) {
	cb, err := t.Pool.AllocateBuffer()
	if err != nil {
		return nil, err
	}
	if err := cb.BeginOneTime(); err != nil {
		t.Pool.FreeBuffer(cb)
		return nil, err
	}
	return cb, nil
}

// Destroy releases the owned command pool.
func (t *TaskListDevice) Destroy() {
	t.Pool.Destroy()
}
