package tasklist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, TaskBufferId, TaskImageId) {
	t.Helper()
	r := NewRegistry()
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{}})
	require.NoError(t, err)
	imgID, err := r.CreateTaskImage(TaskImageInfo{DebugName: "img", Extent: colorSlice(0, 1, 0, 4), Image: &fakeImage{}})
	require.NoError(t, err)
	return r, bufID, imgID
}

func TestAddTaskUnknownResource(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	other := NewRegistry()
	otherBuf, err := other.CreateTaskBuffer(TaskBufferInfo{Buffer: &fakeBuffer{}})
	require.NoError(t, err)

	b := NewBuilder(r)
	err = b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{BufferUse(otherBuf, BufferAccessTransferRead)}})
	require.ErrorIs(t, err, ErrUnknownResource)
}

func TestAddTaskSliceOutOfRange(t *testing.T) {
	r, _, imgID := newTestRegistry(t)
	b := NewBuilder(r)
	oob := colorSlice(0, 2, 0, 8)
	err := b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{ImageUse(imgID, ImageAccessShaderRead, oob, 0)}})
	require.ErrorIs(t, err, ErrSliceOutOfRange)
}

func TestAddTaskSelfConflictBuffer(t *testing.T) {
	r, bufID, _ := newTestRegistry(t)
	b := NewBuilder(r)
	err := b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{
		BufferUse(bufID, BufferAccessTransferRead),
		BufferUse(bufID, BufferAccessTransferWrite),
	}})
	require.ErrorIs(t, err, ErrSelfConflict)
}

func TestAddTaskSelfConflictImageLayout(t *testing.T) {
	r, _, imgID := newTestRegistry(t)
	b := NewBuilder(r)
	full := colorSlice(0, 1, 0, 4)
	err := b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{
		ImageUse(imgID, ImageAccessShaderRead, full, 0),
		ImageUse(imgID, ImageAccessTransferRead, full, 0),
	}})
	require.ErrorIs(t, err, ErrSelfConflict)
}

func TestAddTaskDisjointImageSlicesNeverConflict(t *testing.T) {
	r, _, imgID := newTestRegistry(t)
	b := NewBuilder(r)
	err := b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{
		ImageUse(imgID, ImageAccessTransferWrite, colorSlice(0, 1, 0, 2), 0),
		ImageUse(imgID, ImageAccessTransferRead, colorSlice(0, 1, 2, 2), 0),
	}})
	require.NoError(t, err)
}

func TestAddTaskCompatibleReadsNeverConflict(t *testing.T) {
	r, bufID, _ := newTestRegistry(t)
	b := NewBuilder(r)
	err := b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{
		BufferUse(bufID, BufferAccessShaderRead),
		BufferUse(bufID, BufferAccessTransferRead),
	}})
	require.NoError(t, err)
}

func TestAddTaskAfterCompiledFails(t *testing.T) {
	r, bufID, _ := newTestRegistry(t)
	b := NewBuilder(r)
	b.markCompiled()
	err := b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferRead)}})
	require.ErrorIs(t, err, ErrAlreadyCompiled)
}

func TestTasksOrderedByDeclaration(t *testing.T) {
	r, bufID, _ := newTestRegistry(t)
	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "first", Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferRead)}}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "second", Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferRead)}}))

	tasks := b.Tasks()
	require.Len(t, tasks, 2)
	require.Equal(t, "first", tasks[0].DebugName)
	require.Equal(t, 0, tasks[0].Index)
	require.Equal(t, "second", tasks[1].DebugName)
	require.Equal(t, 1, tasks[1].Index)
}
