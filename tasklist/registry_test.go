package tasklist

import (
	"testing"

	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func TestCreateTaskBufferPersistent(t *testing.T) {
	r := NewRegistry()
	buf := &fakeBuffer{name: "vertices"}
	id, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "vertices", Buffer: buf})
	require.NoError(t, err)
	require.True(t, id.IsPersistent())

	resolved, err := r.resolveBuffer(id)
	require.NoError(t, err)
	require.Same(t, buf, resolved.(*fakeBuffer))
}

func TestCreateTaskBufferTransient(t *testing.T) {
	r := NewRegistry()
	calls := 0
	id, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "scratch", Fetch: func() (BufferHandle, error) {
		calls++
		return &fakeBuffer{name: "scratch"}, nil
	}})
	require.NoError(t, err)
	require.False(t, id.IsPersistent())

	_, err = r.resolveBuffer(id)
	require.NoError(t, err)
	_, err = r.resolveBuffer(id)
	require.NoError(t, err)
	require.Equal(t, 1, calls, "fetch must be memoized within one execute")

	r.resetTransient()
	_, err = r.resolveBuffer(id)
	require.NoError(t, err)
	require.Equal(t, 2, calls, "fetch must re-run after resetTransient")
}

func TestCreateTaskBufferDuplicateName(t *testing.T) {
	r := NewRegistry()
	_, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "dup", Buffer: &fakeBuffer{}})
	require.NoError(t, err)
	_, err = r.CreateTaskBuffer(TaskBufferInfo{DebugName: "dup", Buffer: &fakeBuffer{}})
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestRegistryUnknownResource(t *testing.T) {
	r1 := NewRegistry()
	r2 := NewRegistry()

	id, err := r1.CreateTaskBuffer(TaskBufferInfo{Buffer: &fakeBuffer{}})
	require.NoError(t, err)

	_, err = r2.bufferAt(id)
	require.ErrorIs(t, err, ErrUnknownResource)
}

func TestCreateTaskBufferAfterCompiled(t *testing.T) {
	r := NewRegistry()
	r.markCompiled()
	_, err := r.CreateTaskBuffer(TaskBufferInfo{Buffer: &fakeBuffer{}})
	require.ErrorIs(t, err, ErrAlreadyCompiled)
}

func TestCreateTaskImageDefaultViewType(t *testing.T) {
	r := NewRegistry()
	id, err := r.CreateTaskImage(TaskImageInfo{Extent: fullSlice2D(), Image: &fakeImage{name: "target"}})
	require.NoError(t, err)

	entry, err := r.imageAt(id)
	require.NoError(t, err)
	require.Equal(t, vk.ImageViewType2d, entry.info.DefaultViewType)
}

func TestLastImageLayoutUniform(t *testing.T) {
	r := NewRegistry()
	id, err := r.CreateTaskImage(TaskImageInfo{Extent: fullSlice2D(), Image: &fakeImage{}})
	require.NoError(t, err)

	layout, err := r.LastImageLayout(id, ImageSlice{})
	require.NoError(t, err)
	require.Equal(t, vk.ImageLayoutUndefined, layout)
}

func TestLastImageLayoutSplitIsError(t *testing.T) {
	r := NewRegistry()
	full := colorSlice(0, 4, 0, 1)
	id, err := r.CreateTaskImage(TaskImageInfo{Extent: full, Image: &fakeImage{}})
	require.NoError(t, err)

	entry, err := r.imageAt(id)
	require.NoError(t, err)
	entry.state.Update(colorSlice(0, 2, 0, 1), ImageAccessTransferWrite, vk.ImageLayoutTransferDstOptimal)

	_, err = r.LastImageLayout(id, full)
	require.ErrorIs(t, err, ErrSliceOutOfRange)
}

func TestResolveImageViewMemoizesPerSliceAndType(t *testing.T) {
	r := NewRegistry()
	img := &fakeImage{name: "color"}
	id, err := r.CreateTaskImage(TaskImageInfo{Extent: fullSlice2D(), Image: img})
	require.NoError(t, err)

	calls := 0
	makeView := func(image ImageHandle, viewType vk.ImageViewType, slice ImageSlice) (ImageViewHandle, error) {
		calls++
		return &fakeImageView{}, nil
	}

	v1, err := r.resolveImageView(id, vk.ImageViewType2d, fullSlice2D(), makeView)
	require.NoError(t, err)
	v2, err := r.resolveImageView(id, vk.ImageViewType2d, fullSlice2D(), makeView)
	require.NoError(t, err)
	require.Same(t, v1, v2)
	require.Equal(t, 1, calls)

	_, err = r.resolveImageView(id, vk.ImageViewTypeCube, fullSlice2D(), makeView)
	require.NoError(t, err)
	require.Equal(t, 2, calls, "a different view type must create a new view")
}
