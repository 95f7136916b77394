package tasklist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecutorRunsTaskCallbacksInOrder(t *testing.T) {
	r := NewRegistry()
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{name: "buf"}})
	require.NoError(t, err)

	b := NewBuilder(r)
	var order []string
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "first", Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferWrite)},
		Callback: func(ti *TaskInterface) { order = append(order, "first") }}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "second", Uses: []TaskUse{BufferUse(bufID, BufferAccessShaderRead)},
		Callback: func(ti *TaskInterface) { order = append(order, "second") }}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)

	dev := newFakeDevice()
	exec := NewExecutor(dev, r, fakeMakeView)
	cls, err := exec.Execute(plan)
	require.NoError(t, err)

	require.Equal(t, []string{"first", "second"}, order)
	require.NotEmpty(t, dev.cl.calls, "barriers must be issued through the command list")
	require.Len(t, cls, 1, "Execute must return the recorded command list for submission")
	require.Same(t, dev.cl, cls[0])
}

func TestExecutorReusesOneCommandList(t *testing.T) {
	r := NewRegistry()
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{}})
	require.NoError(t, err)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferWrite)}, Callback: noopCallback}))
	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)

	dev := newFakeDevice()
	exec := NewExecutor(dev, r, fakeMakeView)

	cls1, err := exec.Execute(plan)
	require.NoError(t, err)
	cls2, err := exec.Execute(plan)
	require.NoError(t, err)
	require.Equal(t, cls1, cls2)

	first, err := exec.commandList()
	require.NoError(t, err)
	require.Same(t, dev.cl, first)
}

func TestTaskInterfaceResolvesDeclaredResources(t *testing.T) {
	r := NewRegistry()
	buf := &fakeBuffer{name: "buf"}
	img := &fakeImage{name: "img"}
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: buf})
	require.NoError(t, err)
	imgID, err := r.CreateTaskImage(TaskImageInfo{DebugName: "img", Extent: fullSlice2D(), Image: img})
	require.NoError(t, err)

	b := NewBuilder(r)

	var gotBuf BufferHandle
	var gotImg ImageHandle
	var gotView ImageViewHandle
	var resolveErr error

	require.NoError(t, b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{
		BufferUse(bufID, BufferAccessTransferRead),
		ImageUse(imgID, ImageAccessTransferRead, fullSlice2D(), 0),
	}, Callback: func(ti *TaskInterface) {
		gotBuf, resolveErr = ti.Buffer(bufID)
		require.NoError(t, resolveErr)
		gotImg, resolveErr = ti.Image(imgID)
		require.NoError(t, resolveErr)
		gotView, resolveErr = ti.ImageView(imgID)
		require.NoError(t, resolveErr)
	}}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)

	exec := NewExecutor(newFakeDevice(), r, fakeMakeView)
	_, err = exec.Execute(plan)
	require.NoError(t, err)

	require.Same(t, buf, gotBuf.(*fakeBuffer))
	require.Same(t, img, gotImg.(*fakeImage))
	require.NotNil(t, gotView)
}

func TestTaskInterfaceRejectsUndeclaredResource(t *testing.T) {
	r := NewRegistry()
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{}})
	require.NoError(t, err)
	otherID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "other", Buffer: &fakeBuffer{}})
	require.NoError(t, err)

	b := NewBuilder(r)
	var callbackErr error
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferRead)},
		Callback: func(ti *TaskInterface) {
			_, callbackErr = ti.Buffer(otherID)
		}}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)

	exec := NewExecutor(newFakeDevice(), r, fakeMakeView)
	_, err = exec.Execute(plan)
	require.NoError(t, err)
	require.ErrorIs(t, callbackErr, ErrUnknownResource)
}

func TestExecutorResolvesImageBarrierPlaceholder(t *testing.T) {
	r := NewRegistry()
	img := &fakeImage{name: "img"}
	imgID, err := r.CreateTaskImage(TaskImageInfo{DebugName: "img", Extent: fullSlice2D(), Image: img})
	require.NoError(t, err)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{ImageUse(imgID, ImageAccessTransferWrite, fullSlice2D(), 0)}, Callback: noopCallback}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)
	require.Len(t, plan.Batches[0].Barriers.Images, 1)

	dev := newFakeDevice()
	exec := NewExecutor(dev, r, fakeMakeView)
	_, err = exec.Execute(plan)
	require.NoError(t, err)

	require.NotEmpty(t, dev.cl.calls)
	resolvedSomewhere := false
	for _, call := range dev.cl.calls {
		for _, ib := range call.Images {
			if same, ok := ib.Image.(*fakeImage); ok && same == img {
				resolvedSomewhere = true
			}
		}
	}
	require.True(t, resolvedSomewhere, "the image barrier's placeholder id must be resolved to the concrete handle before PipelineBarrier")
}
