package tasklist

import (
	"testing"

	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func noopCallback(ti *TaskInterface) {}

// Scenario A (spec.md 8): a write followed by two compatible reads batches
// the reads into one barrier instead of emitting one per read.
func TestCompileReadBatching(t *testing.T) {
	r := NewRegistry()
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{}})
	require.NoError(t, err)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "write", Callback: noopCallback, Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferWrite)}}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "read1", Callback: noopCallback, Uses: []TaskUse{BufferUse(bufID, BufferAccessShaderRead)}}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "read2", Callback: noopCallback, Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferRead)}}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)

	require.Len(t, plan.Batches, 2)
	require.Equal(t, "write", plan.Batches[0].Tasks[0].DebugName)
	require.Len(t, plan.Batches[0].Barriers.Memory, 1)

	require.Len(t, plan.Batches[1].Tasks, 2)
	require.Len(t, plan.Batches[1].Barriers.Memory, 1, "the two compatible reads must share one barrier")

	merged := plan.Batches[1].Barriers.Memory[0]
	require.NotZero(t, merged.DstAccess&vk.AccessFlags(vk.AccessShaderReadBit))
	require.NotZero(t, merged.DstAccess&vk.AccessFlags(vk.AccessTransferReadBit))
}

// Write -> read -> write (ping-pong) must produce three separate batches:
// RAW and WAR/WAW transitions always need a barrier of their own.
func TestCompileWriteAfterReadSplitsBatches(t *testing.T) {
	r := NewRegistry()
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{}})
	require.NoError(t, err)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "w1", Callback: noopCallback, Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferWrite)}}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "r1", Callback: noopCallback, Uses: []TaskUse{BufferUse(bufID, BufferAccessShaderRead)}}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "w2", Callback: noopCallback, Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferWrite)}}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)

	require.Len(t, plan.Batches, 3)
	require.Equal(t, "w1", plan.Batches[0].Tasks[0].DebugName)
	require.Equal(t, "r1", plan.Batches[1].Tasks[0].DebugName)
	require.Equal(t, "w2", plan.Batches[2].Tasks[0].DebugName)

	require.Len(t, plan.Batches[1].Barriers.Memory, 1)
	require.Len(t, plan.Batches[2].Barriers.Memory, 1)
}

// Scenario C (spec.md 8): disjoint-slice writes to the same image share a
// batch, since neither depends on data the other produced — two image
// barriers are still needed, one per layer range.
func TestCompileDisjointWritesShareBatch(t *testing.T) {
	r := NewRegistry()
	full := colorSlice(0, 1, 0, 4)
	imgID, err := r.CreateTaskImage(TaskImageInfo{DebugName: "img", Extent: full, Image: &fakeImage{}})
	require.NoError(t, err)

	left := colorSlice(0, 1, 0, 2)
	right := colorSlice(0, 1, 2, 2)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "left", Callback: noopCallback, Uses: []TaskUse{ImageUse(imgID, ImageAccessTransferWrite, left, 0)}}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "right", Callback: noopCallback, Uses: []TaskUse{ImageUse(imgID, ImageAccessTransferWrite, right, 0)}}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)
	require.Len(t, plan.Batches, 1)
	require.Len(t, plan.Batches[0].Tasks, 2)
	require.Len(t, plan.Batches[0].Barriers.Images, 2)
}

// Once an image is already fully in a read state/layout, further reads of
// disjoint sub-slices join the same batch and need no additional barrier.
func TestCompileDisjointCompatibleReadsShareBatch(t *testing.T) {
	r := NewRegistry()
	full := colorSlice(0, 1, 0, 4)
	imgID, err := r.CreateTaskImage(TaskImageInfo{DebugName: "img", Extent: full, Image: &fakeImage{}})
	require.NoError(t, err)

	left := colorSlice(0, 1, 0, 2)
	right := colorSlice(0, 1, 2, 2)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "prime", Callback: noopCallback, Uses: []TaskUse{ImageUse(imgID, ImageAccessShaderRead, full, 0)}}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "readLeft", Callback: noopCallback, Uses: []TaskUse{ImageUse(imgID, ImageAccessShaderRead, left, 0)}}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "readRight", Callback: noopCallback, Uses: []TaskUse{ImageUse(imgID, ImageAccessShaderRead, right, 0)}}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)

	require.Len(t, plan.Batches, 1)
	require.Len(t, plan.Batches[0].Tasks, 3)
	require.Len(t, plan.Batches[0].Barriers.Images, 1, "already-compatible reads need no additional barrier")
}

// Terminal hint (scenario D): handing a color-attachment image off to
// present emits one terminal image barrier.
func TestCompileTerminalHintPresent(t *testing.T) {
	r := NewRegistry()
	full := colorSlice(0, 1, 0, 1)
	imgID, err := r.CreateTaskImage(TaskImageInfo{DebugName: "swapchain", Extent: full, Image: &fakeImage{}})
	require.NoError(t, err)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "draw", Callback: noopCallback, Uses: []TaskUse{ImageUse(imgID, ImageAccessColorAttachment, full, 0)}}))

	plan, err := compilePlan(b.Tasks(), r, []TerminalHint{ImageTerminalHint(imgID, ImageAccessPresent, full)})
	require.NoError(t, err)

	require.Len(t, plan.Terminal.Images, 1)
	barrier := plan.Terminal.Images[0]
	require.Equal(t, vk.ImageLayoutColorAttachmentOptimal, barrier.OldLayout)
	require.Equal(t, vk.ImageLayoutPresentSrc, barrier.NewLayout)
}

// Terminal hint matching the already-current state is a no-op: no barrier
// should be emitted.
func TestCompileTerminalHintNoopWhenAlreadySatisfied(t *testing.T) {
	r := NewRegistry()
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{}})
	require.NoError(t, err)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "write", Callback: noopCallback, Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferWrite)}}))

	plan, err := compilePlan(b.Tasks(), r, []TerminalHint{BufferTerminalHint(bufID, BufferAccessTransferWrite)})
	require.NoError(t, err)
	require.Empty(t, plan.Terminal.Memory)
}

func TestCompileWarningsReadNeverWritten(t *testing.T) {
	r := NewRegistry()
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "input", Buffer: &fakeBuffer{}})
	require.NoError(t, err)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "read", Callback: noopCallback, Uses: []TaskUse{BufferUse(bufID, BufferAccessShaderRead)}}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)
	require.Len(t, plan.Warnings, 1)
	require.Equal(t, "input", plan.Warnings[0].ResourceName)
}

func TestCompileTaskNeverSplitAcrossBatches(t *testing.T) {
	r := NewRegistry()
	bufID, err := r.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{}})
	require.NoError(t, err)
	imgID, err := r.CreateTaskImage(TaskImageInfo{DebugName: "img", Extent: fullSlice2D(), Image: &fakeImage{}})
	require.NoError(t, err)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "prime buf", Callback: noopCallback, Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferWrite)}}))
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "mixed", Callback: noopCallback, Uses: []TaskUse{
		BufferUse(bufID, BufferAccessShaderRead),
		ImageUse(imgID, ImageAccessTransferWrite, fullSlice2D(), 0),
	}}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)

	for _, batch := range plan.Batches {
		found := false
		for _, task := range batch.Tasks {
			if task.DebugName == "mixed" {
				found = true
			}
		}
		if found {
			require.Len(t, batch.Tasks, 1, "a task with one conflicting use must not share a batch with anything else")
		}
	}
}

// spec.md 8's boundary behavior: overlapping image slices within one task
// with identical access are treated as one use covering the union. The
// second overlapping use must not synthesize a spurious extra barrier for a
// transition its own task already made.
func TestCompileOverlappingSameTaskUseEmitsOneBarrier(t *testing.T) {
	r := NewRegistry()
	full := colorSlice(0, 1, 0, 4)
	imgID, err := r.CreateTaskImage(TaskImageInfo{DebugName: "img", Extent: full, Image: &fakeImage{}})
	require.NoError(t, err)

	left := colorSlice(0, 1, 0, 3)
	right := colorSlice(0, 1, 1, 3)

	b := NewBuilder(r)
	require.NoError(t, b.AddTask(TaskInfo{DebugName: "both", Callback: noopCallback, Uses: []TaskUse{
		ImageUse(imgID, ImageAccessTransferWrite, left, 0),
		ImageUse(imgID, ImageAccessTransferWrite, right, 0),
	}}))

	plan, err := compilePlan(b.Tasks(), r, nil)
	require.NoError(t, err)
	require.Len(t, plan.Batches, 1)
	require.Len(t, plan.Batches[0].Barriers.Images, 1, "overlapping same-task uses must not double-barrier their shared transition")
}
