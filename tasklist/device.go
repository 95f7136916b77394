package tasklist

import (
	vk "github.com/vulkan-go/vulkan"
)

// BufferHandle, ImageHandle and ImageViewHandle are the concrete resource
// kinds the Device API (spec.md section 6) hands back. The Task List core
// never looks inside them; it only threads them through to barrier calls
// and to the TaskInterface a task callback receives. The vkg package's
// *Buffer, *Image and *ImageView satisfy these trivially (any concrete
// type does), which is what keeps the core decoupled from a particular
// graphics backend.
type (
	BufferHandle    interface{}
	ImageHandle     interface{}
	ImageViewHandle interface{}
)

// BufferFetchFunc resolves a transient buffer's concrete handle. Invoked
// at most once per execute() (memoized by the Registry).
type BufferFetchFunc func() (BufferHandle, error)

// ImageFetchFunc resolves a transient image's concrete handle.
type ImageFetchFunc func() (ImageHandle, error)

// ImageViewFunc creates a view of the given type/slice over a concrete
// image. The device API is responsible for caching/destroying views as it
// sees fit; the Task List only asks for one view per (image, view type,
// slice) it actually uses.
type ImageViewFunc func(image ImageHandle, viewType vk.ImageViewType, slice ImageSlice) (ImageViewHandle, error)

// MemoryBarrier is a synchronization record with no image layout
// transition: a plain execution + memory dependency (spec.md 3).
type MemoryBarrier struct {
	SrcStage  vk.PipelineStageFlags
	DstStage  vk.PipelineStageFlags
	SrcAccess vk.AccessFlags
	DstAccess vk.AccessFlags
}

// ImageBarrier is a synchronization record that also transitions an image
// sub-resource's layout (spec.md 3). SignalIndex/WaitIndex are non-zero
// only when the Compiler decided to express this barrier as a split
// barrier between two non-adjacent batches (spec.md design note 9,
// single-queue only per the Open Questions resolution in DESIGN.md).
type ImageBarrier struct {
	SrcStage  vk.PipelineStageFlags
	DstStage  vk.PipelineStageFlags
	SrcAccess vk.AccessFlags
	DstAccess vk.AccessFlags
	OldLayout vk.ImageLayout
	NewLayout vk.ImageLayout
	Image     ImageHandle
	Slice     ImageSlice

	SignalIndex int
	WaitIndex   int
}

// CommandList is the subset of command-buffer recording the Task List
// core requires from the Device API (spec.md section 6). vkg.CommandBuffer
// implements it.
type CommandList interface {
	// PipelineBarrier issues one vkCmdPipelineBarrier-equivalent call
	// covering every given memory and image barrier. All barriers passed
	// together share no particular stage mask; the implementation is
	// responsible for combining each barrier's own stage masks into the
	// single src/dst stage mask the underlying API call needs.
	PipelineBarrier(memoryBarriers []MemoryBarrier, imageBarriers []ImageBarrier) error
}

// Device creates the command lists the Executor records batches and
// barriers into.
type Device interface {
	CreateCommandList() (CommandList, error)
}
