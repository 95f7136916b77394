package tasklist

import (
	vk "github.com/vulkan-go/vulkan"
)

// useKind tags a TaskUse as touching a buffer or an image. Storing both
// variants behind one struct with a tag (rather than an interface) keeps
// iteration over a task's uses allocation-free, mirroring the original
// C++ design note's "generic storage with a tag byte is an implementation
// optimization for iteration" (spec.md design note 9.2).
type useKind int

const (
	useKindBuffer useKind = iota
	useKindImage
)

// TaskUse is one task's declaration that it will touch a single resource
// with a single access. Build one with BufferUse or ImageUse.
type TaskUse struct {
	kind useKind

	bufferID     TaskBufferId
	bufferAccess BufferAccess

	imageID     TaskImageId
	imageAccess ImageAccess
	slice       ImageSlice
	viewType    vk.ImageViewType
}

// BufferUse declares that a task touches buffer id with the given access.
func BufferUse(id TaskBufferId, access BufferAccess) TaskUse {
	return TaskUse{kind: useKindBuffer, bufferID: id, bufferAccess: access}
}

// ImageUse declares that a task touches the given slice of image id with
// the given access. A zero slice means "the image's full declared
// extent". viewType is the view the task's TaskInterface will receive for
// this use; zero means "the image's default view type".
func ImageUse(id TaskImageId, access ImageAccess, slice ImageSlice, viewType vk.ImageViewType) TaskUse {
	return TaskUse{kind: useKindImage, imageID: id, imageAccess: access, slice: slice, viewType: viewType}
}

// IsBuffer reports whether this use touches a buffer.
func (u TaskUse) IsBuffer() bool { return u.kind == useKindBuffer }

// IsImage reports whether this use touches an image.
func (u TaskUse) IsImage() bool { return u.kind == useKindImage }

// Buffer returns the (id, access) pair of a buffer use. Panics if
// !u.IsBuffer().
func (u TaskUse) Buffer() (TaskBufferId, BufferAccess) {
	if !u.IsBuffer() {
		panic("tasklist: Buffer() called on an image TaskUse")
	}
	return u.bufferID, u.bufferAccess
}

// Image returns the (id, access, slice, view type) of an image use.
// Panics if !u.IsImage().
func (u TaskUse) Image() (TaskImageId, ImageAccess, ImageSlice, vk.ImageViewType) {
	if !u.IsImage() {
		panic("tasklist: Image() called on a buffer TaskUse")
	}
	return u.imageID, u.imageAccess, u.slice, u.viewType
}

// TaskCallback is invoked once per execute(), in declaration order, with a
// TaskInterface scoped to this task's declared uses.
type TaskCallback func(ti *TaskInterface)

// TaskInfo declares one task to the Graph Builder (spec.md section 6).
type TaskInfo struct {
	DebugName string
	Uses      []TaskUse
	Callback  TaskCallback
	UserData  interface{}
}

// Task is the Graph Builder's internal record of an added task: the
// frozen TaskInfo plus its position in declaration order.
type Task struct {
	TaskInfo
	Index int
}
