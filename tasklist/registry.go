package tasklist

import (
	"sync/atomic"

	vk "github.com/vulkan-go/vulkan"
)

var nextListIndex uint32

// TaskResourceId is the opaque (graph-index, local-index) pair every
// TaskBufferId/TaskImageId is built from (spec.md section 3).
// graph-index identifies the owning TaskList instance, so ids from two
// different task lists never compare equal even if their local indices
// coincide.
type TaskResourceId struct {
	graphIndex uint32
	index      uint32
	persistent bool
}

// IsPersistent reports whether this id was registered before compile()
// with a fixed concrete handle (true), or declared with a fetch callback
// resolved per execute() (false).
func (id TaskResourceId) IsPersistent() bool { return id.persistent }

// TaskBufferId identifies a buffer resource within one TaskList.
type TaskBufferId struct{ TaskResourceId }

// TaskImageId identifies an image resource within one TaskList.
type TaskImageId struct{ TaskResourceId }

// TaskBufferInfo declares a buffer resource to the Registry. Exactly one
// of Buffer (persistent) or Fetch (transient) must be set.
type TaskBufferInfo struct {
	DebugName string

	// Buffer is the concrete handle for a persistent resource, known at
	// registration time and stable for the TaskList's lifetime.
	Buffer BufferHandle

	// Fetch resolves a transient resource's concrete handle once per
	// execute(). Mutually exclusive with Buffer.
	Fetch BufferFetchFunc
}

// TaskImageInfo declares an image resource to the Registry. Exactly one
// of Image (persistent) or Fetch (transient) must be set.
type TaskImageInfo struct {
	DebugName string

	// Extent is the full mip/layer/aspect extent of the image; every
	// ImageUse's slice must fit within it (spec.md 4.4).
	Extent ImageSlice

	// DefaultViewType is used when a TaskImageUse does not declare its
	// own view_type. Defaults to ImageViewType2d (image.go's
	// CreateImageView does the same).
	DefaultViewType vk.ImageViewType

	Image ImageHandle
	Fetch ImageFetchFunc
}

type bufferEntry struct {
	info       TaskBufferInfo
	state      BufferState
	persistent bool
	resolved   BufferHandle
	haveResolved bool
}

type imageEntry struct {
	info       TaskImageInfo
	state      *ImageState
	persistent bool
	resolved   ImageHandle
	haveResolved bool
	views      map[viewKey]ImageViewHandle
}

type viewKey struct {
	viewType vk.ImageViewType
	slice    ImageSlice
}

// Registry is the Resource Registry (spec.md 4.1): it maps task-list-local
// ids to concrete GPU resources (persistent) or fetch callbacks
// (transient), and tracks each resource's synchronization state.
type Registry struct {
	graphIndex uint32
	buffers    []bufferEntry
	images     []imageEntry
	names      map[string]struct{}
	compiled   bool
}

// NewRegistry creates an empty registry with a graph index unique among
// all Registries created in this process.
func NewRegistry() *Registry {
	return &Registry{
		graphIndex: atomic.AddUint32(&nextListIndex, 1),
		names:      make(map[string]struct{}),
	}
}

func (r *Registry) reserveName(name string) error {
	if name == "" {
		return nil
	}
	if _, exists := r.names[name]; exists {
		return wrapf(ErrDuplicateName, "name %q", name)
	}
	r.names[name] = struct{}{}
	return nil
}

// CreateTaskBuffer registers a buffer resource. Fails once the owning
// TaskList has been compiled.
func (r *Registry) CreateTaskBuffer(info TaskBufferInfo) (TaskBufferId, error) {
	if r.compiled {
		return TaskBufferId{}, wrapf(ErrAlreadyCompiled, "create_task_buffer(%q)", info.DebugName)
	}
	if err := r.reserveName(info.DebugName); err != nil {
		return TaskBufferId{}, err
	}

	persistent := info.Fetch == nil
	entry := bufferEntry{info: info, persistent: persistent}
	if persistent {
		entry.resolved = info.Buffer
		entry.haveResolved = true
	}

	r.buffers = append(r.buffers, entry)
	index := uint32(len(r.buffers) - 1)

	return TaskBufferId{TaskResourceId{graphIndex: r.graphIndex, index: index, persistent: persistent}}, nil
}

// CreateTaskImage registers an image resource.
func (r *Registry) CreateTaskImage(info TaskImageInfo) (TaskImageId, error) {
	if r.compiled {
		return TaskImageId{}, wrapf(ErrAlreadyCompiled, "create_task_image(%q)", info.DebugName)
	}
	if err := r.reserveName(info.DebugName); err != nil {
		return TaskImageId{}, err
	}
	if info.DefaultViewType == 0 {
		info.DefaultViewType = vk.ImageViewType2d
	}

	persistent := info.Fetch == nil
	entry := imageEntry{
		info:       info,
		persistent: persistent,
		state:      NewImageState(info.Extent, ImageAccessNone, vk.ImageLayoutUndefined),
		views:      make(map[viewKey]ImageViewHandle),
	}
	if persistent {
		entry.resolved = info.Image
		entry.haveResolved = true
	}

	r.images = append(r.images, entry)
	index := uint32(len(r.images) - 1)

	return TaskImageId{TaskResourceId{graphIndex: r.graphIndex, index: index, persistent: persistent}}, nil
}

func (r *Registry) bufferAt(id TaskBufferId) (*bufferEntry, error) {
	if id.graphIndex != r.graphIndex || int(id.index) >= len(r.buffers) {
		return nil, wrapf(ErrUnknownResource, "buffer id %v", id)
	}
	return &r.buffers[id.index], nil
}

func (r *Registry) imageAt(id TaskImageId) (*imageEntry, error) {
	if id.graphIndex != r.graphIndex || int(id.index) >= len(r.images) {
		return nil, wrapf(ErrUnknownResource, "image id %v", id)
	}
	return &r.images[id.index], nil
}

// LastBufferAccess returns the access the buffer was last used with: the
// access the compiled plan (terminal hints included) leaves it in. It is
// set by compile, so it is valid once compile has run.
func (r *Registry) LastBufferAccess(id TaskBufferId) (BufferAccess, error) {
	e, err := r.bufferAt(id)
	if err != nil {
		return BufferAccessNone, err
	}
	return e.state.LatestAccess, nil
}

// LastImageLayout returns the layout of every partition intersecting
// slice; callers that query the whole image get a single uniform answer
// as long as the image was left in one layout, matching the common
// "hand off to present" use case (scenario D).
func (r *Registry) LastImageLayout(id TaskImageId, slice ImageSlice) (vk.ImageLayout, error) {
	e, err := r.imageAt(id)
	if err != nil {
		return vk.ImageLayoutUndefined, err
	}
	states := e.state.StateAt(slice)
	if len(states) == 0 {
		return vk.ImageLayoutUndefined, nil
	}
	layout := states[0].LatestLayout
	for _, s := range states[1:] {
		if s.LatestLayout != layout {
			return vk.ImageLayoutUndefined, wrapf(ErrSliceOutOfRange, "slice spans partitions with differing layouts")
		}
	}
	return layout, nil
}

// LastImageAccess mirrors LastImageLayout for access instead of layout.
func (r *Registry) LastImageAccess(id TaskImageId, slice ImageSlice) (ImageAccess, error) {
	e, err := r.imageAt(id)
	if err != nil {
		return ImageAccessNone, err
	}
	states := e.state.StateAt(slice)
	if len(states) == 0 {
		return ImageAccessNone, nil
	}
	access := states[0].LatestAccess
	for _, s := range states[1:] {
		if s.LatestAccess != access {
			return ImageAccessNone, wrapf(ErrSliceOutOfRange, "slice spans partitions with differing accesses")
		}
	}
	return access, nil
}

// markCompiled freezes the registry against further CreateTaskBuffer/
// CreateTaskImage calls.
func (r *Registry) markCompiled() { r.compiled = true }

// resetTransient clears the per-execute resolution cache for every
// transient (fetch-backed) resource, called at the start of Executor.Execute.
func (r *Registry) resetTransient() {
	for i := range r.buffers {
		if !r.buffers[i].persistent {
			r.buffers[i].haveResolved = false
			r.buffers[i].resolved = nil
		}
	}
	for i := range r.images {
		if !r.images[i].persistent {
			r.images[i].haveResolved = false
			r.images[i].resolved = nil
			r.images[i].views = make(map[viewKey]ImageViewHandle)
		}
	}
}

// resolveBuffer resolves id's concrete handle, invoking its fetch
// callback at most once per execute.
func (r *Registry) resolveBuffer(id TaskBufferId) (BufferHandle, error) {
	e, err := r.bufferAt(id)
	if err != nil {
		return nil, err
	}
	if e.haveResolved {
		return e.resolved, nil
	}
	h, err := e.info.Fetch()
	if err != nil {
		return nil, err
	}
	e.resolved = h
	e.haveResolved = true
	return h, nil
}

// resolveImage resolves id's concrete handle, invoking its fetch callback
// at most once per execute.
func (r *Registry) resolveImage(id TaskImageId) (ImageHandle, error) {
	e, err := r.imageAt(id)
	if err != nil {
		return nil, err
	}
	if e.haveResolved {
		return e.resolved, nil
	}
	h, err := e.info.Fetch()
	if err != nil {
		return nil, err
	}
	e.resolved = h
	e.haveResolved = true
	return h, nil
}

// resolveImageView lazily creates (and memoizes for this execute) the
// view a task's declared view_type requires over the given slice,
// resolving the Open Question in DESIGN.md: each task gets the view
// matching its own declared view_type.
func (r *Registry) resolveImageView(id TaskImageId, viewType vk.ImageViewType, slice ImageSlice, makeView ImageViewFunc) (ImageViewHandle, error) {
	e, err := r.imageAt(id)
	if err != nil {
		return nil, err
	}
	if viewType == 0 {
		viewType = e.info.DefaultViewType
	}
	if slice.Empty() {
		slice = e.info.Extent
	}
	key := viewKey{viewType: viewType, slice: slice}
	if v, ok := e.views[key]; ok {
		return v, nil
	}
	image, err := r.resolveImage(id)
	if err != nil {
		return nil, err
	}
	view, err := makeView(image, viewType, slice)
	if err != nil {
		return nil, err
	}
	e.views[key] = view
	return view, nil
}
