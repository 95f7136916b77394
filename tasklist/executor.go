package tasklist

// TaskInterface is what a TaskCallback receives: the command list to
// record into, plus accessors that resolve a task's declared uses to
// concrete device handles (spec.md 4.6). Resolution is lazy and memoized
// per execute() by the Registry, so calling Buffer/Image/ImageView twice
// for the same id within one execute is free.
type TaskInterface struct {
	CommandList CommandList

	task     Task
	registry *Registry
	makeView ImageViewFunc
}

// Task returns the full declaration (uses, debug name, user data) of the
// task currently executing.
func (ti *TaskInterface) Task() Task { return ti.task }

// Buffer resolves id to its concrete handle. Returns ErrUnknownResource
// if the current task did not declare a use of id.
func (ti *TaskInterface) Buffer(id TaskBufferId) (BufferHandle, error) {
	if !ti.usesBuffer(id) {
		return nil, wrapf(ErrUnknownResource, "task %q does not use buffer %v", ti.task.DebugName, id)
	}
	return ti.registry.resolveBuffer(id)
}

// Image resolves id to its concrete handle.
func (ti *TaskInterface) Image(id TaskImageId) (ImageHandle, error) {
	if !ti.usesImage(id) {
		return nil, wrapf(ErrUnknownResource, "task %q does not use image %v", ti.task.DebugName, id)
	}
	return ti.registry.resolveImage(id)
}

// ImageView resolves the view matching the current task's declared use of
// id: the view type and slice it was declared with (or the image's
// default view type / full extent, if left zero).
func (ti *TaskInterface) ImageView(id TaskImageId) (ImageViewHandle, error) {
	u, ok := ti.findImageUse(id)
	if !ok {
		return nil, wrapf(ErrUnknownResource, "task %q does not use image %v", ti.task.DebugName, id)
	}
	_, _, slice, viewType := u.Image()
	return ti.registry.resolveImageView(id, viewType, slice, ti.makeView)
}

func (ti *TaskInterface) usesBuffer(id TaskBufferId) bool {
	for _, u := range ti.task.Uses {
		if u.IsBuffer() {
			uid, _ := u.Buffer()
			if uid == id {
				return true
			}
		}
	}
	return false
}

func (ti *TaskInterface) usesImage(id TaskImageId) bool {
	_, ok := ti.findImageUse(id)
	return ok
}

func (ti *TaskInterface) findImageUse(id TaskImageId) (TaskUse, bool) {
	for _, u := range ti.task.Uses {
		if u.IsImage() {
			uid, _, _, _ := u.Image()
			if uid == id {
				return u, true
			}
		}
	}
	return TaskUse{}, false
}

// Executor is the Executor (spec.md 4.6): it walks a CompiledPlan,
// issuing each batch's barriers and running its tasks' callbacks in
// order. The command list is obtained from Device.CreateCommandList on the
// first Execute and the same list is reused by every later Execute; the
// Executor never resets it between executes.
type Executor struct {
	device   Device
	registry *Registry
	makeView ImageViewFunc

	cmdList CommandList
}

// NewExecutor creates an Executor over device, resolving image views
// through makeView.
func NewExecutor(device Device, registry *Registry, makeView ImageViewFunc) *Executor {
	return &Executor{device: device, registry: registry, makeView: makeView}
}

// Execute runs every batch of plan in order: issue the batch's barriers,
// then invoke each of its tasks' callbacks, then issue the plan's
// terminal barriers. Transient resources are re-resolved from scratch;
// persistent resources' resolved handles and cached views carry over.
// Returns the recorded command lists for the caller to submit (spec.md
// 4.6: "execute() returns the recorded command lists. It does not
// submit."). The Executor records everything into a single reused
// command list rather than one per batch — single-queue only, per the
// Open Questions resolution in DESIGN.md — so the returned slice always
// has exactly one element.
func (e *Executor) Execute(plan *CompiledPlan) ([]CommandList, error) {
	e.registry.resetTransient()

	cl, err := e.commandList()
	if err != nil {
		return nil, err
	}

	for _, batch := range plan.Batches {
		if err := e.issueBarriers(cl, batch.Barriers); err != nil {
			return nil, err
		}
		for _, t := range batch.Tasks {
			ti := &TaskInterface{CommandList: cl, task: t, registry: e.registry, makeView: e.makeView}
			if t.Callback != nil {
				t.Callback(ti)
			}
		}
	}

	if err := e.issueBarriers(cl, plan.Terminal); err != nil {
		return nil, err
	}
	return []CommandList{cl}, nil
}

func (e *Executor) commandList() (CommandList, error) {
	if e.cmdList != nil {
		return e.cmdList, nil
	}
	cl, err := e.device.CreateCommandList()
	if err != nil {
		return nil, err
	}
	e.cmdList = cl
	return cl, nil
}

// issueBarriers resolves every image barrier's placeholder task id to a
// concrete ImageHandle before handing the set to the command list.
func (e *Executor) issueBarriers(cl CommandList, bs BarrierSet) error {
	if bs.empty() {
		return nil
	}

	images := make([]ImageBarrier, len(bs.Images))
	for i, b := range bs.Images {
		if tagged, ok := b.Image.(imageTaskID); ok {
			handle, err := e.registry.resolveImage(tagged.id)
			if err != nil {
				return err
			}
			b.Image = handle
		}
		images[i] = b
	}

	return cl.PipelineBarrier(bs.Memory, images)
}
