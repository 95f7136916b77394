// Package tasklist implements a GPU task graph compiler and executor on
// top of the vkg Vulkan device API: callers declare buffer/image
// resources and the tasks that touch them, and the package works out the
// pipeline barriers needed to keep every access correctly synchronized.
package tasklist

import (
	"io"

	vk "github.com/vulkan-go/vulkan"
)

// state is the Task List's lifecycle (spec.md section 6): Building,
// where resources and tasks may still be added; Compiled, where the plan
// is fixed and ready to run; and Executing, entered for the duration of
// a single Execute call. There is no path back to Building.
type state int

const (
	stateBuilding state = iota
	stateCompiled
	stateExecuting
)

// TaskList is the public entry point (spec.md section 6): it owns a
// Resource Registry and Graph Builder while Building, holds a compiled
// plan once Compiled, and drives an Executor while Executing.
type TaskList struct {
	debugName string

	registry *Registry
	builder  *Builder
	executor *Executor

	state state
	plan  *CompiledPlan
}

// Config configures a new TaskList.
type Config struct {
	DebugName string

	// Device creates the command lists Execute records into.
	Device Device

	// MakeView creates an image view for a (image, view type, slice)
	// triple the first time a task asks for it.
	MakeView ImageViewFunc
}

// New creates a TaskList in the Building state.
func New(cfg Config) *TaskList {
	registry := NewRegistry()
	return &TaskList{
		debugName: cfg.DebugName,
		registry:  registry,
		builder:   NewBuilder(registry),
		executor:  NewExecutor(cfg.Device, registry, cfg.MakeView),
	}
}

// CreateTaskBuffer registers a buffer resource. Fails with
// ErrAlreadyCompiled once Compile has run.
func (tl *TaskList) CreateTaskBuffer(info TaskBufferInfo) (TaskBufferId, error) {
	return tl.registry.CreateTaskBuffer(info)
}

// CreateTaskImage registers an image resource.
func (tl *TaskList) CreateTaskImage(info TaskImageInfo) (TaskImageId, error) {
	return tl.registry.CreateTaskImage(info)
}

// AddTask declares a task. Fails with ErrAlreadyCompiled once Compile has
// run, or with ErrUnknownResource/ErrSliceOutOfRange/ErrSelfConflict if
// info is invalid.
func (tl *TaskList) AddTask(info TaskInfo) error {
	return tl.builder.AddTask(info)
}

// Compile transitions Building -> Compiled: it freezes the resource
// registry and task list and runs the Compiler over them, producing the
// batch/barrier plan Execute will run. hints describes the access/layout
// each listed resource must be left in after the last batch (e.g.
// ImageAccessPresent for a swapchain image). Compile may only be called
// once; it returns ErrAlreadyCompiled otherwise.
func (tl *TaskList) Compile(hints ...TerminalHint) error {
	if tl.state != stateBuilding {
		return wrapf(ErrAlreadyCompiled, "compile")
	}

	plan, err := compilePlan(tl.builder.Tasks(), tl.registry, hints)
	if err != nil {
		return err
	}

	tl.registry.markCompiled()
	tl.builder.markCompiled()
	tl.plan = plan
	tl.state = stateCompiled

	return nil
}

// Execute runs the compiled plan: resolves transient resources, issues
// each batch's barriers, and invokes each task's callback in order.
// Returns the recorded command lists, ready for the caller to submit to
// a queue; the Task List itself never submits. Returns ErrNotCompiled if
// Compile has not succeeded yet.
func (tl *TaskList) Execute() ([]CommandList, error) {
	if tl.state == stateBuilding {
		return nil, ErrNotCompiled
	}

	tl.state = stateExecuting
	defer func() { tl.state = stateCompiled }()

	return tl.executor.Execute(tl.plan)
}

// LastBufferAccess reports the access a buffer was left with by the last
// Execute. Valid only once Compiled.
func (tl *TaskList) LastBufferAccess(id TaskBufferId) (BufferAccess, error) {
	if tl.state == stateBuilding {
		return BufferAccessNone, ErrNotCompiled
	}
	return tl.registry.LastBufferAccess(id)
}

// LastImageLayout reports the layout an image slice was left with.
func (tl *TaskList) LastImageLayout(id TaskImageId, slice ImageSlice) (vk.ImageLayout, error) {
	if tl.state == stateBuilding {
		return vk.ImageLayoutUndefined, ErrNotCompiled
	}
	return tl.registry.LastImageLayout(id, slice)
}

// LastImageAccess reports the access an image slice was left with.
func (tl *TaskList) LastImageAccess(id TaskImageId, slice ImageSlice) (ImageAccess, error) {
	if tl.state == stateBuilding {
		return ImageAccessNone, ErrNotCompiled
	}
	return tl.registry.LastImageAccess(id, slice)
}

// Warnings returns the non-fatal diagnostics produced by the last
// Compile (spec.md 4.7): resources read but never written, and writes
// never read.
func (tl *TaskList) Warnings() []Warning {
	if tl.plan == nil {
		return nil
	}
	return tl.plan.Warnings
}

// DebugPrint writes a human-readable dump of the compiled plan. Returns
// ErrNotCompiled if Compile has not succeeded yet.
func (tl *TaskList) DebugPrint(w io.Writer) error {
	if tl.state == stateBuilding {
		return ErrNotCompiled
	}
	if tl.debugName != "" {
		if _, err := io.WriteString(w, "task list "+tl.debugName+":\n"); err != nil {
			return err
		}
	}
	return DebugPrint(w, tl.plan, tl.registry)
}
