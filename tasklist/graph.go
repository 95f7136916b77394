package tasklist

// Builder is the Graph Builder (spec.md 4.4): it accepts task
// declarations, validates them against the Registry, and accumulates them
// into an ordered list for the Compiler to walk.
type Builder struct {
	registry *Registry
	tasks    []Task
	compiled bool
}

// NewBuilder creates a Graph Builder over the given Registry.
func NewBuilder(registry *Registry) *Builder {
	return &Builder{registry: registry}
}

// AddTask validates and appends task to the ordered task list. Fails with
// ErrAlreadyCompiled once Compile has succeeded, ErrUnknownResource if a
// use references an id the Registry has never seen, ErrSliceOutOfRange if
// an image use's slice does not fit the resource's declared extent, and
// ErrSelfConflict if two uses of the same resource within task cannot
// coexist.
func (b *Builder) AddTask(info TaskInfo) error {
	if b.compiled {
		return wrapf(ErrAlreadyCompiled, "add_task(%q)", info.DebugName)
	}
	if err := b.validate(info); err != nil {
		return err
	}

	b.tasks = append(b.tasks, Task{TaskInfo: info, Index: len(b.tasks)})
	return nil
}

// Tasks returns the ordered task list accumulated so far.
func (b *Builder) Tasks() []Task { return b.tasks }

// markCompiled freezes the builder against further AddTask calls.
func (b *Builder) markCompiled() { b.compiled = true }

func (b *Builder) validate(info TaskInfo) error {
	for i, u := range info.Uses {
		if u.IsBuffer() {
			id, _ := u.Buffer()
			if _, err := b.registry.bufferAt(id); err != nil {
				return wrapf(err, "task %q use %d", info.DebugName, i)
			}
		} else {
			id, _, slice, _ := u.Image()
			entry, err := b.registry.imageAt(id)
			if err != nil {
				return wrapf(err, "task %q use %d", info.DebugName, i)
			}
			effective := slice
			if effective.Empty() {
				effective = entry.info.Extent
			}
			if !entry.info.Extent.Contains(effective) {
				return wrapf(ErrSliceOutOfRange, "task %q use %d slice %+v exceeds extent %+v", info.DebugName, i, effective, entry.info.Extent)
			}
		}
	}

	for i := range info.Uses {
		for j := i + 1; j < len(info.Uses); j++ {
			if err := conflictBetween(info.Uses[i], info.Uses[j]); err != nil {
				return wrapf(err, "task %q uses %d and %d", info.DebugName, i, j)
			}
		}
	}

	return nil
}

// conflictBetween reports ErrSelfConflict when a and b, declared by the
// same task, cannot coexist. Identical accesses over the same (or
// overlapping) resource are always allowed and treated as one use
// covering the union (spec.md section 8's boundary behavior); disjoint
// image slices never conflict regardless of access.
func conflictBetween(a, b TaskUse) error {
	if a.IsBuffer() != b.IsBuffer() {
		return nil
	}

	if a.IsBuffer() {
		idA, accA := a.Buffer()
		idB, accB := b.Buffer()
		if idA != idB {
			return nil
		}
		if accA == accB || IsCompatibleBufferAccess(accA, accB) {
			return nil
		}
		return ErrSelfConflict
	}

	idA, accA, sliceA, _ := a.Image()
	idB, accB, sliceB, _ := b.Image()
	if idA != idB {
		return nil
	}
	if !sliceA.Empty() && !sliceB.Empty() && sliceA.Disjoint(sliceB) {
		return nil
	}
	if accA == accB || IsCompatibleImageAccess(accA, accB) {
		return nil
	}
	return ErrSelfConflict
}
