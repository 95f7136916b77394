package tasklist

import (
	"log/slog"
	"sort"
)

// BarrierSet is the list of barriers the Executor must issue before a
// batch (or, for the Terminal set, after the last batch).
type BarrierSet struct {
	Memory []MemoryBarrier
	Images []ImageBarrier
}

func (bs BarrierSet) empty() bool { return len(bs.Memory) == 0 && len(bs.Images) == 0 }

// CompiledBatch is a contiguous run of tasks preceded by one BarrierSet
// (spec.md 3).
type CompiledBatch struct {
	Barriers BarrierSet
	Tasks    []Task
}

// CompiledPlan is the Compiler's output (spec.md 3): an ordered sequence
// of (barriers, batch) pairs plus a terminal barrier set.
type CompiledPlan struct {
	Batches  []CompiledBatch
	Terminal BarrierSet
	Warnings []Warning
}

// TerminalHint tells the Compiler the access/layout a resource must be
// left in after the last batch, e.g. ImageAccessPresent for a swapchain
// image (spec.md 4.5's "Terminal barriers"). Build one with
// BufferTerminalHint or ImageTerminalHint.
type TerminalHint struct {
	isImage bool

	buffer TaskBufferId
	access BufferAccess

	image       TaskImageId
	imageAccess ImageAccess
	slice       ImageSlice
}

// BufferTerminalHint requires buffer id to be left in access after the
// last batch.
func BufferTerminalHint(id TaskBufferId, access BufferAccess) TerminalHint {
	return TerminalHint{buffer: id, access: access}
}

// ImageTerminalHint requires slice of image id (zero slice meaning the
// image's full extent) to be left in access after the last batch. The
// common case is ImageAccessPresent on a swapchain image.
func ImageTerminalHint(id TaskImageId, access ImageAccess, slice ImageSlice) TerminalHint {
	return TerminalHint{isImage: true, image: id, imageAccess: access, slice: slice}
}

// Warning is a non-fatal diagnostic surfaced from compile (spec.md 4.5).
type Warning struct {
	ResourceName string
	Message      string
}

// openMemoryBarrier and openImageBarrier track, for a resource (or image partition) currently in a
// read state, the barrier record a subsequent compatible read should
// extend rather than duplicate (spec.md 4.5's read-batching rule).
type openMemoryBarrier struct{ index int }
type openImageBarrier struct{ index int }

type compileState struct {
	registry *Registry

	pending BarrierSet
	batch   []Task

	plan CompiledPlan

	openBuffer map[TaskBufferId]openMemoryBarrier
	openImage  map[TaskImageId]map[ImageSlice]openImageBarrier

	// taskImageTouched tracks which images the task currently being
	// processed has already applied an Update for, so a second overlapping
	// use of the same image within that task (spec.md 8: "identical access
	// ... treated as one use covering the union") is recognized as such
	// rather than mistaken for a real cross-task transition.
	taskImageTouched map[TaskImageId]bool

	bufferRead, bufferWrite map[TaskBufferId]bool
	imageRead, imageWrite   map[TaskImageId]bool
}

// compilePlan is the Compiler (spec.md 4.5): it walks tasks in declaration
// order, computing dependencies and emitting batches and barrier records.
func compilePlan(tasks []Task, registry *Registry, hints []TerminalHint) (*CompiledPlan, error) {
	cs := &compileState{
		registry:    registry,
		openBuffer:  make(map[TaskBufferId]openMemoryBarrier),
		openImage:   make(map[TaskImageId]map[ImageSlice]openImageBarrier),
		bufferRead:  make(map[TaskBufferId]bool),
		bufferWrite: make(map[TaskBufferId]bool),
		imageRead:   make(map[TaskImageId]bool),
		imageWrite:  make(map[TaskImageId]bool),
	}

	for _, t := range tasks {
		if conflictsWithBatch(cs, t) {
			cs.flush()
		}
		cs.taskImageTouched = make(map[TaskImageId]bool)
		for _, u := range t.Uses {
			if u.IsBuffer() {
				cs.processBuffer(u)
			} else {
				cs.processImage(u)
			}
		}
		cs.batch = append(cs.batch, t)
	}
	cs.flush()

	cs.plan.Terminal = cs.terminalBarriers(hints)
	cs.plan.Warnings = cs.collectWarnings(registry)

	return &cs.plan, nil
}

// conflictsWithBatch reports whether any use in t conflicts with the
// resource state as it stands right now (spec.md 4.5 step 3-4). A task is
// never split across two batches, so if any one of its uses needs a
// flush, the whole task starts a fresh batch.
func conflictsWithBatch(cs *compileState, t Task) bool {
	for _, u := range t.Uses {
		if u.IsBuffer() {
			id, access := u.Buffer()
			entry, _ := cs.registry.bufferAt(id)
			old := entry.state.LatestAccess
			if old.IsWrite() || access.IsWrite() {
				return true
			}
		} else {
			id, access, slice, _ := u.Image()
			entry, _ := cs.registry.imageAt(id)
			effective := slice
			if effective.Empty() {
				effective = entry.info.Extent
			}
			required := ImageAccessToStageAccessLayout(access)
			for _, partition := range entry.state.StateAt(effective) {
				if partition.LatestAccess == ImageAccessNone {
					// Never touched by any earlier task: the transition
					// this use needs is the sub-resource's very first one,
					// so it can share a batch with any other task's
					// first-time transition of a disjoint sub-resource
					// (spec.md 8 Scenario C).
					continue
				}
				if partition.LatestAccess.IsWrite() || access.IsWrite() || partition.LatestLayout != required.Layout {
					return true
				}
			}
		}
	}
	return false
}

func (cs *compileState) flush() {
	if len(cs.batch) == 0 {
		return
	}
	cs.plan.Batches = append(cs.plan.Batches, CompiledBatch{
		Barriers: sortBarrierSet(cs.pending),
		Tasks:    cs.batch,
	})
	cs.pending = BarrierSet{}
	cs.batch = nil
	cs.openBuffer = make(map[TaskBufferId]openMemoryBarrier)
	cs.openImage = make(map[TaskImageId]map[ImageSlice]openImageBarrier)
}

func (cs *compileState) processBuffer(u TaskUse) {
	id, access := u.Buffer()
	entry, _ := cs.registry.bufferAt(id)

	cs.bufferRead[id] = cs.bufferRead[id] || access.IsRead()
	cs.bufferWrite[id] = cs.bufferWrite[id] || access.IsWrite()

	old := entry.state.LatestAccess
	newAccess := access

	if isBatchableBufferRead(old, newAccess) {
		if ob, ok := cs.openBuffer[id]; ok {
			na := BufferAccessToStageAccess(newAccess)
			b := &cs.pending.Memory[ob.index]
			b.DstStage |= na.Stages
			b.DstAccess |= na.Access
		}
		entry.state.Update(newAccess)
		return
	}

	oa := BufferAccessToStageAccess(old)
	na := BufferAccessToStageAccess(newAccess)

	if oa.Stages == 0 && oa.Access == 0 && na.Stages == 0 && na.Access == 0 {
		entry.state.Update(newAccess)
		return
	}

	cs.pending.Memory = append(cs.pending.Memory, MemoryBarrier{
		SrcStage: oa.Stages, DstStage: na.Stages,
		SrcAccess: oa.Access, DstAccess: na.Access,
	})
	cs.openBuffer[id] = openMemoryBarrier{index: len(cs.pending.Memory) - 1}

	entry.state.Update(newAccess)
}

func isBatchableBufferRead(old, newAccess BufferAccess) bool {
	return old != BufferAccessNone && old.IsRead() && !old.IsWrite() && newAccess.IsRead() && !newAccess.IsWrite()
}

func (cs *compileState) processImage(u TaskUse) {
	id, access, slice, _ := u.Image()
	entry, _ := cs.registry.imageAt(id)
	effective := slice
	if effective.Empty() {
		effective = entry.info.Extent
	}

	cs.imageRead[id] = cs.imageRead[id] || access.IsRead()
	cs.imageWrite[id] = cs.imageWrite[id] || access.IsWrite()

	required := ImageAccessToStageAccessLayout(access)

	alreadyTouchedThisTask := cs.taskImageTouched[id]
	cs.taskImageTouched[id] = true

	transitions := entry.state.Update(effective, access, required.Layout)
	for _, tr := range transitions {
		if alreadyTouchedThisTask && tr.OldAccess == tr.NewAccess && tr.OldLayout == tr.NewLayout {
			// This sub-slice was already brought to exactly this
			// access/layout by an earlier, overlapping use of the same
			// task (spec.md 8: identical access over overlapping slices
			// is one use covering the union) — nothing to barrier.
			continue
		}
		cs.emitImageTransition(id, tr, required, alreadyTouchedThisTask)
	}
}

func (cs *compileState) emitImageTransition(id TaskImageId, tr ImageTransition, required StageAccessLayout, sameTask bool) {
	oldIsBatchableRead := tr.OldAccess != ImageAccessNone && tr.OldAccess.IsRead() && !tr.OldAccess.IsWrite() &&
		required.Access&readAccessBits != 0 && required.Access&writeAccessBits == 0 &&
		tr.OldLayout == tr.NewLayout

	if oldIsBatchableRead {
		if slices, ok := cs.openImage[id]; ok {
			if ob, ok := slices[tr.Slice]; ok {
				b := &cs.pending.Images[ob.index]
				b.DstStage |= required.Stages
				b.DstAccess |= required.Access
				return
			}
		}
		return
	}

	old := ImageAccessToStageAccessLayout(tr.OldAccess)
	old.Layout = tr.OldLayout

	if old.Stages == 0 && old.Access == 0 && old.Layout == tr.NewLayout && required.Stages == 0 && required.Access == 0 {
		return
	}

	if sameTask {
		// A later use of the same task extends the barrier an earlier,
		// overlapping use recorded for the identical transition, so the
		// task's uses are barriered as one use covering their union.
		for i := range cs.pending.Images {
			pb := &cs.pending.Images[i]
			same := pb.Image == imageTaskID{id} && pb.SrcStage == old.Stages && pb.SrcAccess == old.Access &&
				pb.DstStage == required.Stages && pb.DstAccess == required.Access && pb.OldLayout == tr.OldLayout && pb.NewLayout == tr.NewLayout
			if merged, ok := tryMerge(ImageSliceState{Slice: pb.Slice}, ImageSliceState{Slice: tr.Slice}); same && ok {
				delete(cs.openImage[id], pb.Slice)
				pb.Slice = merged.Slice
				cs.openImage[id][pb.Slice] = openImageBarrier{index: i}
				return
			}
		}
	}

	cs.pending.Images = append(cs.pending.Images, ImageBarrier{
		SrcStage: old.Stages, DstStage: required.Stages,
		SrcAccess: old.Access, DstAccess: required.Access,
		OldLayout: tr.OldLayout, NewLayout: tr.NewLayout,
		Image: nil, Slice: tr.Slice,
	})
	idx := len(cs.pending.Images) - 1
	cs.pending.Images[idx].Image = imageTaskID{id}

	if cs.openImage[id] == nil {
		cs.openImage[id] = make(map[ImageSlice]openImageBarrier)
	}
	cs.openImage[id][tr.Slice] = openImageBarrier{index: idx}
}

// imageTaskID is stashed into ImageBarrier.Image during compile, before a
// concrete GPU handle exists; the Executor swaps it out for the resolved
// handle when it issues the barrier.
type imageTaskID struct{ id TaskImageId }

func (cs *compileState) terminalBarriers(hints []TerminalHint) BarrierSet {
	var out BarrierSet
	for _, h := range hints {
		if !h.isImage {
			entry, err := cs.registry.bufferAt(h.buffer)
			if err != nil {
				continue
			}
			old := entry.state.LatestAccess
			if old == h.access {
				continue
			}
			oa := BufferAccessToStageAccess(old)
			na := BufferAccessToStageAccess(h.access)
			out.Memory = append(out.Memory, MemoryBarrier{
				SrcStage: oa.Stages, DstStage: na.Stages,
				SrcAccess: oa.Access, DstAccess: na.Access,
			})
			entry.state.Update(h.access)
			continue
		}

		entry, err := cs.registry.imageAt(h.image)
		if err != nil {
			continue
		}
		effective := h.slice
		if effective.Empty() {
			effective = entry.info.Extent
		}
		required := ImageAccessToStageAccessLayout(h.imageAccess)
		for _, tr := range entry.state.Update(effective, h.imageAccess, required.Layout) {
			if tr.OldAccess == h.imageAccess && tr.OldLayout == required.Layout {
				continue
			}
			old := ImageAccessToStageAccessLayout(tr.OldAccess)
			old.Layout = tr.OldLayout
			out.Images = append(out.Images, ImageBarrier{
				SrcStage: old.Stages, DstStage: required.Stages,
				SrcAccess: old.Access, DstAccess: required.Access,
				OldLayout: tr.OldLayout, NewLayout: tr.NewLayout,
				Image: imageTaskID{h.image}, Slice: tr.Slice,
			})
		}
	}
	return sortBarrierSet(out)
}

func (cs *compileState) collectWarnings(r *Registry) []Warning {
	var warnings []Warning
	for id := range cs.bufferRead {
		if cs.bufferRead[id] && !cs.bufferWrite[id] {
			entry, _ := r.bufferAt(id)
			warnings = append(warnings, Warning{ResourceName: entry.info.DebugName, Message: "read-only resource is never initialized by a write"})
		}
	}
	for id := range cs.bufferWrite {
		if cs.bufferWrite[id] && !cs.bufferRead[id] {
			entry, _ := r.bufferAt(id)
			warnings = append(warnings, Warning{ResourceName: entry.info.DebugName, Message: "write is never read"})
		}
	}
	for id := range cs.imageRead {
		if cs.imageRead[id] && !cs.imageWrite[id] {
			entry, _ := r.imageAt(id)
			warnings = append(warnings, Warning{ResourceName: entry.info.DebugName, Message: "read-only resource is never initialized by a write"})
		}
	}
	for id := range cs.imageWrite {
		if cs.imageWrite[id] && !cs.imageRead[id] {
			entry, _ := r.imageAt(id)
			warnings = append(warnings, Warning{ResourceName: entry.info.DebugName, Message: "write is never read"})
		}
	}
	for _, w := range warnings {
		slog.Warn("tasklist: compile warning", "resource", w.ResourceName, "message", w.Message)
	}
	return warnings
}

// sortBarrierSet orders image barrier records by (resource-id, base-mip,
// base-layer, aspect), per spec.md 4.5's determinism requirement. Memory
// barriers are kept in their own list, issued ahead of the image barriers;
// they carry no resource id and stay in the order they were emitted.
func sortBarrierSet(bs BarrierSet) BarrierSet {
	sort.SliceStable(bs.Images, func(i, j int) bool {
		a, b := bs.Images[i], bs.Images[j]
		ai, aok := a.Image.(imageTaskID)
		bi, bok := b.Image.(imageTaskID)
		if aok && bok && ai.id != bi.id {
			return ai.id.index < bi.id.index
		}
		if a.Slice.BaseMip != b.Slice.BaseMip {
			return a.Slice.BaseMip < b.Slice.BaseMip
		}
		if a.Slice.BaseArrayLayer != b.Slice.BaseArrayLayer {
			return a.Slice.BaseArrayLayer < b.Slice.BaseArrayLayer
		}
		return a.Slice.AspectMask < b.Slice.AspectMask
	})
	return bs
}
