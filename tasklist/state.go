package tasklist

import (
	"sort"

	vk "github.com/vulkan-go/vulkan"
)

// ImageSliceState is one partition of an image's sub-resource space: the
// slice it covers, and the access/layout every sub-resource in that slice
// was last used with.
type ImageSliceState struct {
	Slice        ImageSlice
	LatestAccess ImageAccess
	LatestLayout vk.ImageLayout
}

// ImageTransition is one (old-access, old-layout) -> (new-access,
// new-layout) change the Slice Tracker discovered while applying an
// update, scoped to the sub-slice it applies to. The Compiler turns each
// ImageTransition into an image barrier (4.3, step 3).
type ImageTransition struct {
	Slice     ImageSlice
	OldAccess ImageAccess
	OldLayout vk.ImageLayout
	NewAccess ImageAccess
	NewLayout vk.ImageLayout
}

// ImageState tracks the partition of one image resource's mip-layer-aspect
// space into ImageSliceStates. The invariant held at all times (outside of
// Update, which rebuilds it) is: the partitions' slices union to exactly
// FullExtent and no two partitions intersect.
type ImageState struct {
	FullExtent ImageSlice
	partitions []ImageSliceState
}

// NewImageState creates the tracker for a fresh image resource, entirely
// in the given initial access/layout (NONE/UNDEFINED for a newly declared
// resource, or the carried-over state for a persistent resource reused
// across executes).
func NewImageState(full ImageSlice, initialAccess ImageAccess, initialLayout vk.ImageLayout) *ImageState {
	return &ImageState{
		FullExtent: full,
		partitions: []ImageSliceState{{Slice: full, LatestAccess: initialAccess, LatestLayout: initialLayout}},
	}
}

// Partitions returns the current canonical partition list. Callers must
// not mutate the returned slice.
func (st *ImageState) Partitions() []ImageSliceState {
	return st.partitions
}

// Update applies a new (access, layout) to the given slice, implementing
// spec 4.3: intersect against every existing partition, split the
// overlapping ones, emit a transition per affected sub-slice, replace the
// covered partitions, then merge adjacent partitions with equal state so
// the partition list stays canonical.
func (st *ImageState) Update(slice ImageSlice, access ImageAccess, layout vk.ImageLayout) []ImageTransition {
	if slice.Empty() {
		return nil
	}

	var transitions []ImageTransition
	var untouched []ImageSliceState

	for _, p := range st.partitions {
		overlap := p.Slice.Intersect(slice)
		if overlap.Empty() {
			untouched = append(untouched, p)
			continue
		}

		transitions = append(transitions, ImageTransition{
			Slice:     overlap,
			OldAccess: p.LatestAccess,
			OldLayout: p.LatestLayout,
			NewAccess: access,
			NewLayout: layout,
		})

		for _, remainder := range p.Slice.Subtract(overlap) {
			untouched = append(untouched, ImageSliceState{
				Slice:        remainder,
				LatestAccess: p.LatestAccess,
				LatestLayout: p.LatestLayout,
			})
		}
	}

	untouched = append(untouched, ImageSliceState{Slice: slice, LatestAccess: access, LatestLayout: layout})

	st.partitions = canonicalize(untouched)

	return transitions
}

// StateAt returns the state of every existing partition that intersects
// the given slice, without modifying the tracker. Used by the Compiler to
// decide whether a use conflicts with the current state before committing
// to an Update.
func (st *ImageState) StateAt(slice ImageSlice) []ImageSliceState {
	var out []ImageSliceState
	for _, p := range st.partitions {
		overlap := p.Slice.Intersect(slice)
		if overlap.Empty() {
			continue
		}
		out = append(out, ImageSliceState{Slice: overlap, LatestAccess: p.LatestAccess, LatestLayout: p.LatestLayout})
	}
	return out
}

// canonicalize sorts partitions by (aspect, base-mip, base-layer) and
// merges adjacent partitions sharing identical state, so the partition
// list is deterministic for barrier emission and pretty-printing.
func canonicalize(partitions []ImageSliceState) []ImageSliceState {
	sort.Slice(partitions, func(i, j int) bool {
		a, b := partitions[i].Slice, partitions[j].Slice
		if a.AspectMask != b.AspectMask {
			return a.AspectMask < b.AspectMask
		}
		if a.BaseMip != b.BaseMip {
			return a.BaseMip < b.BaseMip
		}
		return a.BaseArrayLayer < b.BaseArrayLayer
	})

	changed := true
	for changed {
		changed = false
		for i := 0; i < len(partitions); i++ {
			for j := i + 1; j < len(partitions); j++ {
				if merged, ok := tryMerge(partitions[i], partitions[j]); ok {
					partitions[i] = merged
					partitions = append(partitions[:j], partitions[j+1:]...)
					changed = true
					break
				}
			}
			if changed {
				break
			}
		}
	}

	return partitions
}

// tryMerge merges a and b into a single partition when they describe the
// same state and are adjacent along exactly one axis (mip range or layer
// range) with the other axes identical.
func tryMerge(a, b ImageSliceState) (ImageSliceState, bool) {
	if a.LatestAccess != b.LatestAccess || a.LatestLayout != b.LatestLayout {
		return ImageSliceState{}, false
	}
	if a.Slice.AspectMask != b.Slice.AspectMask {
		return ImageSliceState{}, false
	}

	sameLayers := a.Slice.BaseArrayLayer == b.Slice.BaseArrayLayer && a.Slice.ArrayLayerCount == b.Slice.ArrayLayerCount
	sameMips := a.Slice.BaseMip == b.Slice.BaseMip && a.Slice.MipCount == b.Slice.MipCount

	if sameLayers && a.Slice.mipEnd() == b.Slice.BaseMip {
		return ImageSliceState{
			Slice: ImageSlice{
				BaseMip: a.Slice.BaseMip, MipCount: a.Slice.MipCount + b.Slice.MipCount,
				BaseArrayLayer: a.Slice.BaseArrayLayer, ArrayLayerCount: a.Slice.ArrayLayerCount,
				AspectMask: a.Slice.AspectMask,
			},
			LatestAccess: a.LatestAccess, LatestLayout: a.LatestLayout,
		}, true
	}
	if sameLayers && b.Slice.mipEnd() == a.Slice.BaseMip {
		return tryMerge(b, a)
	}
	if sameMips && a.Slice.layerEnd() == b.Slice.BaseArrayLayer {
		return ImageSliceState{
			Slice: ImageSlice{
				BaseMip: a.Slice.BaseMip, MipCount: a.Slice.MipCount,
				BaseArrayLayer: a.Slice.BaseArrayLayer, ArrayLayerCount: a.Slice.ArrayLayerCount + b.Slice.ArrayLayerCount,
				AspectMask: a.Slice.AspectMask,
			},
			LatestAccess: a.LatestAccess, LatestLayout: a.LatestLayout,
		}, true
	}
	if sameMips && b.Slice.layerEnd() == a.Slice.BaseArrayLayer {
		return tryMerge(b, a)
	}

	return ImageSliceState{}, false
}

// BufferState tracks the single latest access of a buffer resource (no
// layout, no sub-resources).
type BufferState struct {
	LatestAccess BufferAccess
}

// Update records a new access and returns the previous one, for the
// Compiler to build a memory barrier from.
func (st *BufferState) Update(access BufferAccess) BufferAccess {
	prev := st.LatestAccess
	st.LatestAccess = access
	return prev
}
