package tasklist

import (
	vk "github.com/vulkan-go/vulkan"
)

// ImageSlice is a rectangular sub-region of an image's mip/layer/aspect
// space: a half-open range of mip levels, a half-open range of array
// layers, and an aspect mask. Two slices with disjoint aspect masks are
// always disjoint regardless of their mip/layer ranges.
type ImageSlice struct {
	BaseMip         uint32
	MipCount        uint32
	BaseArrayLayer  uint32
	ArrayLayerCount uint32
	AspectMask      vk.ImageAspectFlags
}

func (s ImageSlice) mipEnd() uint32   { return s.BaseMip + s.MipCount }
func (s ImageSlice) layerEnd() uint32 { return s.BaseArrayLayer + s.ArrayLayerCount }

// Empty reports whether the slice covers no sub-resources.
func (s ImageSlice) Empty() bool {
	return s.MipCount == 0 || s.ArrayLayerCount == 0 || s.AspectMask == 0
}

// Equals reports whether two slices describe exactly the same sub-resources.
func (s ImageSlice) Equals(o ImageSlice) bool {
	return s.BaseMip == o.BaseMip && s.MipCount == o.MipCount &&
		s.BaseArrayLayer == o.BaseArrayLayer && s.ArrayLayerCount == o.ArrayLayerCount &&
		s.AspectMask == o.AspectMask
}

// Contains reports whether s fully covers o.
func (s ImageSlice) Contains(o ImageSlice) bool {
	if o.Empty() {
		return true
	}
	if s.AspectMask&o.AspectMask != o.AspectMask {
		return false
	}
	return s.BaseMip <= o.BaseMip && o.mipEnd() <= s.mipEnd() &&
		s.BaseArrayLayer <= o.BaseArrayLayer && o.layerEnd() <= s.layerEnd()
}

// Disjoint reports whether s and o share no sub-resource.
func (s ImageSlice) Disjoint(o ImageSlice) bool {
	return s.Intersect(o).Empty()
}

// Intersect returns the (possibly empty) slice covered by both s and o.
func (s ImageSlice) Intersect(o ImageSlice) ImageSlice {
	aspect := s.AspectMask & o.AspectMask
	if aspect == 0 {
		return ImageSlice{}
	}

	baseMip := maxU32(s.BaseMip, o.BaseMip)
	endMip := minU32(s.mipEnd(), o.mipEnd())
	if endMip <= baseMip {
		return ImageSlice{}
	}

	baseLayer := maxU32(s.BaseArrayLayer, o.BaseArrayLayer)
	endLayer := minU32(s.layerEnd(), o.layerEnd())
	if endLayer <= baseLayer {
		return ImageSlice{}
	}

	return ImageSlice{
		BaseMip:         baseMip,
		MipCount:        endMip - baseMip,
		BaseArrayLayer:  baseLayer,
		ArrayLayerCount: endLayer - baseLayer,
		AspectMask:      aspect,
	}
}

// Subtract returns the set of slices covering exactly s minus o, expressed
// as disjoint axis-aligned boxes. In one pass it splits off the aspect
// bits o does not cover, then (within the shared aspect) the mip ranges
// before and after the overlap, then (within the overlapping mips) the
// layer ranges before and after it, so the pieces never overlap.
func (s ImageSlice) Subtract(o ImageSlice) []ImageSlice {
	overlap := s.Intersect(o)
	if overlap.Empty() {
		return []ImageSlice{s}
	}
	if overlap.Equals(s) {
		return nil
	}

	var result []ImageSlice

	if remainder := s.AspectMask &^ o.AspectMask; remainder != 0 {
		result = append(result, ImageSlice{
			BaseMip:         s.BaseMip,
			MipCount:        s.MipCount,
			BaseArrayLayer:  s.BaseArrayLayer,
			ArrayLayerCount: s.ArrayLayerCount,
			AspectMask:      remainder,
		})
	}
	sharedAspect := s.AspectMask & o.AspectMask

	// Within the shared aspect, split off mip ranges before and after the
	// overlapping mip range.
	if s.BaseMip < overlap.BaseMip {
		result = append(result, ImageSlice{
			BaseMip: s.BaseMip, MipCount: overlap.BaseMip - s.BaseMip,
			BaseArrayLayer: s.BaseArrayLayer, ArrayLayerCount: s.ArrayLayerCount,
			AspectMask: sharedAspect,
		})
	}
	if overlap.mipEnd() < s.mipEnd() {
		result = append(result, ImageSlice{
			BaseMip: overlap.mipEnd(), MipCount: s.mipEnd() - overlap.mipEnd(),
			BaseArrayLayer: s.BaseArrayLayer, ArrayLayerCount: s.ArrayLayerCount,
			AspectMask: sharedAspect,
		})
	}

	// Within the overlapping mip range and shared aspect, split off layer
	// ranges before and after the overlapping layer range.
	if s.BaseArrayLayer < overlap.BaseArrayLayer {
		result = append(result, ImageSlice{
			BaseMip: overlap.BaseMip, MipCount: overlap.MipCount,
			BaseArrayLayer: s.BaseArrayLayer, ArrayLayerCount: overlap.BaseArrayLayer - s.BaseArrayLayer,
			AspectMask: sharedAspect,
		})
	}
	if overlap.layerEnd() < s.layerEnd() {
		result = append(result, ImageSlice{
			BaseMip: overlap.BaseMip, MipCount: overlap.MipCount,
			BaseArrayLayer: overlap.layerEnd(), ArrayLayerCount: s.layerEnd() - overlap.layerEnd(),
			AspectMask: sharedAspect,
		})
	}

	return result
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
