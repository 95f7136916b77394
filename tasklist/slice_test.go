package tasklist

import (
	"testing"

	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func colorSlice(baseMip, mipCount, baseLayer, layerCount uint32) ImageSlice {
	return ImageSlice{
		BaseMip: baseMip, MipCount: mipCount,
		BaseArrayLayer: baseLayer, ArrayLayerCount: layerCount,
		AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
	}
}

func TestImageSliceEmpty(t *testing.T) {
	require.True(t, ImageSlice{}.Empty())
	require.False(t, colorSlice(0, 1, 0, 1).Empty())
}

func TestImageSliceContains(t *testing.T) {
	full := colorSlice(0, 4, 0, 6)
	sub := colorSlice(1, 2, 2, 3)
	require.True(t, full.Contains(sub))
	require.False(t, sub.Contains(full))
	require.True(t, full.Contains(full))
	require.True(t, full.Contains(ImageSlice{}))
}

func TestImageSliceDisjointAndIntersect(t *testing.T) {
	a := colorSlice(0, 2, 0, 1)
	b := colorSlice(2, 2, 0, 1)
	require.True(t, a.Disjoint(b))
	require.True(t, a.Intersect(b).Empty())

	c := colorSlice(1, 2, 0, 1)
	require.False(t, a.Disjoint(c))
	overlap := a.Intersect(c)
	require.Equal(t, colorSlice(1, 1, 0, 1), overlap)
}

func TestImageSliceDisjointAspect(t *testing.T) {
	color := colorSlice(0, 1, 0, 1)
	depth := ImageSlice{BaseMip: 0, MipCount: 1, BaseArrayLayer: 0, ArrayLayerCount: 1, AspectMask: vk.ImageAspectFlags(vk.ImageAspectDepthBit)}
	require.True(t, color.Disjoint(depth))
}

func TestImageSliceSubtractNoOverlap(t *testing.T) {
	a := colorSlice(0, 2, 0, 1)
	b := colorSlice(4, 2, 0, 1)
	result := a.Subtract(b)
	require.Len(t, result, 1)
	require.Equal(t, a, result[0])
}

func TestImageSliceSubtractFullyCovered(t *testing.T) {
	a := colorSlice(0, 2, 0, 1)
	result := a.Subtract(a)
	require.Nil(t, result)
}

func TestImageSliceSubtractMipSplit(t *testing.T) {
	full := colorSlice(0, 4, 0, 1)
	middle := colorSlice(1, 2, 0, 1)

	result := full.Subtract(middle)

	var total uint32
	for _, r := range result {
		require.True(t, r.Disjoint(middle))
		require.True(t, full.Contains(r))
		total += r.MipCount
	}
	require.Equal(t, full.MipCount-middle.MipCount, total)
}

func TestImageSliceSubtractLayerSplit(t *testing.T) {
	full := colorSlice(0, 1, 0, 4)
	middle := colorSlice(0, 1, 1, 2)

	result := full.Subtract(middle)

	var total uint32
	for _, r := range result {
		require.True(t, r.Disjoint(middle))
		total += r.ArrayLayerCount
	}
	require.Equal(t, full.ArrayLayerCount-middle.ArrayLayerCount, total)
}

func TestImageSliceEquals(t *testing.T) {
	a := colorSlice(0, 1, 0, 1)
	b := colorSlice(0, 1, 0, 1)
	c := colorSlice(0, 2, 0, 1)
	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
}
