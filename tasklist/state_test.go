package tasklist

import (
	"testing"

	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func TestNewImageStateSinglePartition(t *testing.T) {
	full := colorSlice(0, 4, 0, 1)
	st := NewImageState(full, ImageAccessNone, vk.ImageLayoutUndefined)
	parts := st.Partitions()
	require.Len(t, parts, 1)
	require.Equal(t, full, parts[0].Slice)
}

func TestImageStateUpdateFullReplacesPartition(t *testing.T) {
	full := colorSlice(0, 1, 0, 1)
	st := NewImageState(full, ImageAccessNone, vk.ImageLayoutUndefined)

	transitions := st.Update(full, ImageAccessTransferWrite, vk.ImageLayoutTransferDstOptimal)
	require.Len(t, transitions, 1)
	require.Equal(t, ImageAccessNone, transitions[0].OldAccess)
	require.Equal(t, ImageAccessTransferWrite, transitions[0].NewAccess)
	require.Equal(t, vk.ImageLayoutUndefined, transitions[0].OldLayout)
	require.Equal(t, vk.ImageLayoutTransferDstOptimal, transitions[0].NewLayout)

	parts := st.Partitions()
	require.Len(t, parts, 1)
	require.Equal(t, ImageAccessTransferWrite, parts[0].LatestAccess)
}

func TestImageStateUpdatePartialSplitsAndMerges(t *testing.T) {
	full := colorSlice(0, 4, 0, 1)
	st := NewImageState(full, ImageAccessNone, vk.ImageLayoutUndefined)

	middle := colorSlice(1, 2, 0, 1)
	transitions := st.Update(middle, ImageAccessShaderWrite, vk.ImageLayoutGeneral)
	require.Len(t, transitions, 1)
	require.Equal(t, middle, transitions[0].Slice)

	parts := st.Partitions()
	// full split into [0,1) untouched, [1,3) written, [3,4) untouched -> 3 partitions
	require.Len(t, parts, 3)

	var total uint32
	for _, p := range parts {
		total += p.Slice.MipCount
	}
	require.Equal(t, full.MipCount, total)
}

func TestImageStateUpdateThenMergeBackToOne(t *testing.T) {
	full := colorSlice(0, 4, 0, 1)
	st := NewImageState(full, ImageAccessNone, vk.ImageLayoutUndefined)

	st.Update(colorSlice(1, 2, 0, 1), ImageAccessShaderWrite, vk.ImageLayoutGeneral)
	require.Len(t, st.Partitions(), 3)

	st.Update(full, ImageAccessShaderRead, vk.ImageLayoutShaderReadOnlyOptimal)
	parts := st.Partitions()
	require.Len(t, parts, 1)
	require.Equal(t, ImageAccessShaderRead, parts[0].LatestAccess)
}

func TestImageStateStateAtDoesNotMutate(t *testing.T) {
	full := colorSlice(0, 4, 0, 1)
	st := NewImageState(full, ImageAccessNone, vk.ImageLayoutUndefined)

	before := len(st.Partitions())
	states := st.StateAt(colorSlice(1, 1, 0, 1))
	require.Len(t, states, 1)
	require.Equal(t, before, len(st.Partitions()))
}

func TestImageStateEmptySliceUpdateNoop(t *testing.T) {
	full := colorSlice(0, 4, 0, 1)
	st := NewImageState(full, ImageAccessNone, vk.ImageLayoutUndefined)
	transitions := st.Update(ImageSlice{}, ImageAccessShaderWrite, vk.ImageLayoutGeneral)
	require.Nil(t, transitions)
	require.Len(t, st.Partitions(), 1)
}

func TestBufferStateUpdateReturnsPrevious(t *testing.T) {
	var st BufferState
	prev := st.Update(BufferAccessTransferWrite)
	require.Equal(t, BufferAccessNone, prev)

	prev = st.Update(BufferAccessShaderRead)
	require.Equal(t, BufferAccessTransferWrite, prev)
	require.Equal(t, BufferAccessShaderRead, st.LatestAccess)
}
