package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func TestBufferAccessToStageAccessIsTotal(t *testing.T) {
	for a := BufferAccessNone; a <= BufferAccessHostTransferWrite; a++ {
		assert.NotPanics(t, func() { BufferAccessToStageAccess(a) }, "access %d", a)
	}
}

func TestImageAccessToStageAccessLayoutIsTotal(t *testing.T) {
	for a := ImageAccessNone; a <= ImageAccessPresent; a++ {
		assert.NotPanics(t, func() { ImageAccessToStageAccessLayout(a) }, "access %d", a)
	}
}

func TestBufferAccessReadWrite(t *testing.T) {
	require.True(t, BufferAccessShaderRead.IsRead())
	require.False(t, BufferAccessShaderRead.IsWrite())

	require.False(t, BufferAccessShaderWrite.IsRead())
	require.True(t, BufferAccessShaderWrite.IsWrite())

	require.True(t, BufferAccessShaderReadWrite.IsRead())
	require.True(t, BufferAccessShaderReadWrite.IsWrite())

	require.False(t, BufferAccessNone.IsRead())
	require.False(t, BufferAccessNone.IsWrite())
}

func TestImageAccessPresentIsReadOnly(t *testing.T) {
	require.True(t, ImageAccessPresent.IsRead())
	require.False(t, ImageAccessPresent.IsWrite())
	sa := ImageAccessToStageAccessLayout(ImageAccessPresent)
	require.Equal(t, vk.ImageLayoutPresentSrc, sa.Layout)
}

func TestIsCompatibleBufferAccess(t *testing.T) {
	require.True(t, IsCompatibleBufferAccess(BufferAccessShaderRead, BufferAccessTransferRead))
	require.False(t, IsCompatibleBufferAccess(BufferAccessShaderRead, BufferAccessShaderWrite))
	require.False(t, IsCompatibleBufferAccess(BufferAccessShaderWrite, BufferAccessShaderWrite))
}

func TestIsCompatibleImageAccess(t *testing.T) {
	require.True(t, IsCompatibleImageAccess(ImageAccessShaderRead, ImageAccessFragmentShaderRead))
	require.False(t, IsCompatibleImageAccess(ImageAccessShaderRead, ImageAccessShaderWrite))
	require.False(t, IsCompatibleImageAccess(ImageAccessShaderRead, ImageAccessTransferRead))
}

func TestAccessStringers(t *testing.T) {
	require.Equal(t, "SHADER_READ", BufferAccessShaderRead.String())
	require.Equal(t, "PRESENT", ImageAccessPresent.String())
	require.Equal(t, "BufferAccess(unknown)", BufferAccess(-1).String())
}
