package vkg

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/study-game-engines/daxa/tasklist"
)

// CommandBuffers describe a sequence of commands that will be executed
// upon being sent to a device queue. Not all available vulkan commands
// are wrapped by this package. It is expected that the calling application
// must call the native vulkan command APIs.
type CommandBuffer struct {
	VKCommandBuffer vk.CommandBuffer
}

// ResetAndRelease will reset this commandbuffer and release the associated resources
func (c *CommandBuffer) ResetAndRelease() error {
	return vk.Error(vk.ResetCommandBuffer(c.VKCommandBuffer, vk.CommandBufferResetFlags(vk.CommandBufferResetReleaseResourcesBit)))
}

// Reset this command buffer
func (c *CommandBuffer) Reset() error {
	return vk.Error(vk.ResetCommandBuffer(c.VKCommandBuffer, 0))
}

// VK is a utility function for accessing the native vulkan command buffer
func (c *CommandBuffer) VK() vk.CommandBuffer {
	return c.VKCommandBuffer
}

// Begin capturing work for this command buffer
func (c *CommandBuffer) BeginContinueRenderPass(renderpass vk.RenderPass, framebuffer vk.Framebuffer) error {
	var beginInfo = vk.CommandBufferBeginInfo{}
	beginInfo.SType = vk.StructureTypeCommandBufferBeginInfo
	beginInfo.Flags = vk.CommandBufferUsageFlags(vk.CommandBufferUsageRenderPassContinueBit)

	inheritInfo := vk.CommandBufferInheritanceInfo{}
	inheritInfo.SType = vk.StructureTypeCommandBufferInheritanceInfo
	inheritInfo.Framebuffer = framebuffer
	inheritInfo.RenderPass = renderpass

	beginInfo.PInheritanceInfo = []vk.CommandBufferInheritanceInfo{inheritInfo}

	return vk.Error(vk.BeginCommandBuffer(c.VKCommandBuffer, &beginInfo))

}

// Begin capturing work for this command buffer
func (c *CommandBuffer) Begin() error {
	var beginInfo = vk.CommandBufferBeginInfo{}
	beginInfo.SType = vk.StructureTypeCommandBufferBeginInfo
	beginInfo.Flags = 0
	return vk.Error(vk.BeginCommandBuffer(c.VKCommandBuffer, &beginInfo))

}

// BeginOneTime begins capturing work for this command buffer, with the stipulation that it will only be used once (instead of put back in the pool of command buffers)
func (c *CommandBuffer) BeginOneTime() error {
	var beginInfo = vk.CommandBufferBeginInfo{}
	beginInfo.SType = vk.StructureTypeCommandBufferBeginInfo
	beginInfo.Flags = vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit)
	return vk.Error(vk.BeginCommandBuffer(c.VKCommandBuffer, &beginInfo))

}

func (c *CommandBuffer) CmdBindComputePipeline(p *ComputePipeline) {
	vk.CmdBindPipeline(c.VKCommandBuffer, vk.PipelineBindPointCompute, p.VKPipeline)
}

func (c *CommandBuffer) CmdBindDescriptorSets(bindPoint vk.PipelineBindPoint, layout *PipelineLayout, firstSet int, descriptorSets ...*DescriptorSet) {

	sets := make([]vk.DescriptorSet, len(descriptorSets))
	for i, _ := range descriptorSets {
		sets[i] = descriptorSets[i].VKDescriptorSet
	}

	vk.CmdBindDescriptorSets(c.VKCommandBuffer, bindPoint,
		layout.VKPipelineLayout, uint32(firstSet), uint32(len(descriptorSets)), sets, 0, nil)

}

func (c *CommandBuffer) CmdDispatch(x, y, z int) {
	vk.CmdDispatch(c.VKCommandBuffer, uint32(x), uint32(y), uint32(z))
}

// End describing work for this command buffer
func (c *CommandBuffer) End() error {
	return vk.Error(vk.EndCommandBuffer(c.VKCommandBuffer))
}

// vkImageHandle extracts the native vk.Image from whichever concrete vkg
// image type a tasklist.ImageHandle was declared with. Image,
// BoundImage, ImageResource and StagedBoundImage all satisfy this
// through their embedded Image.
type vkImageHandle interface {
	VK() vk.Image
}

// PipelineBarrier implements tasklist.CommandList: it combines every
// given barrier's own stage masks into the single src/dst stage mask one
// vkCmdPipelineBarrier call needs, and turns each tasklist.ImageBarrier's
// slice into a vk.ImageSubresourceRange.
func (c *CommandBuffer) PipelineBarrier(memoryBarriers []tasklist.MemoryBarrier, imageBarriers []tasklist.ImageBarrier) error {
	if len(memoryBarriers) == 0 && len(imageBarriers) == 0 {
		return nil
	}

	var srcStage, dstStage vk.PipelineStageFlags

	vkMemoryBarriers := make([]vk.MemoryBarrier, 0, len(memoryBarriers))
	for _, b := range memoryBarriers {
		srcStage |= b.SrcStage
		dstStage |= b.DstStage
		vkMemoryBarriers = append(vkMemoryBarriers, vk.MemoryBarrier{
			SType:         vk.StructureTypeMemoryBarrier,
			SrcAccessMask: b.SrcAccess,
			DstAccessMask: b.DstAccess,
		})
	}

	vkImageBarriers := make([]vk.ImageMemoryBarrier, 0, len(imageBarriers))
	for _, b := range imageBarriers {
		srcStage |= b.SrcStage
		dstStage |= b.DstStage

		var image vk.Image
		if h, ok := b.Image.(vkImageHandle); ok {
			image = h.VK()
		}

		vkImageBarriers = append(vkImageBarriers, vk.ImageMemoryBarrier{
			SType:               vk.StructureTypeImageMemoryBarrier,
			SrcAccessMask:       b.SrcAccess,
			DstAccessMask:       b.DstAccess,
			OldLayout:           b.OldLayout,
			NewLayout:           b.NewLayout,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:               image,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     b.Slice.AspectMask,
				BaseMipLevel:   b.Slice.BaseMip,
				LevelCount:     b.Slice.MipCount,
				BaseArrayLayer: b.Slice.BaseArrayLayer,
				LayerCount:     b.Slice.ArrayLayerCount,
			},
		})
	}

	if srcStage == 0 {
		srcStage = vk.PipelineStageFlags(vk.PipelineStageTopOfPipeBit)
	}
	if dstStage == 0 {
		dstStage = vk.PipelineStageFlags(vk.PipelineStageBottomOfPipeBit)
	}

	vk.CmdPipelineBarrier(c.VKCommandBuffer, srcStage, dstStage, 0,
		uint32(len(vkMemoryBarriers)), vkMemoryBarriers,
		0, nil,
		uint32(len(vkImageBarriers)), vkImageBarriers)

	return nil
}
