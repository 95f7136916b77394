package vkg

import (
	vk "github.com/vulkan-go/vulkan"
)

// Event wraps a vk.Event, the primitive a split barrier (CmdSetEvent +
// CmdWaitEvents on two separate command-stream points) is built from.
type Event struct {
	Device  *Device
	VKEvent vk.Event
}

func (d *Device) VKCreateEvent() (vk.Event, error) {
	var event vk.Event
	eventCreateInfo := vk.EventCreateInfo{
		SType: vk.StructureTypeEventCreateInfo,
	}
	err := vk.Error(vk.CreateEvent(d.VKDevice, &eventCreateInfo, nil, &event))
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (d *Device) CreateEvent() (*Event, error) {
	event, err := d.VKCreateEvent()
	if err != nil {
		return nil, err
	}

	var ret Event
	ret.Device = d
	ret.VKEvent = event
	return &ret, nil
}

func (e *Event) Destroy() {
	vk.DestroyEvent(e.Device.VKDevice, e.VKEvent, nil)
}

func (e *Event) Reset() error {
	return vk.Error(vk.ResetEvent(e.Device.VKDevice, e.VKEvent))
}

// CmdSet records the first half of a split barrier: signal this event
// once the work up to this point in the command stream passes stage.
func (c *CommandBuffer) CmdSet(e *Event, stage vk.PipelineStageFlags) {
	vk.CmdSetEvent(c.VKCommandBuffer, e.VKEvent, stage)
}

// CmdWait records the second half of a split barrier: block stage-gated
// work after this point until every given event has been signaled, and
// apply the accompanying memory/image barriers.
func (c *CommandBuffer) CmdWait(events []*Event, srcStage, dstStage vk.PipelineStageFlags, memoryBarriers []vk.MemoryBarrier, imageBarriers []vk.ImageMemoryBarrier) {
	vkEvents := make([]vk.Event, len(events))
	for i, e := range events {
		vkEvents[i] = e.VKEvent
	}
	vk.CmdWaitEvents(c.VKCommandBuffer, uint32(len(vkEvents)), vkEvents, srcStage, dstStage,
		uint32(len(memoryBarriers)), memoryBarriers,
		0, nil,
		uint32(len(imageBarriers)), imageBarriers)
}
