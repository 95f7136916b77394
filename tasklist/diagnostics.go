package tasklist

import (
	"fmt"
	"io"
	"strings"

	vk "github.com/vulkan-go/vulkan"
)

// DebugPrint writes a human-readable dump of a compiled plan: every
// batch's barriers (with symbolic stage/access/layout names) followed by
// its tasks, then the terminal barrier set and any compile warnings
// (spec.md 4.7). Intended for development use, not machine parsing.
func DebugPrint(w io.Writer, plan *CompiledPlan, registry *Registry) error {
	for i, batch := range plan.Batches {
		if _, err := fmt.Fprintf(w, "batch %d:\n", i); err != nil {
			return err
		}
		if err := printBarrierSet(w, batch.Barriers, registry); err != nil {
			return err
		}
		for _, t := range batch.Tasks {
			if _, err := fmt.Fprintf(w, "    task %q\n", t.DebugName); err != nil {
				return err
			}
			for _, u := range t.Uses {
				if err := printUse(w, u, registry); err != nil {
					return err
				}
			}
		}
	}

	if !plan.Terminal.empty() {
		if _, err := fmt.Fprintf(w, "terminal:\n"); err != nil {
			return err
		}
		if err := printBarrierSet(w, plan.Terminal, registry); err != nil {
			return err
		}
	}

	for _, warn := range plan.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %s: %s\n", warn.ResourceName, warn.Message); err != nil {
			return err
		}
	}

	return nil
}

func printBarrierSet(w io.Writer, bs BarrierSet, registry *Registry) error {
	for _, b := range bs.Memory {
		if _, err := fmt.Fprintf(w, "  memory barrier: %s/%s -> %s/%s\n",
			formatStage(b.SrcStage), formatAccess(b.SrcAccess),
			formatStage(b.DstStage), formatAccess(b.DstAccess)); err != nil {
			return err
		}
	}
	for _, b := range bs.Images {
		name := imageBarrierName(b, registry)
		if _, err := fmt.Fprintf(w, "  image barrier %s%s: %s/%s/%s -> %s/%s/%s\n",
			name, formatImageSlice(b.Slice),
			formatStage(b.SrcStage), formatAccess(b.SrcAccess), formatLayout(b.OldLayout),
			formatStage(b.DstStage), formatAccess(b.DstAccess), formatLayout(b.NewLayout)); err != nil {
			return err
		}
	}
	return nil
}

func printUse(w io.Writer, u TaskUse, registry *Registry) error {
	if u.IsBuffer() {
		id, access := u.Buffer()
		entry, _ := registry.bufferAt(id)
		name := "<unknown>"
		if entry != nil {
			name = entry.info.DebugName
		}
		_, err := fmt.Fprintf(w, "        buffer %q: %s\n", name, access)
		return err
	}

	id, access, slice, _ := u.Image()
	entry, _ := registry.imageAt(id)
	name := "<unknown>"
	if entry != nil {
		name = entry.info.DebugName
	}
	_, err := fmt.Fprintf(w, "        image %q%s: %s\n", name, formatImageSlice(slice), access)
	return err
}

func imageBarrierName(b ImageBarrier, registry *Registry) string {
	tagged, ok := b.Image.(imageTaskID)
	if !ok {
		return "<resolved>"
	}
	entry, err := registry.imageAt(tagged.id)
	if err != nil || entry == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%q", entry.info.DebugName)
}

func formatImageSlice(s ImageSlice) string {
	if s.Empty() {
		return "[full]"
	}
	return fmt.Sprintf("[mip %d..%d, layer %d..%d]", s.BaseMip, s.BaseMip+s.MipCount, s.BaseArrayLayer, s.BaseArrayLayer+s.ArrayLayerCount)
}

var stageNames = []struct {
	bit  vk.PipelineStageFlagBits
	name string
}{
	{vk.PipelineStageTopOfPipeBit, "TOP_OF_PIPE"},
	{vk.PipelineStageDrawIndirectBit, "DRAW_INDIRECT"},
	{vk.PipelineStageVertexInputBit, "VERTEX_INPUT"},
	{vk.PipelineStageVertexShaderBit, "VERTEX_SHADER"},
	{vk.PipelineStageTessellationControlShaderBit, "TESSELLATION_CONTROL_SHADER"},
	{vk.PipelineStageTessellationEvaluationShaderBit, "TESSELLATION_EVALUATION_SHADER"},
	{vk.PipelineStageGeometryShaderBit, "GEOMETRY_SHADER"},
	{vk.PipelineStageFragmentShaderBit, "FRAGMENT_SHADER"},
	{vk.PipelineStageEarlyFragmentTestsBit, "EARLY_FRAGMENT_TESTS"},
	{vk.PipelineStageLateFragmentTestsBit, "LATE_FRAGMENT_TESTS"},
	{vk.PipelineStageColorAttachmentOutputBit, "COLOR_ATTACHMENT_OUTPUT"},
	{vk.PipelineStageComputeShaderBit, "COMPUTE_SHADER"},
	{vk.PipelineStageTransferBit, "TRANSFER"},
	{vk.PipelineStageBottomOfPipeBit, "BOTTOM_OF_PIPE"},
	{vk.PipelineStageHostBit, "HOST"},
}

var accessNames = []struct {
	bit  vk.AccessFlagBits
	name string
}{
	{vk.AccessIndirectCommandReadBit, "INDIRECT_COMMAND_READ"},
	{vk.AccessIndexReadBit, "INDEX_READ"},
	{vk.AccessShaderReadBit, "SHADER_READ"},
	{vk.AccessShaderWriteBit, "SHADER_WRITE"},
	{vk.AccessColorAttachmentReadBit, "COLOR_ATTACHMENT_READ"},
	{vk.AccessColorAttachmentWriteBit, "COLOR_ATTACHMENT_WRITE"},
	{vk.AccessDepthStencilAttachmentReadBit, "DEPTH_STENCIL_ATTACHMENT_READ"},
	{vk.AccessDepthStencilAttachmentWriteBit, "DEPTH_STENCIL_ATTACHMENT_WRITE"},
	{vk.AccessTransferReadBit, "TRANSFER_READ"},
	{vk.AccessTransferWriteBit, "TRANSFER_WRITE"},
	{vk.AccessHostReadBit, "HOST_READ"},
	{vk.AccessHostWriteBit, "HOST_WRITE"},
}

var layoutNames = map[vk.ImageLayout]string{
	vk.ImageLayoutUndefined:                "UNDEFINED",
	vk.ImageLayoutGeneral:                  "GENERAL",
	vk.ImageLayoutColorAttachmentOptimal:   "COLOR_ATTACHMENT_OPTIMAL",
	vk.ImageLayoutDepthStencilAttachmentOptimal: "DEPTH_STENCIL_ATTACHMENT_OPTIMAL",
	vk.ImageLayoutDepthStencilReadOnlyOptimal:   "DEPTH_STENCIL_READ_ONLY_OPTIMAL",
	vk.ImageLayoutShaderReadOnlyOptimal:    "SHADER_READ_ONLY_OPTIMAL",
	vk.ImageLayoutTransferSrcOptimal:       "TRANSFER_SRC_OPTIMAL",
	vk.ImageLayoutTransferDstOptimal:       "TRANSFER_DST_OPTIMAL",
	vk.ImageLayoutPresentSrc:               "PRESENT_SRC",
}

func formatStage(s vk.PipelineStageFlags) string {
	if s == 0 {
		return "NONE"
	}
	var parts []string
	for _, n := range stageNames {
		if s&vk.PipelineStageFlags(n.bit) != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("0x%x", uint64(s))
	}
	return strings.Join(parts, "|")
}

func formatAccess(a vk.AccessFlags) string {
	if a == 0 {
		return "NONE"
	}
	var parts []string
	for _, n := range accessNames {
		if a&vk.AccessFlags(n.bit) != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("0x%x", uint64(a))
	}
	return strings.Join(parts, "|")
}

func formatLayout(l vk.ImageLayout) string {
	if s, ok := layoutNames[l]; ok {
		return s
	}
	return fmt.Sprintf("ImageLayout(%d)", int(l))
}
