package tasklist

import (
	vk "github.com/vulkan-go/vulkan"
)

// BufferAccess is the closed set of ways a task may touch a TaskBufferId.
// The zero value, BufferAccessNone, is the initial state of every buffer
// and carries empty stage/access masks.
type BufferAccess int

const (
	BufferAccessNone BufferAccess = iota

	// any-shader wildcard: the use may run on any shader stage.
	BufferAccessShaderRead
	BufferAccessShaderWrite
	BufferAccessShaderReadWrite

	BufferAccessVertexShaderRead
	BufferAccessVertexShaderWrite
	BufferAccessVertexShaderReadWrite

	BufferAccessTessellationControlShaderRead
	BufferAccessTessellationControlShaderWrite
	BufferAccessTessellationControlShaderReadWrite

	BufferAccessTessellationEvaluationShaderRead
	BufferAccessTessellationEvaluationShaderWrite
	BufferAccessTessellationEvaluationShaderReadWrite

	BufferAccessGeometryShaderRead
	BufferAccessGeometryShaderWrite
	BufferAccessGeometryShaderReadWrite

	BufferAccessFragmentShaderRead
	BufferAccessFragmentShaderWrite
	BufferAccessFragmentShaderReadWrite

	BufferAccessComputeShaderRead
	BufferAccessComputeShaderWrite
	BufferAccessComputeShaderReadWrite

	BufferAccessIndexRead
	BufferAccessIndirectRead

	BufferAccessTransferRead
	BufferAccessTransferWrite

	BufferAccessHostTransferRead
	BufferAccessHostTransferWrite
)

// ImageAccess is the closed set of ways a task may touch a TaskImageId.
type ImageAccess int

const (
	ImageAccessNone ImageAccess = iota

	ImageAccessShaderRead
	ImageAccessShaderWrite
	ImageAccessShaderReadWrite

	ImageAccessVertexShaderRead
	ImageAccessVertexShaderWrite
	ImageAccessVertexShaderReadWrite

	ImageAccessTessellationControlShaderRead
	ImageAccessTessellationControlShaderWrite
	ImageAccessTessellationControlShaderReadWrite

	ImageAccessTessellationEvaluationShaderRead
	ImageAccessTessellationEvaluationShaderWrite
	ImageAccessTessellationEvaluationShaderReadWrite

	ImageAccessGeometryShaderRead
	ImageAccessGeometryShaderWrite
	ImageAccessGeometryShaderReadWrite

	ImageAccessFragmentShaderRead
	ImageAccessFragmentShaderWrite
	ImageAccessFragmentShaderReadWrite

	ImageAccessComputeShaderRead
	ImageAccessComputeShaderWrite
	ImageAccessComputeShaderReadWrite

	ImageAccessTransferRead
	ImageAccessTransferWrite

	ImageAccessColorAttachment

	ImageAccessDepthStencilAttachment
	ImageAccessDepthStencilAttachmentRead

	ImageAccessResolveWrite

	ImageAccessPresent
)

// StageAccess is the (pipeline-stage mask, access mask) a buffer access
// decodes to.
type StageAccess struct {
	Stages  vk.PipelineStageFlags
	Access  vk.AccessFlags
}

// StageAccessLayout is the (pipeline-stage mask, access mask, image layout)
// an image access decodes to.
type StageAccessLayout struct {
	Stages vk.PipelineStageFlags
	Access vk.AccessFlags
	Layout vk.ImageLayout
}

const allShaderStages = vk.PipelineStageFlags(
	vk.PipelineStageVertexShaderBit |
		vk.PipelineStageTessellationControlShaderBit |
		vk.PipelineStageTessellationEvaluationShaderBit |
		vk.PipelineStageGeometryShaderBit |
		vk.PipelineStageFragmentShaderBit |
		vk.PipelineStageComputeShaderBit)

// readAccessBits and writeAccessBits partition the Vulkan access-flag space
// into "this bit means the use reads" and "this bit means the use writes".
// is_read/is_write/is_compatible are derived from these rather than from a
// second switch over every BufferAccess/ImageAccess value, so the
// read/write classification can never drift from the stage/access decode
// table below.
const readAccessBits = vk.AccessFlags(
	vk.AccessShaderReadBit |
		vk.AccessIndexReadBit |
		vk.AccessIndirectCommandReadBit |
		vk.AccessTransferReadBit |
		vk.AccessHostReadBit |
		vk.AccessColorAttachmentReadBit |
		vk.AccessDepthStencilAttachmentReadBit)

const writeAccessBits = vk.AccessFlags(
	vk.AccessShaderWriteBit |
		vk.AccessTransferWriteBit |
		vk.AccessHostWriteBit |
		vk.AccessColorAttachmentWriteBit |
		vk.AccessDepthStencilAttachmentWriteBit)

// BufferAccessToStageAccess is the total, pure mapping from a BufferAccess
// to the pipeline stage and access masks the device API must synchronize.
func BufferAccessToStageAccess(a BufferAccess) StageAccess {
	switch a {
	case BufferAccessNone:
		return StageAccess{}

	case BufferAccessShaderRead:
		return StageAccess{allShaderStages, vk.AccessFlags(vk.AccessShaderReadBit)}
	case BufferAccessShaderWrite:
		return StageAccess{allShaderStages, vk.AccessFlags(vk.AccessShaderWriteBit)}
	case BufferAccessShaderReadWrite:
		return StageAccess{allShaderStages, vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit)}

	case BufferAccessVertexShaderRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageVertexShaderBit), vk.AccessFlags(vk.AccessShaderReadBit)}
	case BufferAccessVertexShaderWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageVertexShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit)}
	case BufferAccessVertexShaderReadWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageVertexShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit)}

	case BufferAccessTessellationControlShaderRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageTessellationControlShaderBit), vk.AccessFlags(vk.AccessShaderReadBit)}
	case BufferAccessTessellationControlShaderWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageTessellationControlShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit)}
	case BufferAccessTessellationControlShaderReadWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageTessellationControlShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit)}

	case BufferAccessTessellationEvaluationShaderRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageTessellationEvaluationShaderBit), vk.AccessFlags(vk.AccessShaderReadBit)}
	case BufferAccessTessellationEvaluationShaderWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageTessellationEvaluationShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit)}
	case BufferAccessTessellationEvaluationShaderReadWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageTessellationEvaluationShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit)}

	case BufferAccessGeometryShaderRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageGeometryShaderBit), vk.AccessFlags(vk.AccessShaderReadBit)}
	case BufferAccessGeometryShaderWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageGeometryShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit)}
	case BufferAccessGeometryShaderReadWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageGeometryShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit)}

	case BufferAccessFragmentShaderRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageFragmentShaderBit), vk.AccessFlags(vk.AccessShaderReadBit)}
	case BufferAccessFragmentShaderWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageFragmentShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit)}
	case BufferAccessFragmentShaderReadWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageFragmentShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit)}

	case BufferAccessComputeShaderRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageComputeShaderBit), vk.AccessFlags(vk.AccessShaderReadBit)}
	case BufferAccessComputeShaderWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageComputeShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit)}
	case BufferAccessComputeShaderReadWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageComputeShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit)}

	case BufferAccessIndexRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageVertexInputBit), vk.AccessFlags(vk.AccessIndexReadBit)}
	case BufferAccessIndirectRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageDrawIndirectBit), vk.AccessFlags(vk.AccessIndirectCommandReadBit)}

	case BufferAccessTransferRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageTransferBit), vk.AccessFlags(vk.AccessTransferReadBit)}
	case BufferAccessTransferWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageTransferBit), vk.AccessFlags(vk.AccessTransferWriteBit)}

	case BufferAccessHostTransferRead:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageHostBit), vk.AccessFlags(vk.AccessHostReadBit)}
	case BufferAccessHostTransferWrite:
		return StageAccess{vk.PipelineStageFlags(vk.PipelineStageHostBit), vk.AccessFlags(vk.AccessHostWriteBit)}

	default:
		panic("unreachable: BufferAccessToStageAccess is a total mapping, every BufferAccess must be handled")
	}
}

// ImageAccessToStageAccessLayout is the total, pure mapping from an
// ImageAccess to the pipeline stage mask, access mask and required image
// layout. ImageAccessPresent is the only access whose layout is
// PRESENT_SRC; it is a read with an empty access mask, matching how the
// presentation engine itself does not require a memory dependency.
func ImageAccessToStageAccessLayout(a ImageAccess) StageAccessLayout {
	switch a {
	case ImageAccessNone:
		return StageAccessLayout{Layout: vk.ImageLayoutUndefined}

	case ImageAccessShaderRead:
		return StageAccessLayout{allShaderStages, vk.AccessFlags(vk.AccessShaderReadBit), vk.ImageLayoutShaderReadOnlyOptimal}
	case ImageAccessShaderWrite:
		return StageAccessLayout{allShaderStages, vk.AccessFlags(vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}
	case ImageAccessShaderReadWrite:
		return StageAccessLayout{allShaderStages, vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}

	case ImageAccessVertexShaderRead:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageVertexShaderBit), vk.AccessFlags(vk.AccessShaderReadBit), vk.ImageLayoutShaderReadOnlyOptimal}
	case ImageAccessVertexShaderWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageVertexShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}
	case ImageAccessVertexShaderReadWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageVertexShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}

	case ImageAccessTessellationControlShaderRead:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageTessellationControlShaderBit), vk.AccessFlags(vk.AccessShaderReadBit), vk.ImageLayoutShaderReadOnlyOptimal}
	case ImageAccessTessellationControlShaderWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageTessellationControlShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}
	case ImageAccessTessellationControlShaderReadWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageTessellationControlShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}

	case ImageAccessTessellationEvaluationShaderRead:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageTessellationEvaluationShaderBit), vk.AccessFlags(vk.AccessShaderReadBit), vk.ImageLayoutShaderReadOnlyOptimal}
	case ImageAccessTessellationEvaluationShaderWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageTessellationEvaluationShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}
	case ImageAccessTessellationEvaluationShaderReadWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageTessellationEvaluationShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}

	case ImageAccessGeometryShaderRead:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageGeometryShaderBit), vk.AccessFlags(vk.AccessShaderReadBit), vk.ImageLayoutShaderReadOnlyOptimal}
	case ImageAccessGeometryShaderWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageGeometryShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}
	case ImageAccessGeometryShaderReadWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageGeometryShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}

	case ImageAccessFragmentShaderRead:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageFragmentShaderBit), vk.AccessFlags(vk.AccessShaderReadBit), vk.ImageLayoutShaderReadOnlyOptimal}
	case ImageAccessFragmentShaderWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageFragmentShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}
	case ImageAccessFragmentShaderReadWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageFragmentShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}

	case ImageAccessComputeShaderRead:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageComputeShaderBit), vk.AccessFlags(vk.AccessShaderReadBit), vk.ImageLayoutShaderReadOnlyOptimal}
	case ImageAccessComputeShaderWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageComputeShaderBit), vk.AccessFlags(vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}
	case ImageAccessComputeShaderReadWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageComputeShaderBit), vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit), vk.ImageLayoutGeneral}

	case ImageAccessTransferRead:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageTransferBit), vk.AccessFlags(vk.AccessTransferReadBit), vk.ImageLayoutTransferSrcOptimal}
	case ImageAccessTransferWrite:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageTransferBit), vk.AccessFlags(vk.AccessTransferWriteBit), vk.ImageLayoutTransferDstOptimal}

	case ImageAccessColorAttachment:
		return StageAccessLayout{
			vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
			vk.AccessFlags(vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit),
			vk.ImageLayoutColorAttachmentOptimal,
		}

	case ImageAccessDepthStencilAttachment:
		return StageAccessLayout{
			vk.PipelineStageFlags(vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit),
			vk.AccessFlags(vk.AccessDepthStencilAttachmentReadBit | vk.AccessDepthStencilAttachmentWriteBit),
			vk.ImageLayoutDepthStencilAttachmentOptimal,
		}
	case ImageAccessDepthStencilAttachmentRead:
		return StageAccessLayout{
			vk.PipelineStageFlags(vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit),
			vk.AccessFlags(vk.AccessDepthStencilAttachmentReadBit),
			vk.ImageLayoutDepthStencilReadOnlyOptimal,
		}

	case ImageAccessResolveWrite:
		return StageAccessLayout{
			vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
			vk.AccessFlags(vk.AccessColorAttachmentWriteBit),
			vk.ImageLayoutColorAttachmentOptimal,
		}

	case ImageAccessPresent:
		return StageAccessLayout{vk.PipelineStageFlags(vk.PipelineStageBottomOfPipeBit), 0, vk.ImageLayoutPresentSrc}

	default:
		panic("unreachable: ImageAccessToStageAccessLayout is a total mapping, every ImageAccess must be handled")
	}
}

// IsRead reports whether a buffer access reads the resource.
func (a BufferAccess) IsRead() bool {
	return BufferAccessToStageAccess(a).Access&readAccessBits != 0
}

// IsWrite reports whether a buffer access writes the resource.
func (a BufferAccess) IsWrite() bool {
	return BufferAccessToStageAccess(a).Access&writeAccessBits != 0
}

// IsRead reports whether an image access reads the resource.
func (a ImageAccess) IsRead() bool {
	if a == ImageAccessPresent {
		return true
	}
	return ImageAccessToStageAccessLayout(a).Access&readAccessBits != 0
}

// IsWrite reports whether an image access writes the resource.
func (a ImageAccess) IsWrite() bool {
	return ImageAccessToStageAccessLayout(a).Access&writeAccessBits != 0
}

// IsCompatibleBufferAccess reports whether two buffer accesses within a
// single task may coexist: true iff both are reads.
func IsCompatibleBufferAccess(a, b BufferAccess) bool {
	return !a.IsWrite() && !b.IsWrite()
}

// IsCompatibleImageAccess reports whether two image accesses within a
// single task may coexist: true iff both are reads and require the same
// layout.
func IsCompatibleImageAccess(a, b ImageAccess) bool {
	if a.IsWrite() || b.IsWrite() {
		return false
	}
	return ImageAccessToStageAccessLayout(a).Layout == ImageAccessToStageAccessLayout(b).Layout
}

func (a BufferAccess) String() string {
	if s, ok := bufferAccessNames[a]; ok {
		return s
	}
	return "BufferAccess(unknown)"
}

func (a ImageAccess) String() string {
	if s, ok := imageAccessNames[a]; ok {
		return s
	}
	return "ImageAccess(unknown)"
}

var bufferAccessNames = map[BufferAccess]string{
	BufferAccessNone:                                   "NONE",
	BufferAccessShaderRead:                              "SHADER_READ",
	BufferAccessShaderWrite:                             "SHADER_WRITE",
	BufferAccessShaderReadWrite:                         "SHADER_READ_WRITE",
	BufferAccessVertexShaderRead:                        "VERTEX_SHADER_READ",
	BufferAccessVertexShaderWrite:                       "VERTEX_SHADER_WRITE",
	BufferAccessVertexShaderReadWrite:                   "VERTEX_SHADER_READ_WRITE",
	BufferAccessTessellationControlShaderRead:           "TESSELLATION_CONTROL_SHADER_READ",
	BufferAccessTessellationControlShaderWrite:          "TESSELLATION_CONTROL_SHADER_WRITE",
	BufferAccessTessellationControlShaderReadWrite:      "TESSELLATION_CONTROL_SHADER_READ_WRITE",
	BufferAccessTessellationEvaluationShaderRead:        "TESSELLATION_EVALUATION_SHADER_READ",
	BufferAccessTessellationEvaluationShaderWrite:       "TESSELLATION_EVALUATION_SHADER_WRITE",
	BufferAccessTessellationEvaluationShaderReadWrite:   "TESSELLATION_EVALUATION_SHADER_READ_WRITE",
	BufferAccessGeometryShaderRead:                      "GEOMETRY_SHADER_READ",
	BufferAccessGeometryShaderWrite:                     "GEOMETRY_SHADER_WRITE",
	BufferAccessGeometryShaderReadWrite:                 "GEOMETRY_SHADER_READ_WRITE",
	BufferAccessFragmentShaderRead:                      "FRAGMENT_SHADER_READ",
	BufferAccessFragmentShaderWrite:                     "FRAGMENT_SHADER_WRITE",
	BufferAccessFragmentShaderReadWrite:                 "FRAGMENT_SHADER_READ_WRITE",
	BufferAccessComputeShaderRead:                       "COMPUTE_SHADER_READ",
	BufferAccessComputeShaderWrite:                      "COMPUTE_SHADER_WRITE",
	BufferAccessComputeShaderReadWrite:                  "COMPUTE_SHADER_READ_WRITE",
	BufferAccessIndexRead:                               "INDEX_READ",
	BufferAccessIndirectRead:                            "INDIRECT_READ",
	BufferAccessTransferRead:                            "TRANSFER_READ",
	BufferAccessTransferWrite:                           "TRANSFER_WRITE",
	BufferAccessHostTransferRead:                        "HOST_TRANSFER_READ",
	BufferAccessHostTransferWrite:                       "HOST_TRANSFER_WRITE",
}

var imageAccessNames = map[ImageAccess]string{
	ImageAccessNone:                                   "NONE",
	ImageAccessShaderRead:                              "SHADER_READ",
	ImageAccessShaderWrite:                             "SHADER_WRITE",
	ImageAccessShaderReadWrite:                         "SHADER_READ_WRITE",
	ImageAccessVertexShaderRead:                        "VERTEX_SHADER_READ",
	ImageAccessVertexShaderWrite:                       "VERTEX_SHADER_WRITE",
	ImageAccessVertexShaderReadWrite:                   "VERTEX_SHADER_READ_WRITE",
	ImageAccessTessellationControlShaderRead:           "TESSELLATION_CONTROL_SHADER_READ",
	ImageAccessTessellationControlShaderWrite:          "TESSELLATION_CONTROL_SHADER_WRITE",
	ImageAccessTessellationControlShaderReadWrite:      "TESSELLATION_CONTROL_SHADER_READ_WRITE",
	ImageAccessTessellationEvaluationShaderRead:        "TESSELLATION_EVALUATION_SHADER_READ",
	ImageAccessTessellationEvaluationShaderWrite:       "TESSELLATION_EVALUATION_SHADER_WRITE",
	ImageAccessTessellationEvaluationShaderReadWrite:   "TESSELLATION_EVALUATION_SHADER_READ_WRITE",
	ImageAccessGeometryShaderRead:                      "GEOMETRY_SHADER_READ",
	ImageAccessGeometryShaderWrite:                     "GEOMETRY_SHADER_WRITE",
	ImageAccessGeometryShaderReadWrite:                 "GEOMETRY_SHADER_READ_WRITE",
	ImageAccessFragmentShaderRead:                      "FRAGMENT_SHADER_READ",
	ImageAccessFragmentShaderWrite:                     "FRAGMENT_SHADER_WRITE",
	ImageAccessFragmentShaderReadWrite:                 "FRAGMENT_SHADER_READ_WRITE",
	ImageAccessComputeShaderRead:                       "COMPUTE_SHADER_READ",
	ImageAccessComputeShaderWrite:                      "COMPUTE_SHADER_WRITE",
	ImageAccessComputeShaderReadWrite:                  "COMPUTE_SHADER_READ_WRITE",
	ImageAccessTransferRead:                            "TRANSFER_READ",
	ImageAccessTransferWrite:                           "TRANSFER_WRITE",
	ImageAccessColorAttachment:                         "COLOR_ATTACHMENT",
	ImageAccessDepthStencilAttachment:                  "DEPTH_STENCIL_ATTACHMENT",
	ImageAccessDepthStencilAttachmentRead:              "DEPTH_STENCIL_ATTACHMENT_READ",
	ImageAccessResolveWrite:                            "RESOLVE_WRITE",
	ImageAccessPresent:                                 "PRESENT",
}
