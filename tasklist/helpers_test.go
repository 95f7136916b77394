package tasklist

import (
	vk "github.com/vulkan-go/vulkan"
)

// recordedBarrier is one PipelineBarrier call captured by fakeCommandList,
// used by tests to assert on what the Executor actually issued.
type recordedBarrier struct {
	Memory []MemoryBarrier
	Images []ImageBarrier
}

// fakeCommandList is a spy CommandList: it never touches a real device, it
// just remembers every barrier call it is given.
type fakeCommandList struct {
	calls []recordedBarrier
}

func (f *fakeCommandList) PipelineBarrier(memoryBarriers []MemoryBarrier, imageBarriers []ImageBarrier) error {
	f.calls = append(f.calls, recordedBarrier{Memory: memoryBarriers, Images: imageBarriers})
	return nil
}

// fakeDevice hands out a single shared fakeCommandList, mirroring how the
// real Executor memoizes one CommandList across a plan's batches.
type fakeDevice struct {
	cl *fakeCommandList
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{cl: &fakeCommandList{}}
}

func (d *fakeDevice) CreateCommandList() (CommandList, error) {
	return d.cl, nil
}

// fakeImage and fakeBuffer are stand-ins for concrete vkg resource handles;
// the tasklist core never looks inside them.
type fakeImage struct{ name string }
type fakeBuffer struct{ name string }
type fakeImageView struct{ name string }

func fakeMakeView(image ImageHandle, viewType vk.ImageViewType, slice ImageSlice) (ImageViewHandle, error) {
	img, _ := image.(*fakeImage)
	name := "<unknown>"
	if img != nil {
		name = img.name
	}
	return &fakeImageView{name: name}, nil
}

func fullSlice2D() ImageSlice {
	return ImageSlice{
		BaseMip: 0, MipCount: 1,
		BaseArrayLayer: 0, ArrayLayerCount: 1,
		AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
	}
}
