package tasklist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskListLifecycle(t *testing.T) {
	dev := newFakeDevice()
	tl := New(Config{DebugName: "test", Device: dev, MakeView: fakeMakeView})

	bufID, err := tl.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{}})
	require.NoError(t, err)

	require.NoError(t, tl.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferWrite)}, Callback: noopCallback}))

	_, err = tl.LastBufferAccess(bufID)
	require.ErrorIs(t, err, ErrNotCompiled)

	require.NoError(t, tl.Compile())

	// Building-state-only operations must now be rejected.
	err = tl.AddTask(TaskInfo{DebugName: "late"})
	require.ErrorIs(t, err, ErrAlreadyCompiled)
	_, err = tl.CreateTaskBuffer(TaskBufferInfo{DebugName: "late"})
	require.ErrorIs(t, err, ErrAlreadyCompiled)

	err = tl.Compile()
	require.ErrorIs(t, err, ErrAlreadyCompiled)

	cls, err := tl.Execute()
	require.NoError(t, err)
	require.Len(t, cls, 1)

	access, err := tl.LastBufferAccess(bufID)
	require.NoError(t, err)
	require.Equal(t, BufferAccessTransferWrite, access)
}

func TestTaskListExecuteBeforeCompileFails(t *testing.T) {
	tl := New(Config{Device: newFakeDevice(), MakeView: fakeMakeView})
	_, err := tl.Execute()
	require.ErrorIs(t, err, ErrNotCompiled)
}

func TestTaskListWarningsSurfaced(t *testing.T) {
	dev := newFakeDevice()
	tl := New(Config{Device: dev, MakeView: fakeMakeView})

	bufID, err := tl.CreateTaskBuffer(TaskBufferInfo{DebugName: "unwritten", Buffer: &fakeBuffer{}})
	require.NoError(t, err)
	require.NoError(t, tl.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{BufferUse(bufID, BufferAccessShaderRead)}, Callback: noopCallback}))

	require.NoError(t, tl.Compile())
	warnings := tl.Warnings()
	require.Len(t, warnings, 1)
	require.Equal(t, "unwritten", warnings[0].ResourceName)
}

func TestTaskListDebugPrint(t *testing.T) {
	dev := newFakeDevice()
	tl := New(Config{DebugName: "demo", Device: dev, MakeView: fakeMakeView})

	bufID, err := tl.CreateTaskBuffer(TaskBufferInfo{DebugName: "buf", Buffer: &fakeBuffer{}})
	require.NoError(t, err)
	require.NoError(t, tl.AddTask(TaskInfo{DebugName: "t", Uses: []TaskUse{BufferUse(bufID, BufferAccessTransferWrite)}, Callback: noopCallback}))
	require.NoError(t, tl.Compile())

	var buf bytes.Buffer
	require.NoError(t, tl.DebugPrint(&buf))
	require.Contains(t, buf.String(), "demo")
	require.Contains(t, buf.String(), "batch 0")
}

func TestTaskListDebugPrintBeforeCompileFails(t *testing.T) {
	tl := New(Config{Device: newFakeDevice(), MakeView: fakeMakeView})
	var buf bytes.Buffer
	err := tl.DebugPrint(&buf)
	require.ErrorIs(t, err, ErrNotCompiled)
}
