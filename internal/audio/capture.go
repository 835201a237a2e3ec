package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/gen2brain/malgo"
)

// CaptureConfig tunes the microphone pipeline.
type CaptureConfig struct {
	// SampleRateHz defaults to CaptureRateHz.
	SampleRateHz int

	// FrameSamples is how many samples accumulate before a frame is emitted.
	// Defaults to FrameSamples.
	FrameSamples int
}

// Capture owns the microphone device and chops its float32 stream into
// fixed-size frames. Frames are handed to the callback on the device's data
// thread; the callback must not block.
type Capture struct {
	device  *malgo.Device
	onFrame func(frame []float32)

	mu      sync.Mutex
	pending []float32
	size    int
	stopped bool
}

// NewCapture opens a mono float32 capture device on ctx. The device is not
// started; call Start once the session is ready for frames.
func NewCapture(ctx malgo.Context, cfg CaptureConfig, onFrame func(frame []float32)) (*Capture, error) {
	if onFrame == nil {
		return nil, fmt.Errorf("audio: capture frame callback is required")
	}
	rate := cfg.SampleRateHz
	if rate <= 0 {
		rate = CaptureRateHz
	}
	size := cfg.FrameSamples
	if size <= 0 {
		size = FrameSamples
	}

	c := &Capture{
		onFrame: onFrame,
		pending: make([]float32, 0, size*2),
		size:    size,
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatF32
	deviceConfig.Capture.Channels = 1
	deviceConfig.SampleRate = uint32(rate)
	deviceConfig.PeriodSizeInMilliseconds = 20

	device, err := malgo.InitDevice(ctx, deviceConfig, malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			c.ingest(input)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("audio: init capture device: %w", err)
	}
	c.device = device
	return c, nil
}

// Start begins delivering frames.
func (c *Capture) Start() error {
	if err := c.device.Start(); err != nil {
		return fmt.Errorf("audio: start capture device: %w", err)
	}
	return nil
}

// Stop releases the device synchronously. No frame callback fires after Stop
// returns; any partial frame is discarded. Safe to call more than once.
func (c *Capture) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	c.pending = nil
	c.mu.Unlock()

	if c.device != nil {
		_ = c.device.Stop()
		c.device.Uninit()
	}
}

func (c *Capture) ingest(input []byte) {
	samples := decodeF32LE(input)
	if len(samples) == 0 {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.pending = append(c.pending, samples...)
	var frames [][]float32
	for len(c.pending) >= c.size {
		frame := make([]float32, c.size)
		copy(frame, c.pending[:c.size])
		c.pending = c.pending[c.size:]
		frames = append(frames, frame)
	}
	c.mu.Unlock()

	for _, frame := range frames {
		c.onFrame(frame)
	}
}

func decodeF32LE(data []byte) []float32 {
	n := len(data) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}
