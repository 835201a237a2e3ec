// Package audio holds the PCM plumbing between the microphone, the wire and
// the speaker: sample codecs, the playback scheduler and the spectrum tap.
package audio

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	// CaptureRateHz is the microphone sample rate the service expects.
	CaptureRateHz = 16000

	// PlaybackRateHz is the sample rate of tutor audio coming back.
	PlaybackRateHz = 24000

	// FrameSamples is the capture frame size in samples (~256ms at 16kHz).
	FrameSamples = 4096

	bytesPerSample = 2
)

// EncodeS16LE converts float32 samples in [-1, 1] to 16-bit little-endian
// PCM. Out-of-range samples are clamped, not wrapped.
func EncodeS16LE(samples []float32) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, sample := range samples {
		v := float64(sample)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(math.Round(v*32767))))
	}
	return out
}

// DecodeS16LE converts 16-bit little-endian PCM back to float32 samples.
// A trailing odd byte is dropped.
func DecodeS16LE(data []byte) []float32 {
	n := len(data) / bytesPerSample
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(data[i*2:]))
		out[i] = float32(s) / 32768
	}
	return out
}

// DurationS16LE returns the playback duration of a mono s16le buffer.
func DurationS16LE(byteLen, sampleRateHz int) time.Duration {
	if byteLen <= 0 || sampleRateHz <= 0 {
		return 0
	}
	samples := byteLen / bytesPerSample
	return time.Duration(samples) * time.Second / time.Duration(sampleRateHz)
}
