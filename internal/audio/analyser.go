package audio

import (
	"encoding/binary"
	"math/cmplx"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// DefaultAnalyserSize is the FFT window length for the visualizer tap.
const DefaultAnalyserSize = 64

// Analyser is the visualization tap on the playback signal. It keeps a
// sliding window of the most recent output samples and exposes their
// frequency-domain magnitudes without consuming or delaying playback.
type Analyser struct {
	fft  *fourier.FFT
	size int

	mu     sync.Mutex
	window []float64
	filled bool
}

// NewAnalyser builds an analyser with the given window size (a power of two;
// DefaultAnalyserSize when zero or negative).
func NewAnalyser(size int) *Analyser {
	if size <= 0 {
		size = DefaultAnalyserSize
	}
	return &Analyser{
		fft:    fourier.NewFFT(size),
		size:   size,
		window: make([]float64, size),
	}
}

// Feed observes s16le PCM on its way to the sink. Only the trailing window
// is retained.
func (a *Analyser) Feed(pcm []byte) {
	n := len(pcm) / bytesPerSample
	if n == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if n >= a.size {
		off := (n - a.size) * bytesPerSample
		for i := 0; i < a.size; i++ {
			a.window[i] = sampleAt(pcm, off+i*bytesPerSample)
		}
	} else {
		copy(a.window, a.window[n:])
		base := a.size - n
		for i := 0; i < n; i++ {
			a.window[base+i] = sampleAt(pcm, i*bytesPerSample)
		}
	}
	a.filled = true
}

// Reset clears the window, silencing the visualizer after an interruption
// or teardown.
func (a *Analyser) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.window {
		a.window[i] = 0
	}
	a.filled = false
}

// Spectrum returns normalized magnitudes in [0, 1] for the window's
// frequency bins, DC excluded. The slice is freshly allocated per call.
func (a *Analyser) Spectrum() []float64 {
	a.mu.Lock()
	if !a.filled {
		a.mu.Unlock()
		return make([]float64, a.size/2)
	}
	seq := make([]float64, a.size)
	copy(seq, a.window)
	a.mu.Unlock()

	coeffs := a.fft.Coefficients(nil, seq)
	bins := make([]float64, a.size/2)
	scale := float64(a.size) / 2
	for i := range bins {
		mag := cmplx.Abs(coeffs[i+1]) / scale
		if mag > 1 {
			mag = 1
		}
		bins[i] = mag
	}
	return bins
}

func sampleAt(pcm []byte, off int) float64 {
	return float64(int16(binary.LittleEndian.Uint16(pcm[off:]))) / 32768
}
