package audio

import (
	"math"
	"testing"
)

func sinePCM(freqBin, windowSize int, amp float64) []byte {
	samples := make([]float32, windowSize)
	for i := range samples {
		samples[i] = float32(amp * math.Sin(2*math.Pi*float64(freqBin)*float64(i)/float64(windowSize)))
	}
	return EncodeS16LE(samples)
}

func TestAnalyser_SilenceBeforeFirstFeed(t *testing.T) {
	a := NewAnalyser(DefaultAnalyserSize)

	bins := a.Spectrum()
	if len(bins) != DefaultAnalyserSize/2 {
		t.Fatalf("bin count=%d, want %d", len(bins), DefaultAnalyserSize/2)
	}
	for i, bin := range bins {
		if bin != 0 {
			t.Fatalf("bin[%d]=%v, want 0", i, bin)
		}
	}
}

func TestAnalyser_PeakTracksToneFrequency(t *testing.T) {
	const bin = 4
	a := NewAnalyser(DefaultAnalyserSize)
	a.Feed(sinePCM(bin, DefaultAnalyserSize, 0.8))

	bins := a.Spectrum()
	peak := 0
	for i := range bins {
		if bins[i] > bins[peak] {
			peak = i
		}
	}
	// Bins exclude DC, so the tone lands at index bin-1.
	if peak != bin-1 {
		t.Fatalf("peak bin=%d, want %d (bins=%v)", peak, bin-1, bins)
	}
	if bins[peak] < 0.5 {
		t.Fatalf("peak magnitude=%v, want >= 0.5", bins[peak])
	}
}

func TestAnalyser_KeepsOnlyTrailingWindow(t *testing.T) {
	a := NewAnalyser(DefaultAnalyserSize)
	a.Feed(sinePCM(2, DefaultAnalyserSize, 0.8))
	// Large silent feed must displace the tone entirely.
	a.Feed(make([]byte, DefaultAnalyserSize*4*bytesPerSample))

	for i, bin := range a.Spectrum() {
		if bin > 0.01 {
			t.Fatalf("bin[%d]=%v after silence, want ~0", i, bin)
		}
	}
}

func TestAnalyser_ResetSilencesSpectrum(t *testing.T) {
	a := NewAnalyser(DefaultAnalyserSize)
	a.Feed(sinePCM(3, DefaultAnalyserSize, 0.8))
	a.Reset()

	for i, bin := range a.Spectrum() {
		if bin != 0 {
			t.Fatalf("bin[%d]=%v after reset, want 0", i, bin)
		}
	}
}

func TestRecorder_WritesWAVDump(t *testing.T) {
	r := NewRecorder(PlaybackRateHz)
	r.Append(make([]byte, 480))
	r.Append(make([]byte, 480))
	if r.Len() != 960 {
		t.Fatalf("len=%d, want 960", r.Len())
	}

	path := t.TempDir() + "/session.wav"
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
}

func TestRecorder_RefusesEmptyDump(t *testing.T) {
	r := NewRecorder(PlaybackRateHz)
	if err := r.WriteFile(t.TempDir() + "/empty.wav"); err == nil {
		t.Fatalf("expected error for empty recording")
	}
}
