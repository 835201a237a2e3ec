package audio

import (
	"fmt"
	"os"
	"sync"
)

// Recorder accumulates tutor PCM for an optional session dump. It is a
// debugging aid: when enabled, everything the scheduler plays also lands in
// a WAV file that ordinary players can open.
type Recorder struct {
	sampleRate int

	mu  sync.Mutex
	pcm []byte
}

// NewRecorder builds a recorder for mono s16le audio at the given rate.
func NewRecorder(sampleRateHz int) *Recorder {
	if sampleRateHz <= 0 {
		sampleRateHz = PlaybackRateHz
	}
	return &Recorder{sampleRate: sampleRateHz}
}

// Append stores one PCM chunk.
func (r *Recorder) Append(pcm []byte) {
	if r == nil || len(pcm) == 0 {
		return
	}
	r.mu.Lock()
	r.pcm = append(r.pcm, pcm...)
	r.mu.Unlock()
}

// Len reports the recorded byte count.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pcm)
}

// WriteFile writes the recording as a WAV file. Recording an empty session
// is an error so callers do not scatter zero-length dumps around.
func (r *Recorder) WriteFile(path string) error {
	if r == nil {
		return fmt.Errorf("audio: recorder is nil")
	}
	r.mu.Lock()
	pcm := make([]byte, len(r.pcm))
	copy(pcm, r.pcm)
	r.mu.Unlock()

	if len(pcm) == 0 {
		return fmt.Errorf("audio: nothing recorded")
	}
	return os.WriteFile(path, WAVFromPCM(pcm, r.sampleRate, 16, 1), 0o644)
}
