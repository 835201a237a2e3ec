package audio

import (
	"sync"
	"time"
)

// Clock abstracts the output clock so scheduling is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock used in production.
func SystemClock() Clock { return systemClock{} }

// Sink consumes scheduled PCM in order. Write appends to the output stream;
// Flush discards everything buffered but not yet played.
type Sink interface {
	Write(pcm []byte) error
	Flush()
}

type chunkState int

const (
	chunkScheduled chunkState = iota
	chunkDone
	chunkStopped
)

// Chunk is one scheduled playback buffer. It stays in the scheduler's active
// set until it finishes naturally or an interruption stops it.
type Chunk struct {
	start time.Time
	dur   time.Duration

	mu    sync.Mutex
	state chunkState
}

// StartAt reports the chunk's position on the output timeline.
func (c *Chunk) StartAt() time.Time { return c.start }

// Duration reports the chunk's playback length.
func (c *Chunk) Duration() time.Duration { return c.dur }

// Stopped reports whether the chunk was cut off before finishing.
func (c *Chunk) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == chunkStopped
}

// stop is best-effort: a chunk that already finished stays finished.
func (c *Chunk) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == chunkScheduled {
		c.state = chunkStopped
	}
}

func (c *Chunk) finishIfElapsed(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != chunkScheduled {
		return true
	}
	if !now.Before(c.start.Add(c.dur)) {
		c.state = chunkDone
		return true
	}
	return false
}

// Scheduler places tutor audio chunks back to back on a single output
// timeline. Chunks are written to the sink in receipt order; the timeline
// bookkeeping guarantees no gaps or overlaps even when chunks arrive in
// bursts. An interruption wipes the timeline so barge-in takes effect before
// the next chunk lands.
type Scheduler struct {
	clock      Clock
	sink       Sink
	sampleRate int
	tap        func(pcm []byte)

	mu     sync.Mutex
	next   time.Time
	active map[*Chunk]struct{}
}

// NewScheduler builds a scheduler over the given sink. tap, when non-nil,
// observes every written buffer without consuming it.
func NewScheduler(clock Clock, sink Sink, sampleRateHz int, tap func(pcm []byte)) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	if sampleRateHz <= 0 {
		sampleRateHz = PlaybackRateHz
	}
	return &Scheduler{
		clock:      clock,
		sink:       sink,
		sampleRate: sampleRateHz,
		tap:        tap,
		active:     make(map[*Chunk]struct{}),
	}
}

// Schedule places one decoded s16le chunk at the next free slot on the
// timeline. The slot is clamped to the current clock so a stall never
// schedules into the past. Empty chunks are ignored.
func (s *Scheduler) Schedule(pcm []byte) (*Chunk, error) {
	if len(pcm) < bytesPerSample {
		return nil, nil
	}

	s.mu.Lock()
	now := s.clock.Now()
	s.sweepLocked(now)

	start := s.next
	if start.Before(now) {
		start = now
	}
	dur := DurationS16LE(len(pcm), s.sampleRate)
	s.next = start.Add(dur)

	chunk := &Chunk{start: start, dur: dur}
	s.active[chunk] = struct{}{}
	s.mu.Unlock()

	if s.tap != nil {
		s.tap(pcm)
	}
	if s.sink != nil {
		if err := s.sink.Write(pcm); err != nil {
			return chunk, err
		}
	}
	return chunk, nil
}

// Interrupt stops every active chunk, flushes the sink and resets the
// timeline so the next chunk starts at the current clock time.
func (s *Scheduler) Interrupt() {
	s.mu.Lock()
	for chunk := range s.active {
		chunk.stop()
		delete(s.active, chunk)
	}
	s.next = time.Time{}
	s.mu.Unlock()

	if s.sink != nil {
		s.sink.Flush()
	}
}

// Active reports how many chunks are still on the timeline.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.clock.Now())
	return len(s.active)
}

// NextStartTime reports where the next chunk will be placed. The zero time
// means the timeline is reset and the next chunk starts immediately.
func (s *Scheduler) NextStartTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

func (s *Scheduler) sweepLocked(now time.Time) {
	for chunk := range s.active {
		if chunk.finishIfElapsed(now) {
			delete(s.active, chunk)
		}
	}
}
