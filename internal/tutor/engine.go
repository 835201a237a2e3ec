package tutor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/trendolabs/trendospeak/internal/audio"
	"github.com/trendolabs/trendospeak/internal/lesson"
	"github.com/trendolabs/trendospeak/pkg/live"
)

// ErrMissingCredential is returned when Connect is attempted without a
// service API key. It is a precondition failure, not a retryable error.
var ErrMissingCredential = errors.New("tutor: api key is not configured")

// ErrSessionActive is returned when Connect is attempted while a session is
// already connecting or connected.
var ErrSessionActive = errors.New("tutor: session already active")

const missingKeyAdvisory = "API Key not found in environment variables."

// Transport is the live connection as the engine sees it.
type Transport interface {
	Events() <-chan live.Event
	SendAudioFrame(pcm []byte) error
	SendText(text string) error
	Close() error
}

// DialFunc opens a Transport. Tests substitute fakes.
type DialFunc func(ctx context.Context, cfg live.Config) (Transport, error)

// CaptureDevice is the microphone as the engine sees it.
type CaptureDevice interface {
	Start() error
	Stop()
}

// CaptureFactory acquires a microphone that delivers float32 frames to
// onFrame. The factory runs during session open, so acquisition failures
// surface as session errors.
type CaptureFactory func(onFrame func(frame []float32)) (CaptureDevice, error)

// Config wires the engine to its collaborators.
type Config struct {
	APIKey         string
	Model          string
	Voice          string
	Endpoint       string
	ConnectTimeout time.Duration

	Logger *slog.Logger

	// Dial defaults to the production websocket client.
	Dial DialFunc

	// NewCapture acquires the microphone; nil disables capture (tests).
	NewCapture CaptureFactory

	Clock    audio.Clock
	Sink     audio.Sink
	Analyser *audio.Analyser
	Recorder *audio.Recorder
}

// Engine is the session core. One engine serves the whole process; at most
// one live session exists at a time, and only the engine creates or
// destroys it.
type Engine struct {
	cfg Config
	log *slog.Logger

	mu         sync.Mutex
	state      State
	errMsg     string
	generation uint64
	transport  Transport
	capture    CaptureDevice
	scheduler  *audio.Scheduler

	activeLessonID int

	transcript *Transcript
	notify     chan struct{}
}

// New builds an engine. It starts disconnected.
func New(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Dial == nil {
		cfg.Dial = func(ctx context.Context, lc live.Config) (Transport, error) {
			return live.Dial(ctx, lc)
		}
	}
	return &Engine{
		cfg:        cfg,
		log:        cfg.Logger,
		transcript: &Transcript{},
		notify:     make(chan struct{}, 1),
	}
}

// Connect opens a session. The currently selected lesson id is captured at
// call time and drives the priming command once the session opens.
func (e *Engine) Connect(ctx context.Context) error {
	e.mu.Lock()
	if e.state == StateConnecting || e.state == StateConnected {
		e.mu.Unlock()
		return ErrSessionActive
	}
	if e.cfg.APIKey == "" {
		// Precondition failure: advisory only, the state does not move.
		e.errMsg = missingKeyAdvisory
		e.mu.Unlock()
		e.notifyUI()
		return ErrMissingCredential
	}
	e.state = StateConnecting
	e.errMsg = ""
	e.generation++
	gen := e.generation
	lessonID := e.activeLessonID
	e.mu.Unlock()
	e.notifyUI()

	tr, err := e.cfg.Dial(ctx, live.Config{
		APIKey:            e.cfg.APIKey,
		Model:             e.cfg.Model,
		Voice:             e.cfg.Voice,
		SystemInstruction: lesson.SystemInstruction,
		Endpoint:          e.cfg.Endpoint,
		ConnectTimeout:    e.cfg.ConnectTimeout,
		Logger:            e.log,
	})
	if err != nil {
		e.fail(gen, fmt.Sprintf("Connection failed: %v", err))
		return err
	}

	e.mu.Lock()
	if e.generation != gen {
		// Torn down while dialing; the late connection must not revive it.
		e.mu.Unlock()
		_ = tr.Close()
		return nil
	}
	e.transport = tr
	e.scheduler = audio.NewScheduler(e.cfg.Clock, e.cfg.Sink, audio.PlaybackRateHz, e.playbackTap)
	e.mu.Unlock()

	go e.eventLoop(gen, tr, lessonID)
	return nil
}

// Disconnect tears the session down. Safe to call at any time, repeatedly.
func (e *Engine) Disconnect() {
	e.teardown(0, StateDisconnected, "")
}

// SelectLesson makes id the active lesson. While connected this also sends
// one context-switch command and records one user-attributed entry.
func (e *Engine) SelectLesson(id int) error {
	l, ok := lesson.ByID(id)
	if !ok {
		return fmt.Errorf("tutor: unknown lesson %d", id)
	}

	e.mu.Lock()
	e.activeLessonID = id
	connected := e.state == StateConnected
	tr := e.transport
	e.mu.Unlock()

	if connected && tr != nil {
		e.transcript.Append(live.SpeakerUser, lesson.SwitchAnnouncement(l), true)
		if err := tr.SendText(lesson.SwitchCommand(l)); err != nil {
			e.log.Warn("lesson switch command failed", "lesson", id, "error", err)
		}
	}
	e.notifyUI()
	return nil
}

// State reports the connection state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ErrorMessage is the current advisory string, empty when none. It is
// cleared when a new connection attempt begins.
func (e *Engine) ErrorMessage() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errMsg
}

// ActiveLessonID reports the selected lesson, zero when none.
func (e *Engine) ActiveLessonID() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeLessonID
}

// Messages snapshots the transcript.
func (e *Engine) Messages() []Message {
	return e.transcript.Messages()
}

// Spectrum exposes the playback visualizer bins, nil without an analyser.
func (e *Engine) Spectrum() []float64 {
	if e.cfg.Analyser == nil {
		return nil
	}
	return e.cfg.Analyser.Spectrum()
}

// Notify signals (coalesced) whenever engine state or transcript changes.
func (e *Engine) Notify() <-chan struct{} {
	return e.notify
}

func (e *Engine) notifyUI() {
	select {
	case e.notify <- struct{}{}:
	default:
	}
}

func (e *Engine) playbackTap(pcm []byte) {
	if e.cfg.Analyser != nil {
		e.cfg.Analyser.Feed(pcm)
	}
	if e.cfg.Recorder != nil {
		e.cfg.Recorder.Append(pcm)
	}
}

func (e *Engine) eventLoop(gen uint64, tr Transport, lessonID int) {
	for event := range tr.Events() {
		e.handle(gen, event, lessonID)
	}
}

func (e *Engine) handle(gen uint64, event live.Event, lessonID int) {
	switch ev := event.(type) {
	case live.OpenedEvent:
		e.onOpened(gen, lessonID)
	case live.TranscriptionEvent:
		if !e.currentGeneration(gen) {
			return
		}
		e.transcript.Append(ev.Speaker, ev.Text, ev.Final)
		e.notifyUI()
	case live.AudioChunkEvent:
		e.onAudioChunk(gen, ev.PCM)
	case live.InterruptedEvent:
		e.onInterrupted(gen)
	case live.TurnCompleteEvent:
		e.notifyUI()
	case live.ClosedEvent:
		e.teardown(gen, StateDisconnected, "")
	case live.FailedEvent:
		e.log.Warn("session transport failed", "error", ev.Err)
		e.fail(gen, fmt.Sprintf("Connection lost: %v", ev.Err))
	case live.UnknownEvent:
		e.log.Debug("ignoring unknown server frame", "raw", string(ev.Raw))
	}
}

func (e *Engine) onOpened(gen uint64, lessonID int) {
	e.mu.Lock()
	if e.generation != gen || e.transport == nil {
		e.mu.Unlock()
		return
	}
	e.state = StateConnected
	tr := e.transport
	e.mu.Unlock()
	e.notifyUI()
	e.log.Info("session established", "lesson", lessonID)

	if e.cfg.NewCapture != nil {
		dev, err := e.cfg.NewCapture(e.frameHandler(gen))
		if err != nil {
			e.fail(gen, fmt.Sprintf("Microphone unavailable: %v", err))
			return
		}
		e.mu.Lock()
		if e.generation != gen {
			// Acquisition resolved after teardown; release it immediately.
			e.mu.Unlock()
			dev.Stop()
			return
		}
		e.capture = dev
		e.mu.Unlock()
		if err := dev.Start(); err != nil {
			e.fail(gen, fmt.Sprintf("Microphone unavailable: %v", err))
			return
		}
	}

	if err := tr.SendText(lesson.PrimingCommand(lessonID)); err != nil {
		e.log.Warn("priming command failed", "error", err)
	}
}

func (e *Engine) frameHandler(gen uint64) func(frame []float32) {
	return func(frame []float32) {
		e.mu.Lock()
		ok := e.generation == gen && e.state == StateConnected
		tr := e.transport
		e.mu.Unlock()
		if !ok || tr == nil {
			return
		}
		// A dropped frame is not a session failure.
		if err := tr.SendAudioFrame(audio.EncodeS16LE(frame)); err != nil {
			e.log.Debug("dropping capture frame", "error", err)
		}
	}
}

func (e *Engine) onAudioChunk(gen uint64, pcm []byte) {
	e.mu.Lock()
	if e.generation != gen || e.scheduler == nil {
		e.mu.Unlock()
		return
	}
	sch := e.scheduler
	e.mu.Unlock()

	if _, err := sch.Schedule(pcm); err != nil {
		e.log.Debug("skipping playback chunk", "error", err)
	}
}

func (e *Engine) onInterrupted(gen uint64) {
	e.mu.Lock()
	if e.generation != gen || e.scheduler == nil {
		e.mu.Unlock()
		return
	}
	sch := e.scheduler
	e.mu.Unlock()

	sch.Interrupt()
	if e.cfg.Analyser != nil {
		e.cfg.Analyser.Reset()
	}
	e.log.Debug("tutor speech interrupted")
}

func (e *Engine) currentGeneration(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation == gen
}

// fail surfaces a session failure: the error state is published so
// observers see it, then the session is fully torn down and settles in
// StateDisconnected with the advisory retained. The error state is never a
// resting state.
func (e *Engine) fail(gen uint64, advisory string) {
	e.mu.Lock()
	if gen != 0 && e.generation != gen {
		e.mu.Unlock()
		return
	}
	e.state = StateError
	e.errMsg = advisory
	e.mu.Unlock()
	e.notifyUI()

	e.teardown(gen, StateDisconnected, advisory)
}

// teardown releases the session owned by generation gen (0 means the
// current one, used by Disconnect). It is idempotent: a second call finds
// nothing left to release.
func (e *Engine) teardown(gen uint64, next State, advisory string) {
	e.mu.Lock()
	if gen != 0 && e.generation != gen {
		e.mu.Unlock()
		return
	}
	e.generation++
	tr := e.transport
	dev := e.capture
	sch := e.scheduler
	e.transport = nil
	e.capture = nil
	e.scheduler = nil
	e.state = next
	if advisory != "" {
		e.errMsg = advisory
	}
	e.mu.Unlock()

	if dev != nil {
		dev.Stop()
	}
	if sch != nil {
		sch.Interrupt()
	}
	if e.cfg.Analyser != nil {
		e.cfg.Analyser.Reset()
	}
	if tr != nil {
		_ = tr.Close()
	}
	e.notifyUI()
}
