// Package live implements the websocket client for the Gemini Live API.
//
// A Session owns exactly one bidirectional connection: audio frames and text
// commands go out, and a single ordered channel of tagged events comes back.
// The caller consumes Events() from one goroutine; the session never
// reorders or deduplicates inbound frames.
package live

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/trendolabs/trendospeak/pkg/live/protocol"
)

const (
	defaultEndpoint       = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"
	defaultConnectTimeout = 15 * time.Second
	eventChannelSize      = 256
)

// Config configures a live session.
type Config struct {
	// APIKey is the service capability credential. Required.
	APIKey string

	// Model is the live audio model id (bare or "models/..."-qualified).
	Model string

	// Voice selects the prebuilt synthesis voice (for example "Kore").
	Voice string

	// SystemInstruction is the tutoring policy sent with setup.
	SystemInstruction string

	// Endpoint overrides the service websocket URL. Tests point this at a
	// local server; production leaves it empty.
	Endpoint string

	// ConnectTimeout bounds the dial plus setup handshake.
	ConnectTimeout time.Duration

	// Logger receives data-plane diagnostics. Defaults to a discard logger.
	Logger *slog.Logger
}

// TransportError wraps a connection-level failure with the operation that
// produced it.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("live %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Session is one live websocket connection.
type Session struct {
	conn *websocket.Conn
	log  *slog.Logger

	events chan Event
	stop   chan struct{}
	done   chan struct{}

	writeMu   sync.Mutex
	closeOnce sync.Once
	closed    atomic.Bool

	errMu sync.Mutex
	err   error
}

// Dial opens a connection, performs the setup handshake and starts the read
// loop. The returned session has already emitted OpenedEvent on Events().
func Dial(ctx context.Context, cfg Config) (*Session, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("live: api key is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("live: model is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	wsURL, err := sessionURL(cfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	dialCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(dialCtx, wsURL, nil)
	if err != nil {
		redacted := redactKey(wsURL)
		if resp != nil {
			return nil, &TransportError{Op: "dial", URL: redacted, Err: fmt.Errorf("status %d: %w", resp.StatusCode, err)}
		}
		return nil, &TransportError{Op: "dial", URL: redacted, Err: err}
	}

	setup := protocol.ClientMessage{
		Setup: &protocol.Setup{
			Model: protocol.NormalizeModel(cfg.Model),
			GenerationConfig: &protocol.GenerationConfig{
				ResponseModalities: []string{"AUDIO"},
			},
			InputTranscript:  &protocol.TranscriptionConfig{},
			OutputTranscript: &protocol.TranscriptionConfig{},
		},
	}
	if voice := strings.TrimSpace(cfg.Voice); voice != "" {
		setup.Setup.GenerationConfig.SpeechConfig = &protocol.SpeechConfig{
			VoiceConfig: &protocol.VoiceConfig{
				PrebuiltVoiceConfig: &protocol.PrebuiltVoiceConfig{VoiceName: voice},
			},
		}
	}
	if sys := strings.TrimSpace(cfg.SystemInstruction); sys != "" {
		setup.Setup.SystemInstruction = &protocol.Content{Parts: []protocol.Part{{Text: sys}}}
	}
	if err := conn.WriteJSON(setup); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("live: send setup: %w", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("live: read setup ack: %w", err)
	}
	_ = conn.SetReadDeadline(time.Time{})

	first, err := protocol.DecodeServerMessage(payload)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if first.SetupComplete == nil {
		_ = conn.Close()
		return nil, fmt.Errorf("live: unexpected first frame %s", strings.TrimSpace(string(first.Raw)))
	}

	s := &Session{
		conn:   conn,
		log:    logger,
		events: make(chan Event, eventChannelSize),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	s.emit(OpenedEvent{})
	go s.readLoop()
	return s, nil
}

func sessionURL(cfg Config) (string, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("live: invalid endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", cfg.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func redactKey(wsURL string) string {
	u, err := url.Parse(wsURL)
	if err != nil {
		return wsURL
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "redacted")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Events yields session events in server arrival order. The channel closes
// after a terminal ClosedEvent or FailedEvent.
func (s *Session) Events() <-chan Event {
	if s == nil {
		return nil
	}
	return s.events
}

// SendAudioFrame sends one encoded PCM frame (16-bit LE mono at the capture
// rate). Ownership of pcm transfers to the session.
func (s *Session) SendAudioFrame(pcm []byte) error {
	if len(pcm) == 0 {
		return nil
	}
	return s.sendJSON(protocol.ClientMessage{
		RealtimeInput: &protocol.RealtimeInput{
			MediaChunks: []protocol.MediaChunk{{
				MIMEType: protocol.AudioInMIMEType,
				Data:     base64.StdEncoding.EncodeToString(pcm),
			}},
		},
	})
}

// SendText sends a plain-text instruction on the command channel (context
// priming, lesson switches).
func (s *Session) SendText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return s.sendJSON(protocol.ClientMessage{
		RealtimeInput: &protocol.RealtimeInput{
			MediaChunks: []protocol.MediaChunk{{
				MIMEType: protocol.TextMIMEType,
				Data:     text,
			}},
		},
	})
}

func (s *Session) sendJSON(v any) error {
	if s == nil {
		return errors.New("live: session is nil")
	}
	if s.closed.Load() {
		return errors.New("live: session is closed")
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(v)
}

// Close shuts the connection down and waits for the read loop to drain.
// Safe to call more than once.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.stop)
		s.writeMu.Lock()
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(2*time.Second))
		s.writeMu.Unlock()
		_ = s.conn.Close()
	})
	<-s.done
	return nil
}

// Err returns the terminal transport error, if any, once the session ends.
func (s *Session) Err() error {
	if s == nil {
		return nil
	}
	<-s.done
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *Session) setErr(err error) {
	if err == nil {
		return
	}
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *Session) readLoop() {
	defer close(s.done)
	defer close(s.events)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if s.closed.Load() || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.emit(ClosedEvent{})
				return
			}
			s.setErr(err)
			s.emit(FailedEvent{Err: err})
			return
		}

		msg, err := protocol.DecodeServerMessage(data)
		if err != nil {
			// Data-plane hiccup: skip the frame, keep the session alive.
			s.log.Debug("live: dropping undecodable frame", "error", err)
			continue
		}
		s.dispatch(msg)
	}
}

// dispatch converts one server frame into events, preserving the frame's
// internal order: transcriptions, audio, interruption, turn completion.
func (s *Session) dispatch(msg *protocol.ServerMessage) {
	if msg.SetupComplete != nil {
		return
	}
	sc := msg.ServerContent
	if sc == nil {
		s.emit(UnknownEvent{Raw: msg.Raw})
		return
	}

	// The user's transcription is only committed at turn completion.
	if sc.TurnComplete && sc.InputTranscription != nil && sc.InputTranscription.Text != "" {
		s.emit(TranscriptionEvent{Speaker: SpeakerUser, Text: sc.InputTranscription.Text, Final: true})
	}
	if sc.OutputTranscript != nil && sc.OutputTranscript.Text != "" {
		s.emit(TranscriptionEvent{Speaker: SpeakerTutor, Text: sc.OutputTranscript.Text, Final: sc.OutputTranscript.Finished})
	}
	for _, b64 := range sc.AudioParts() {
		pcm, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			s.log.Debug("live: skipping undecodable audio chunk", "error", err)
			continue
		}
		if len(pcm) > 0 {
			s.emit(AudioChunkEvent{PCM: pcm})
		}
	}
	if sc.Interrupted {
		s.emit(InterruptedEvent{})
	}
	if sc.TurnComplete {
		s.emit(TurnCompleteEvent{})
	}
}

// emit blocks until the consumer accepts the event, preserving arrival
// order. It gives up if the session is being closed so the read loop can
// never deadlock against Close.
func (s *Session) emit(event Event) {
	select {
	case s.events <- event:
	case <-s.stop:
	}
}
