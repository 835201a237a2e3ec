package live

import "encoding/json"

// Speaker identifies which side of the conversation produced a transcript
// fragment.
type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerTutor Speaker = "tutor"
)

// Event is one inbound session event. Events are delivered on a single
// ordered channel in server arrival order.
type Event interface {
	liveEventType() string
}

// OpenedEvent is emitted once, after the server acknowledges setup. The
// session is fully usable from this point.
type OpenedEvent struct{}

func (OpenedEvent) liveEventType() string { return "opened" }

// TranscriptionEvent carries a partial or final transcript fragment from
// either speaker.
type TranscriptionEvent struct {
	Speaker Speaker
	Text    string
	Final   bool
}

func (TranscriptionEvent) liveEventType() string { return "transcription" }

// AudioChunkEvent carries decoded signed 16-bit little-endian PCM at the
// playback rate (24 kHz mono).
type AudioChunkEvent struct {
	PCM []byte
}

func (AudioChunkEvent) liveEventType() string { return "audio_chunk" }

// InterruptedEvent signals that the in-flight tutor turn was cut off by
// user barge-in; all scheduled playback for that turn is stale.
type InterruptedEvent struct{}

func (InterruptedEvent) liveEventType() string { return "interrupted" }

// TurnCompleteEvent marks the end of the current turn; the user's input
// transcription, if any, is final.
type TurnCompleteEvent struct{}

func (TurnCompleteEvent) liveEventType() string { return "turn_complete" }

// ClosedEvent is the terminal event for a clean shutdown (server close or
// local Close). No further events follow it.
type ClosedEvent struct{}

func (ClosedEvent) liveEventType() string { return "closed" }

// FailedEvent is the terminal event for a transport failure. No further
// events follow it.
type FailedEvent struct {
	Err error
}

func (FailedEvent) liveEventType() string { return "failed" }

// UnknownEvent surfaces frames this client does not interpret (usage
// metadata, go-away warnings and future additions). Carried for debugging;
// safe to ignore.
type UnknownEvent struct {
	Raw json.RawMessage
}

func (UnknownEvent) liveEventType() string { return "unknown" }
