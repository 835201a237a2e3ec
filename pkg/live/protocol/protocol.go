// Package protocol defines the JSON frames exchanged with the Gemini Live
// websocket endpoint (BidiGenerateContent).
//
// The client opens the socket, sends a single Setup frame, waits for
// SetupComplete, then streams RealtimeInput frames (binary PCM or plain-text
// commands, both carried as media chunks). The server streams ServerMessage
// frames carrying synthesized audio, transcriptions and turn signals.
package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// AudioInMIMEType tags outbound microphone PCM: 16-bit little-endian
	// signed samples, mono, 16 kHz.
	AudioInMIMEType = "audio/pcm;rate=16000"

	// TextMIMEType tags outbound natural-language command chunks.
	TextMIMEType = "text/plain"

	CaptureSampleRateHz  = 16000
	PlaybackSampleRateHz = 24000
)

// MediaChunk is one inline payload inside a RealtimeInput frame. Data is
// base64 of the raw bytes for audio, or the literal text for text chunks.
type MediaChunk struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// RealtimeInput streams media to the service outside the turn structure.
type RealtimeInput struct {
	MediaChunks []MediaChunk `json:"mediaChunks"`
}

// ClientMessage is the envelope for every client-to-server frame. Exactly one
// field is set.
type ClientMessage struct {
	Setup         *Setup         `json:"setup,omitempty"`
	RealtimeInput *RealtimeInput `json:"realtimeInput,omitempty"`
}

// Setup is the first frame on a new connection.
type Setup struct {
	Model             string               `json:"model"`
	GenerationConfig  *GenerationConfig    `json:"generationConfig,omitempty"`
	SystemInstruction *Content             `json:"systemInstruction,omitempty"`
	InputTranscript   *TranscriptionConfig `json:"inputAudioTranscription,omitempty"`
	OutputTranscript  *TranscriptionConfig `json:"outputAudioTranscription,omitempty"`
}

// TranscriptionConfig enables server-side transcription of one direction.
// The service only checks for presence, so it carries no fields.
type TranscriptionConfig struct{}

type GenerationConfig struct {
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *SpeechConfig `json:"speechConfig,omitempty"`
}

type SpeechConfig struct {
	VoiceConfig *VoiceConfig `json:"voiceConfig,omitempty"`
}

type VoiceConfig struct {
	PrebuiltVoiceConfig *PrebuiltVoiceConfig `json:"prebuiltVoiceConfig,omitempty"`
}

type PrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName,omitempty"`
}

// Content mirrors the service's Content shape: an ordered list of parts.
type Content struct {
	Parts []Part `json:"parts,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Part carries either text or inline binary data.
type Part struct {
	Text       string  `json:"text,omitempty"`
	InlineData *Inline `json:"inlineData,omitempty"`
}

// Inline is base64-encoded binary data with its MIME type. For audio the
// MIME type includes the sample rate (audio/pcm;rate=24000).
type Inline struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Transcription is a partial or final transcript of one audio direction.
type Transcription struct {
	Text     string `json:"text"`
	Finished bool   `json:"finished,omitempty"`
}

// ServerContent is the per-turn payload of a server frame.
type ServerContent struct {
	ModelTurn          *Content       `json:"modelTurn,omitempty"`
	TurnComplete       bool           `json:"turnComplete,omitempty"`
	Interrupted        bool           `json:"interrupted,omitempty"`
	InputTranscription *Transcription `json:"inputTranscription,omitempty"`
	OutputTranscript   *Transcription `json:"outputTranscription,omitempty"`
}

// ServerMessage is the envelope for every server-to-client frame.
type ServerMessage struct {
	SetupComplete *struct{}       `json:"setupComplete,omitempty"`
	ServerContent *ServerContent  `json:"serverContent,omitempty"`
	GoAway        *GoAway         `json:"goAway,omitempty"`
	Raw           json.RawMessage `json:"-"`
}

// GoAway warns that the server will close the connection shortly.
type GoAway struct {
	TimeLeft string `json:"timeLeft,omitempty"`
}

// DecodeServerMessage parses one inbound text frame. The raw payload is
// retained so callers can surface unrecognized frames.
func DecodeServerMessage(data []byte) (*ServerMessage, error) {
	var msg ServerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode server frame: %w", err)
	}
	msg.Raw = append(json.RawMessage(nil), data...)
	return &msg, nil
}

// AudioParts returns the base64 payloads of all inline PCM parts in a model
// turn, in order. Non-audio parts are skipped.
func (c *ServerContent) AudioParts() []string {
	if c == nil || c.ModelTurn == nil {
		return nil
	}
	var out []string
	for _, part := range c.ModelTurn.Parts {
		if part.InlineData == nil {
			continue
		}
		if !strings.HasPrefix(part.InlineData.MIMEType, "audio/") {
			continue
		}
		if part.InlineData.Data == "" {
			continue
		}
		out = append(out, part.InlineData.Data)
	}
	return out
}

// NormalizeModel qualifies a bare model id the way the websocket endpoint
// expects ("models/<id>").
func NormalizeModel(model string) string {
	model = strings.TrimSpace(model)
	if model == "" || strings.Contains(model, "/") {
		return model
	}
	return "models/" + model
}
