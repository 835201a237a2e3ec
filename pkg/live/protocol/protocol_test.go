package protocol

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

func TestClientMessage_SetupShape(t *testing.T) {
	t.Parallel()

	msg := ClientMessage{
		Setup: &Setup{
			Model: NormalizeModel("gemini-2.5-flash-native-audio-preview-09-2025"),
			GenerationConfig: &GenerationConfig{
				ResponseModalities: []string{"AUDIO"},
				SpeechConfig: &SpeechConfig{
					VoiceConfig: &VoiceConfig{
						PrebuiltVoiceConfig: &PrebuiltVoiceConfig{VoiceName: "Kore"},
					},
				},
			},
			SystemInstruction: &Content{Parts: []Part{{Text: "teach"}}},
			InputTranscript:   &TranscriptionConfig{},
			OutputTranscript:  &TranscriptionConfig{},
		},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal setup: %v", err)
	}
	for _, want := range []string{
		`"setup":`,
		`"model":"models/gemini-2.5-flash-native-audio-preview-09-2025"`,
		`"responseModalities":["AUDIO"]`,
		`"voiceName":"Kore"`,
		`"inputAudioTranscription":{}`,
		`"outputAudioTranscription":{}`,
	} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("setup frame %s missing %s", data, want)
		}
	}
	if strings.Contains(string(data), "realtimeInput") {
		t.Fatalf("setup frame must omit empty realtimeInput: %s", data)
	}
}

func TestClientMessage_RealtimeInputAudioAndText(t *testing.T) {
	t.Parallel()

	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	msg := ClientMessage{
		RealtimeInput: &RealtimeInput{
			MediaChunks: []MediaChunk{
				{MIMEType: AudioInMIMEType, Data: base64.StdEncoding.EncodeToString(pcm)},
			},
		},
	}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal realtimeInput: %v", err)
	}
	if !strings.Contains(string(data), `"mimeType":"audio/pcm;rate=16000"`) {
		t.Fatalf("audio chunk mime type missing: %s", data)
	}

	text := ClientMessage{
		RealtimeInput: &RealtimeInput{
			MediaChunks: []MediaChunk{{MIMEType: TextMIMEType, Data: "Start Lesson 2"}},
		},
	}
	data, err = json.Marshal(text)
	if err != nil {
		t.Fatalf("marshal text input: %v", err)
	}
	if !strings.Contains(string(data), `"mimeType":"text/plain"`) {
		t.Fatalf("text chunk mime type missing: %s", data)
	}
}

func TestDecodeServerMessage_AudioTurn(t *testing.T) {
	t.Parallel()

	payload := base64.StdEncoding.EncodeToString([]byte{0x00, 0x10, 0xff, 0x7f})
	frame := `{"serverContent":{"modelTurn":{"parts":[` +
		`{"inlineData":{"mimeType":"audio/pcm;rate=24000","data":"` + payload + `"}},` +
		`{"text":"ignored"}]}}}`

	msg, err := DecodeServerMessage([]byte(frame))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	parts := msg.ServerContent.AudioParts()
	if len(parts) != 1 {
		t.Fatalf("audio parts = %d, want 1", len(parts))
	}
	if parts[0] != payload {
		t.Fatalf("audio part = %q, want %q", parts[0], payload)
	}
}

func TestDecodeServerMessage_TurnSignals(t *testing.T) {
	t.Parallel()

	frame := `{"serverContent":{"turnComplete":true,"interrupted":true,` +
		`"inputTranscription":{"text":"hello"},` +
		`"outputTranscription":{"text":"salom","finished":false}}}`

	msg, err := DecodeServerMessage([]byte(frame))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	sc := msg.ServerContent
	if sc == nil {
		t.Fatalf("serverContent missing")
	}
	if !sc.TurnComplete || !sc.Interrupted {
		t.Fatalf("turnComplete=%v interrupted=%v, want both true", sc.TurnComplete, sc.Interrupted)
	}
	if sc.InputTranscription == nil || sc.InputTranscription.Text != "hello" {
		t.Fatalf("input transcription = %#v", sc.InputTranscription)
	}
	if sc.OutputTranscript == nil || sc.OutputTranscript.Text != "salom" {
		t.Fatalf("output transcription = %#v", sc.OutputTranscript)
	}
}

func TestDecodeServerMessage_SetupCompleteAndUnknown(t *testing.T) {
	t.Parallel()

	msg, err := DecodeServerMessage([]byte(`{"setupComplete":{}}`))
	if err != nil {
		t.Fatalf("decode setupComplete: %v", err)
	}
	if msg.SetupComplete == nil {
		t.Fatalf("setupComplete not recognized")
	}

	msg, err = DecodeServerMessage([]byte(`{"usageMetadata":{"totalTokenCount":12}}`))
	if err != nil {
		t.Fatalf("decode unknown frame: %v", err)
	}
	if msg.SetupComplete != nil || msg.ServerContent != nil || msg.GoAway != nil {
		t.Fatalf("unknown frame decoded into known fields: %#v", msg)
	}
	if len(msg.Raw) == 0 {
		t.Fatalf("raw payload not retained")
	}

	if _, err := DecodeServerMessage([]byte(`{not json`)); err == nil {
		t.Fatalf("expected error for malformed frame")
	}
}

func TestNormalizeModel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"gemini-2.5-flash-native-audio-preview-09-2025", "models/gemini-2.5-flash-native-audio-preview-09-2025"},
		{"models/gemini-live", "models/gemini-live"},
		{"  spaced  ", "models/spaced"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeModel(tc.in); got != tc.want {
			t.Fatalf("NormalizeModel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
