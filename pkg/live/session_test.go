package live

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestDial_MissingAPIKey(t *testing.T) {
	t.Parallel()

	_, err := Dial(context.Background(), Config{Model: "gemini-2.5-flash-native-audio"})
	if err == nil {
		t.Fatalf("expected missing api key error")
	}
	if !strings.Contains(err.Error(), "api key") {
		t.Fatalf("error=%q, expected api key hint", err.Error())
	}
}

func TestDial_SendsSetupAndEmitsOpened(t *testing.T) {
	t.Parallel()

	setupCh := make(chan map[string]any, 1)
	serverURL, closeServer := newSessionTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()

		var setup map[string]any
		if err := conn.ReadJSON(&setup); err != nil {
			return
		}
		setupCh <- setup

		_ = conn.WriteJSON(map[string]any{"setupComplete": map[string]any{}})
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(2*time.Second))
	})
	defer closeServer()

	sess, err := Dial(context.Background(), Config{
		APIKey:            "test-key",
		Model:             "gemini-2.5-flash-native-audio",
		Voice:             "Kore",
		SystemInstruction: "You are a tutor.",
		Endpoint:          serverURL,
	})
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer sess.Close()

	first, ok := <-sess.Events()
	if !ok {
		t.Fatalf("events channel closed before first event")
	}
	if _, isOpened := first.(OpenedEvent); !isOpened {
		t.Fatalf("first event = %T, want OpenedEvent", first)
	}

	select {
	case frame := <-setupCh:
		setup, ok := frame["setup"].(map[string]any)
		if !ok {
			t.Fatalf("setup missing in frame=%+v", frame)
		}
		if setup["model"] != "models/gemini-2.5-flash-native-audio" {
			t.Fatalf("model=%v", setup["model"])
		}
		if _, has := setup["inputAudioTranscription"]; !has {
			t.Fatalf("inputAudioTranscription missing in setup=%+v", setup)
		}
		if _, has := setup["outputAudioTranscription"]; !has {
			t.Fatalf("outputAudioTranscription missing in setup=%+v", setup)
		}
		gen, _ := setup["generationConfig"].(map[string]any)
		modalities, _ := gen["responseModalities"].([]any)
		if len(modalities) != 1 || modalities[0] != "AUDIO" {
			t.Fatalf("responseModalities=%v", modalities)
		}
	default:
		t.Fatalf("server never received setup frame")
	}
}

func TestSession_DeliversEventsInArrivalOrder(t *testing.T) {
	t.Parallel()

	pcm := []byte{0x01, 0x00, 0xfe, 0xff}
	serverURL, closeServer := newSessionTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()

		var setup map[string]any
		if err := conn.ReadJSON(&setup); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{"setupComplete": map[string]any{}})

		_ = conn.WriteJSON(map[string]any{
			"serverContent": map[string]any{
				"outputTranscription": map[string]any{"text": "Hola"},
				"modelTurn": map[string]any{
					"parts": []any{map[string]any{
						"inlineData": map[string]any{
							"mimeType": "audio/pcm;rate=24000",
							"data":     base64.StdEncoding.EncodeToString(pcm),
						},
					}},
				},
			},
		})
		_ = conn.WriteJSON(map[string]any{
			"serverContent": map[string]any{
				"turnComplete":       true,
				"inputTranscription": map[string]any{"text": "hola profesor"},
			},
		})
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(2*time.Second))
	})
	defer closeServer()

	sess, err := Dial(context.Background(), Config{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash-native-audio",
		Endpoint: serverURL,
	})
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer sess.Close()

	var got []Event
	for event := range sess.Events() {
		got = append(got, event)
	}
	if err := sess.Err(); err != nil {
		t.Fatalf("session err: %v", err)
	}

	want := []string{"opened", "transcription", "audio_chunk", "transcription", "turn_complete", "closed"}
	if len(got) != len(want) {
		t.Fatalf("event count=%d (%v), want %d", len(got), eventTypes(got), len(want))
	}
	for i, event := range got {
		if event.liveEventType() != want[i] {
			t.Fatalf("event[%d]=%q, want %q (all=%v)", i, event.liveEventType(), want[i], eventTypes(got))
		}
	}

	tutor := got[1].(TranscriptionEvent)
	if tutor.Speaker != SpeakerTutor || tutor.Text != "Hola" || tutor.Final {
		t.Fatalf("tutor transcription=%+v", tutor)
	}
	audio := got[2].(AudioChunkEvent)
	if string(audio.PCM) != string(pcm) {
		t.Fatalf("audio pcm=%v, want %v", audio.PCM, pcm)
	}
	user := got[3].(TranscriptionEvent)
	if user.Speaker != SpeakerUser || user.Text != "hola profesor" || !user.Final {
		t.Fatalf("user transcription=%+v", user)
	}
}

func TestSession_InterruptionPrecedesTurnComplete(t *testing.T) {
	t.Parallel()

	serverURL, closeServer := newSessionTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()

		var setup map[string]any
		if err := conn.ReadJSON(&setup); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{"setupComplete": map[string]any{}})
		_ = conn.WriteJSON(map[string]any{
			"serverContent": map[string]any{
				"interrupted":  true,
				"turnComplete": true,
			},
		})
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(2*time.Second))
	})
	defer closeServer()

	sess, err := Dial(context.Background(), Config{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash-native-audio",
		Endpoint: serverURL,
	})
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer sess.Close()

	var got []Event
	for event := range sess.Events() {
		got = append(got, event)
	}

	want := []string{"opened", "interrupted", "turn_complete", "closed"}
	if len(got) != len(want) {
		t.Fatalf("events=%v, want %v", eventTypes(got), want)
	}
	for i, event := range got {
		if event.liveEventType() != want[i] {
			t.Fatalf("events=%v, want %v", eventTypes(got), want)
		}
	}
}

func TestSession_SkipsUndecodableAudioChunk(t *testing.T) {
	t.Parallel()

	serverURL, closeServer := newSessionTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()

		var setup map[string]any
		if err := conn.ReadJSON(&setup); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{"setupComplete": map[string]any{}})
		_ = conn.WriteJSON(map[string]any{
			"serverContent": map[string]any{
				"modelTurn": map[string]any{
					"parts": []any{
						map[string]any{"inlineData": map[string]any{
							"mimeType": "audio/pcm;rate=24000",
							"data":     "not base64!!",
						}},
						map[string]any{"inlineData": map[string]any{
							"mimeType": "audio/pcm;rate=24000",
							"data":     base64.StdEncoding.EncodeToString([]byte{0x0a, 0x0b}),
						}},
					},
				},
			},
		})
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(2*time.Second))
	})
	defer closeServer()

	sess, err := Dial(context.Background(), Config{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash-native-audio",
		Endpoint: serverURL,
	})
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer sess.Close()

	var chunks []AudioChunkEvent
	for event := range sess.Events() {
		if chunk, ok := event.(AudioChunkEvent); ok {
			chunks = append(chunks, chunk)
		}
	}
	if err := sess.Err(); err != nil {
		t.Fatalf("session err: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("chunk count=%d, want 1", len(chunks))
	}
	if string(chunks[0].PCM) != string([]byte{0x0a, 0x0b}) {
		t.Fatalf("chunk pcm=%v", chunks[0].PCM)
	}
}

func TestSession_SendAudioFrameAndText(t *testing.T) {
	t.Parallel()

	framesCh := make(chan map[string]any, 2)
	serverURL, closeServer := newSessionTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()

		var setup map[string]any
		if err := conn.ReadJSON(&setup); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{"setupComplete": map[string]any{}})

		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		for i := 0; i < 2; i++ {
			var frame map[string]any
			if err := conn.ReadJSON(&frame); err != nil {
				break
			}
			framesCh <- frame
		}
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(2*time.Second))
	})
	defer closeServer()

	sess, err := Dial(context.Background(), Config{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash-native-audio",
		Endpoint: serverURL,
	})
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer sess.Close()

	pcm := []byte{0x10, 0x20, 0x30, 0x40}
	if err := sess.SendAudioFrame(pcm); err != nil {
		t.Fatalf("SendAudioFrame error: %v", err)
	}
	if err := sess.SendText("TEACHER: START Greetings NOW."); err != nil {
		t.Fatalf("SendText error: %v", err)
	}

	for range sess.Events() {
		// drain until close
	}

	audioFrame := <-framesCh
	chunk := firstMediaChunk(t, audioFrame)
	if chunk["mimeType"] != "audio/pcm;rate=16000" {
		t.Fatalf("audio mimeType=%v", chunk["mimeType"])
	}
	if chunk["data"] != base64.StdEncoding.EncodeToString(pcm) {
		t.Fatalf("audio data=%v", chunk["data"])
	}

	textFrame := <-framesCh
	chunk = firstMediaChunk(t, textFrame)
	if chunk["mimeType"] != "text/plain" {
		t.Fatalf("text mimeType=%v", chunk["mimeType"])
	}
	if chunk["data"] != "TEACHER: START Greetings NOW." {
		t.Fatalf("text data=%v", chunk["data"])
	}
}

func TestSession_SendAfterCloseFails(t *testing.T) {
	t.Parallel()

	serverURL, closeServer := newSessionTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()

		var setup map[string]any
		if err := conn.ReadJSON(&setup); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{"setupComplete": map[string]any{}})
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer closeServer()

	sess, err := Dial(context.Background(), Config{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash-native-audio",
		Endpoint: serverURL,
	})
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}

	if err := sess.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := sess.Close(); err != nil {
		t.Fatalf("second Close error: %v", err)
	}
	if err := sess.SendAudioFrame([]byte{0x01, 0x02}); err == nil {
		t.Fatalf("expected send-after-close error")
	}
}

func TestSession_AbnormalCloseSurfacesFailure(t *testing.T) {
	t.Parallel()

	serverURL, closeServer := newSessionTestServer(t, func(conn *websocket.Conn) {
		var setup map[string]any
		if err := conn.ReadJSON(&setup); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{"setupComplete": map[string]any{}})
		// Drop the connection without a close handshake.
		_ = conn.Close()
	})
	defer closeServer()

	sess, err := Dial(context.Background(), Config{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash-native-audio",
		Endpoint: serverURL,
	})
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer sess.Close()

	var sawFailed bool
	for event := range sess.Events() {
		if _, ok := event.(FailedEvent); ok {
			sawFailed = true
		}
	}
	if !sawFailed {
		t.Fatalf("expected FailedEvent on abnormal close")
	}
	if sess.Err() == nil {
		t.Fatalf("expected terminal error")
	}
}

func firstMediaChunk(t *testing.T, frame map[string]any) map[string]any {
	t.Helper()

	input, ok := frame["realtimeInput"].(map[string]any)
	if !ok {
		t.Fatalf("realtimeInput missing in frame=%+v", frame)
	}
	chunks, ok := input["mediaChunks"].([]any)
	if !ok || len(chunks) == 0 {
		t.Fatalf("mediaChunks missing in frame=%+v", frame)
	}
	chunk, ok := chunks[0].(map[string]any)
	if !ok {
		t.Fatalf("mediaChunks[0]=%+v", chunks[0])
	}
	return chunk
}

func eventTypes(events []Event) []string {
	types := make([]string, 0, len(events))
	for _, event := range events {
		types = append(types, event.liveEventType())
	}
	return types
}

func newSessionTestServer(t *testing.T, handler func(conn *websocket.Conn)) (string, func()) {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			http.Error(w, "missing key", http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		handler(conn)
	}))

	return "ws" + strings.TrimPrefix(server.URL, "http"), server.Close
}
