// Command trendospeak runs the interactive voice tutoring client.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gen2brain/malgo"

	"github.com/trendolabs/trendospeak/internal/audio"
	"github.com/trendolabs/trendospeak/internal/config"
	"github.com/trendolabs/trendospeak/internal/dotenv"
	"github.com/trendolabs/trendospeak/internal/entitlement"
	"github.com/trendolabs/trendospeak/internal/tui"
	"github.com/trendolabs/trendospeak/internal/tutor"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	if err := dotenv.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
		return 2
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	var (
		model    = flag.String("model", cfg.Model, "Live audio model name")
		voice    = flag.String("voice", cfg.Voice, "Prebuilt tutor voice")
		logPath  = flag.String("log", "", "Write logs to this file (default: discard)")
		dumpWAV  = flag.String("dump-wav", cfg.DumpWAVPath, "Write tutor audio to this WAV file on exit")
		noMic    = flag.Bool("no-mic", false, "Run without microphone capture (listen only)")
		noAudio  = flag.Bool("no-speaker", false, "Run without speaker playback")
	)
	flag.Parse()
	cfg.Model = *model
	cfg.Voice = *voice
	cfg.DumpWAVPath = *dumpWAV

	log, closeLog, err := newLogger(*logPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log:", err)
		return 2
	}
	defer closeLog()

	var sink audio.Sink
	if *noAudio {
		sink = nullSink{}
	} else {
		speaker, err := audio.NewSpeaker(audio.PlaybackRateHz)
		if err != nil {
			fmt.Fprintln(os.Stderr, "speaker:", err)
			return 1
		}
		defer speaker.Close()
		sink = speaker
	}

	var captureFactory tutor.CaptureFactory
	if !*noMic {
		mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "audio context:", err)
			return 1
		}
		defer func() {
			_ = mctx.Uninit()
			mctx.Free()
		}()
		captureFactory = func(onFrame func([]float32)) (tutor.CaptureDevice, error) {
			return audio.NewCapture(mctx.Context, audio.CaptureConfig{
				SampleRateHz: audio.CaptureRateHz,
				FrameSamples: audio.FrameSamples,
			}, onFrame)
		}
	}

	analyser := audio.NewAnalyser(audio.DefaultAnalyserSize)
	var recorder *audio.Recorder
	if cfg.DumpWAVPath != "" {
		recorder = audio.NewRecorder(audio.PlaybackRateHz)
	}

	engine := tutor.New(tutor.Config{
		APIKey:         cfg.APIKey,
		Model:          cfg.Model,
		Voice:          cfg.Voice,
		Endpoint:       cfg.Endpoint,
		ConnectTimeout: cfg.ConnectTimeout,
		Logger:         log,
		NewCapture:     captureFactory,
		Clock:          audio.SystemClock(),
		Sink:           sink,
		Analyser:       analyser,
		Recorder:       recorder,
	})
	defer engine.Disconnect()

	opts := tui.Options{
		UserID:    cfg.UserID,
		ExportDir: cfg.ExportDir,
	}
	if cfg.BotAPIURL != "" {
		opts.Checker = entitlement.NewClient(cfg.BotAPIURL, entitlement.WithLogger(log))
	}

	program := tea.NewProgram(tui.New(engine, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tui:", err)
		return 1
	}

	if recorder != nil && recorder.Len() > 0 {
		if err := recorder.WriteFile(cfg.DumpWAVPath); err != nil {
			fmt.Fprintln(os.Stderr, "dump wav:", err)
			return 1
		}
		fmt.Println("wrote", cfg.DumpWAVPath)
	}
	return 0
}

// newLogger routes logs away from the terminal the TUI owns.
func newLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = f
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return log, func() { _ = f.Close() }, nil
}

type nullSink struct{}

func (nullSink) Write([]byte) error { return nil }
func (nullSink) Flush()             {}
