package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayusman/kathak/internal/engine"
	"github.com/ayusman/kathak/internal/trace"
)

func main() {
	var (
		tracePath  = flag.String("trace", "", "pointer trace file to replay (JSON lines); '-' reads stdin")
		configPath = flag.String("config", "", "optional YAML configuration file")
		quiet      = flag.Bool("quiet", false, "suppress per-sample motion output")
	)
	flag.Parse()

	fmt.Println("Kathak - Pointer Trail Gesture Recognition")

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath, cfg)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	if *tracePath == "" {
		log.Fatal("No trace given; use -trace <file> or -trace - for stdin")
	}

	var in io.Reader = os.Stdin
	if *tracePath != "-" {
		f, err := os.Open(*tracePath)
		if err != nil {
			log.Fatalf("Failed to open trace: %v", err)
		}
		defer f.Close()
		in = f
	}

	eng := engine.New(cfg)

	if !*quiet {
		eng.OnMotion(func(ev engine.MotionEvent) {
			log.Printf("motion: %s velocity=(%.1f, %.1f) trail=%d", ev.Motion, ev.Velocity.X, ev.Velocity.Y, ev.TrailLength)
		})
	}

	gestures := 0
	eng.OnGesture(func(res engine.GestureResult) {
		gestures++
		log.Printf("gesture: %s confidence=%.2f duration=%s", res.Gesture, res.Confidence, res.Duration.Round(time.Millisecond))
	})

	delivered, err := trace.Play(in, eng)
	if err != nil {
		log.Fatalf("Replay failed: %v", err)
	}

	fmt.Printf("Replayed %d events, recognized %d gestures\n", delivered, gestures)
}

// fileConfig mirrors engine.Config for YAML. Fields left unset in the file
// keep their defaults.
type fileConfig struct {
	TrackingEnabled        *bool    `yaml:"trackingEnabled"`
	MinMovementThreshold   *float64 `yaml:"minMovementThreshold"`
	GestureTimeoutMs       *int     `yaml:"gestureTimeoutMs"`
	CircleSegmentsRequired *int     `yaml:"circleSegmentsRequired"`
	SmoothingFactor        *float64 `yaml:"smoothingFactor"`
	MaxTrailLength         *int     `yaml:"maxTrailLength"`
	MinGesturePoints       *int     `yaml:"minGesturePoints"`
}

// loadConfig reads a YAML configuration file and applies the set fields
// over base.
func loadConfig(path string, base engine.Config) (engine.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.TrackingEnabled != nil {
		base.TrackingEnabled = *fc.TrackingEnabled
	}
	if fc.MinMovementThreshold != nil {
		base.MinMovementThreshold = *fc.MinMovementThreshold
	}
	if fc.GestureTimeoutMs != nil {
		base.GestureTimeout = time.Duration(*fc.GestureTimeoutMs) * time.Millisecond
	}
	if fc.CircleSegmentsRequired != nil {
		base.CircleSegmentsRequired = *fc.CircleSegmentsRequired
	}
	if fc.SmoothingFactor != nil {
		base.SmoothingFactor = *fc.SmoothingFactor
	}
	if fc.MaxTrailLength != nil {
		base.MaxTrailLength = *fc.MaxTrailLength
	}
	if fc.MinGesturePoints != nil {
		base.MinGesturePoints = *fc.MinGesturePoints
	}

	return base, nil
}
