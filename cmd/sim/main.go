package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/milk9111/cameraman/prefabs"
	"github.com/milk9111/cameraman/sim"
)

func main() {
	script := flag.String("script", "scripts/figure_eight.tengo", "tengo motion script driving the target")
	frames := flag.Int("frames", sim.DefaultFrames, "number of frames to simulate")
	dt := flag.Float64("dt", sim.DefaultDT, "seconds per frame")
	configDir := flag.String("config", prefabs.Dir, "directory checked for camera.yaml and script overrides")
	csvPath := flag.String("csv", "-", "CSV output path, - for stdout, empty to skip")
	htmlPath := flag.String("html", "", "write an echarts HTML report to this path")
	flag.Parse()

	prefabs.Dir = *configDir

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	trace, err := sim.Run(ctx, sim.Config{Script: *script, Frames: *frames, DT: *dt})
	if err != nil {
		log.Fatalf("sim: %v", err)
	}

	if *csvPath != "" {
		if err := writeFile(*csvPath, func(w io.Writer) error { return sim.WriteCSV(w, trace) }); err != nil {
			log.Fatalf("sim: write csv: %v", err)
		}
	}
	if *htmlPath != "" {
		if err := writeFile(*htmlPath, func(w io.Writer) error { return sim.WriteChart(w, trace) }); err != nil {
			log.Fatalf("sim: write chart: %v", err)
		}
		log.Printf("sim: chart written to %s", *htmlPath)
	}

	if last, ok := trace.Last(); ok {
		log.Printf("sim: final target=(%.1f, %.1f) camera=(%.1f, %.1f) phase=%s",
			last.Target.X, last.Target.Y, last.Camera.X, last.Camera.Y, last.Phase)
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
