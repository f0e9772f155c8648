package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fordream/goxel/action"
	"github.com/fordream/goxel/metrics"
	"github.com/fordream/goxel/scene"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func report(w io.Writer, img *scene.Image) (err error) {
	fmt.Fprintf(w, "Number of Layer: %d\n", img.Len())
	for i, layer := range img.Layers() {
		mark := " "
		if layer == img.ActiveLayer() {
			mark = "*"
		}
		fmt.Fprintf(w, "%s Layer: %d %q visible:%t", mark, i, layer.Name(), layer.Visible)
		if v := scene.Voxels(layer); v != nil {
			digest, err := v.Digest()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " voxels:%d digest:%s", v.Count(), digest.B58String())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "History: %d snapshots, current %d\n", img.HistoryLen(), img.HistoryCursor())
	return
}

func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func _main() error {
	var (
		configPath string
		verbose    bool
	)
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.BoolVar(&verbose, "v", false, "Debug logging")
	flag.Parse()

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	if flag.NArg() < 1 {
		log.Print("missing script")
		return nil
	}
	filename := flag.Arg(0)
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	script, err := LoadScript(file)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	img := scene.New(scene.WithHistoryLimit(cfg.HistoryLimit), scene.WithObserver(rec))
	defer img.Delete()
	img.ExportWidth = cfg.ExportWidth
	img.ExportHeight = cfg.ExportHeight

	action.Default.SetNotifier(rec.Notifier(scene.NotifierFunc(func() {
		log.Debug("meshes changed")
	})))
	if err := script.Run(img, action.Default); err != nil {
		return err
	}

	if err := report(os.Stdout, img); err != nil {
		return err
	}
	if cfg.PrintMetrics {
		return printMetrics(os.Stdout, reg)
	}
	return nil
}

func main() {
	prefixed := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
		ForceColors:     true,
	}
	log.SetFormatter(prefixed)
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
	err := _main()
	if err != nil {
		log.Fatal(err)
	}
}
