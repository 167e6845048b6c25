// Command vrtdump decodes files of concatenated VRT packets and prints
// them, optionally emitting NDJSON records or a PDF capture report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	vita49 "github.com/voyager-tech-inc/vita49-go"
	"github.com/voyager-tech-inc/vita49-go/internal/common"
	"github.com/voyager-tech-inc/vita49-go/internal/report"
	"github.com/voyager-tech-inc/vita49-go/internal/scan"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	ndjson := flag.Bool("ndjson", false, "emit one JSON object per packet instead of text")
	quiet := flag.Bool("quiet", false, "suppress per-packet output")
	makeReport := flag.Bool("report", false, "write a PDF capture report per input file")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: vrtdump [flags] capture.vrt ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		common.Fatalf("load config: %v", err)
	}
	if err := setupLogging(cfg); err != nil {
		common.Fatalf("setup logging: %v", err)
	}

	exit := 0
	for _, path := range flag.Args() {
		if err := dumpFile(path, cfg, *ndjson, *quiet, *makeReport); err != nil {
			common.Logf("%s: %v", path, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func setupLogging(cfg config) error {
	if cfg.Logs.Directory == "" {
		return nil
	}
	if err := os.MkdirAll(cfg.Logs.Directory, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Logs.Directory, "vrtdump.log"),
		MaxSize:    cfg.Logs.MaxSizeMB,
		MaxAge:     cfg.Logs.MaxAgeDays,
		MaxBackups: cfg.Logs.MaxBackups,
		Compress:   cfg.Logs.Compress,
	}
	common.SetOutput(io.MultiWriter(os.Stderr, rotator))
	return nil
}

func dumpFile(path string, cfg config, ndjson, quiet, makeReport bool) error {
	metrics := common.NewMetrics()
	metrics.Start()
	var stopProgress func()
	if cfg.Progress {
		stopProgress = common.StartProgressPrinter(os.Stderr, metrics, time.Second)
	}

	enc := json.NewEncoder(os.Stdout)
	sum, err := scan.File(path, metrics, func(pkt *vita49.Packet, rec scan.Record) {
		if quiet || pkt == nil {
			return
		}
		if ndjson {
			if err := enc.Encode(pkt.Named()); err != nil {
				common.Logf("encode record at offset %d: %v", rec.Offset, err)
			}
			return
		}
		fmt.Printf("# offset %d (%d bytes)\n%s\n", rec.Offset, rec.SizeBytes, pkt)
	})
	metrics.Stop()
	if stopProgress != nil {
		stopProgress()
	}
	if err != nil {
		return err
	}

	snap := metrics.Snapshot()
	common.Logf("%s: %d packets, %s, %d decode errors, %.2f MiB/s",
		path, sum.Packets, common.FormatBytes(snap.Bytes), sum.DecodeErrors,
		snap.ThroughputBytesPerSecond()/(1024*1024))

	if !makeReport {
		return nil
	}
	capture, err := report.Build(path, sum)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	pdfPath := filepath.Join(cfg.Report.Directory, base+".report.pdf")
	if err := report.SaveCapturePDF(capture, pdfPath); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	common.Logf("wrote %s", pdfPath)
	if cfg.Report.JSON {
		jsonPath := filepath.Join(cfg.Report.Directory, base+".report.json")
		if err := report.SaveJSON(capture, jsonPath); err != nil {
			return fmt.Errorf("write report json: %w", err)
		}
		common.Logf("wrote %s", jsonPath)
	}
	return nil
}
