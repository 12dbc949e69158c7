package logic

import (
	"fmt"
	"list_starling/shared"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
)

const dumpStartDelaySec = 10
const dumpLoopSec = 60
const defaultDumpKeepDays = 7

// IStackDumper periodically writes goroutine dumps to disk so a hung fetch or
// a leaking run can be diagnosed after the fact. Disabled unless a profile
// directory is configured.
type IStackDumper interface {
}

type stackDumper struct {
	logger   shared.ILogger
	dumpDir  string
	keepDays int
}

func NewStackDumper(cfg *shared.Config, logger shared.ILogger) IStackDumper {
	sd := stackDumper{logger, cfg.ProfileDir, cfg.ProfileKeepDays}
	if sd.dumpDir == "" {
		return &sd
	}
	if sd.keepDays <= 0 {
		sd.keepDays = defaultDumpKeepDays
	}
	if err := os.MkdirAll(sd.dumpDir, 0755); err != nil {
		logger.Errorf("Failed to create profile dir '%s': %v", sd.dumpDir, err)
		return &sd
	}
	go func() {
		time.Sleep(dumpStartDelaySec * time.Second)
		sd.dumpLoop()
	}()
	logger.Printf("Goroutine dumps enabled in %s, keeping %d days", sd.dumpDir, sd.keepDays)
	return &sd
}

func (sd *stackDumper) dumpLoop() {
	for {
		if err := sd.writeDump(); err != nil {
			sd.logger.Warnf("Failed to write goroutine dump: %v", err)
		}
		if err := sd.purgeOld(); err != nil {
			sd.logger.Warnf("Failed to purge old goroutine dumps: %v", err)
		}
		time.Sleep(dumpLoopSec * time.Second)
	}
}

func (sd *stackDumper) writeDump() error {
	fname := fmt.Sprintf("goroutines_%s.txt", time.Now().Format("20060102_150405"))
	f, err := os.Create(filepath.Join(sd.dumpDir, fname))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", runtime.NumGoroutine()); err != nil {
		return err
	}
	return pprof.Lookup("goroutine").WriteTo(f, 2)
}

func (sd *stackDumper) purgeOld() error {
	cutoff := time.Now().AddDate(0, 0, -sd.keepDays)
	return filepath.Walk(sd.dumpDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			return os.Remove(path)
		}
		return nil
	})
}
