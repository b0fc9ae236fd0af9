package knownanswertest

// Copyright (c) 2025 Colin McRae

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// KATLog writes the contexts of a known-answer run to a file of JSON lines,
// followed by one summary line.
type KATLog struct {
	RunID          string
	Path           string
	reportInterval int
	file           *os.File
	encoder        *json.Encoder
	summary        KATSummary
}

// KATSummary is the last line of a KAT log
type KATSummary struct {
	RunID         string `json:"runID"`
	Dim           int    `json:"dim"`
	NumContexts   int    `json:"numContexts"`
	NumSolved     int    `json:"numSolved"`
	NumVerified   int    `json:"numVerified"`
	NumFailed     int    `json:"numFailed"`
	TotalNanos    int64  `json:"totalNanos"`
	FinishedAtUTC string `json:"finishedAtUTC"`
}

// katLogEntry is one progress line
type katLogEntry struct {
	RunID   string       `json:"runID"`
	Index   int          `json:"index"`
	Context *MCRTContext `json:"context"`
}

// NewKATLog creates <dir>/mcrt-kat-<dim>-<run ID>.json. Every reportInterval-th
// context passed to ReportProgress is written in full; all of them are counted.
func NewKATLog(dir string, dim, reportInterval int) (*KATLog, error) {
	if reportInterval < 1 {
		return nil, fmt.Errorf("NewKATLog: report interval %d is not positive", reportInterval)
	}
	runID := uuid.NewString()
	path := filepath.Join(dir, fmt.Sprintf("mcrt-kat-%d-%s.json", dim, runID))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("NewKATLog: could not create %s: %q", path, err.Error())
	}
	return &KATLog{
		RunID:          runID,
		Path:           path,
		reportInterval: reportInterval,
		file:           file,
		encoder:        json.NewEncoder(file),
		summary:        KATSummary{RunID: runID, Dim: dim},
	}, nil
}

// ReportProgress tallies mc and, at the report interval, writes it to the log
func (kl *KATLog) ReportProgress(mc *MCRTContext) error {
	if kl.file == nil {
		return fmt.Errorf("ReportProgress: log %s is closed", kl.Path)
	}
	index := kl.summary.NumContexts
	kl.summary.NumContexts++
	kl.summary.TotalNanos += mc.ElapsedNanos
	if mc.Solved {
		kl.summary.NumSolved++
	}
	if mc.Verified {
		kl.summary.NumVerified++
	} else {
		kl.summary.NumFailed++
	}
	if index%kl.reportInterval != 0 {
		return nil
	}
	err := kl.encoder.Encode(katLogEntry{RunID: kl.RunID, Index: index, Context: mc})
	if err != nil {
		return fmt.Errorf("ReportProgress: could not write to %s: %q", kl.Path, err.Error())
	}
	return nil
}

// ReportResults writes the summary line and closes the log
func (kl *KATLog) ReportResults() (KATSummary, error) {
	if kl.file == nil {
		return kl.summary, fmt.Errorf("ReportResults: log %s is closed", kl.Path)
	}
	kl.summary.FinishedAtUTC = time.Now().UTC().Format(time.RFC3339)
	err := kl.encoder.Encode(kl.summary)
	closeErr := kl.file.Close()
	kl.file = nil
	if err != nil {
		return kl.summary, fmt.Errorf("ReportResults: could not write to %s: %q", kl.Path, err.Error())
	}
	if closeErr != nil {
		return kl.summary, fmt.Errorf("ReportResults: could not close %s: %q", kl.Path, closeErr.Error())
	}
	return kl.summary, nil
}
