package cliconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tapirbug/ibisibi/schedule"
)

// ErrInvocation is returned for run files that do not hold exactly one
// invocation.
var ErrInvocation = errors.New("run file must hold exactly one of destination, cycle, flash, scan, status")

// RunFile is a YAML document describing a single ibisibi invocation, e.g.
//
//	cycle:
//	  serial: /dev/ttyUSB0
//	  interval: 10s
//	  plan:
//	    - "1:0-10"
type RunFile struct {
	Destination *DestinationRun `yaml:"destination"`
	Cycle       *CycleRun       `yaml:"cycle"`
	Flash       *FlashRun       `yaml:"flash"`
	Scan        *ScanRun        `yaml:"scan"`
	Status      *StatusRun      `yaml:"status"`
}

// DestinationRun switches to a single destination.
type DestinationRun struct {
	Serial string `yaml:"serial"`
	Index  int    `yaml:"index"`
	Line   *int   `yaml:"line"`
}

// CycleRun cycles through plans. Zero durations fall back to Config.
type CycleRun struct {
	Serial    string          `yaml:"serial"`
	Interval  time.Duration   `yaml:"interval"`
	Lookahead time.Duration   `yaml:"lookahead"`
	Plan      []schedule.Plan `yaml:"plan"`
}

// FlashRun flashes a sign database.
type FlashRun struct {
	Serial   string `yaml:"serial"`
	Address  int    `yaml:"address"`
	Database string `yaml:"database"`
}

// ScanRun probes all sign addresses.
type ScanRun struct {
	Serial string `yaml:"serial"`
}

// StatusRun queries one sign.
type StatusRun struct {
	Serial  string `yaml:"serial"`
	Address int    `yaml:"address"`
}

// ParseRunFile decodes and checks a run file. Unknown keys are rejected.
func ParseRunFile(data []byte) (*RunFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rf RunFile
	if err := dec.Decode(&rf); err != nil {
		return nil, fmt.Errorf("parse run file: %w", err)
	}

	if kinds := rf.kinds(); len(kinds) != 1 {
		if len(kinds) == 0 {
			return nil, ErrInvocation
		}
		return nil, fmt.Errorf("%w, found %s", ErrInvocation, strings.Join(kinds, " and "))
	}

	if rf.Cycle != nil && len(rf.Cycle.Plan) == 0 {
		return nil, fmt.Errorf("parse run file: cycle needs at least one plan")
	}
	if rf.Flash != nil && rf.Flash.Database == "" {
		return nil, fmt.Errorf("parse run file: flash needs a database")
	}
	return &rf, nil
}

// LoadRunFile reads and parses the run file at path.
func LoadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRunFile(data)
}

// Kind returns the name of the invocation held by the run file.
func (rf *RunFile) Kind() string {
	if kinds := rf.kinds(); len(kinds) == 1 {
		return kinds[0]
	}
	return ""
}

// Serial returns the serial port named by the invocation, if any.
func (rf *RunFile) Serial() string {
	switch {
	case rf.Destination != nil:
		return rf.Destination.Serial
	case rf.Cycle != nil:
		return rf.Cycle.Serial
	case rf.Flash != nil:
		return rf.Flash.Serial
	case rf.Scan != nil:
		return rf.Scan.Serial
	case rf.Status != nil:
		return rf.Status.Serial
	}
	return ""
}

func (rf *RunFile) kinds() []string {
	var kinds []string
	if rf.Destination != nil {
		kinds = append(kinds, "destination")
	}
	if rf.Cycle != nil {
		kinds = append(kinds, "cycle")
	}
	if rf.Flash != nil {
		kinds = append(kinds, "flash")
	}
	if rf.Scan != nil {
		kinds = append(kinds, "scan")
	}
	if rf.Status != nil {
		kinds = append(kinds, "status")
	}
	return kinds
}
