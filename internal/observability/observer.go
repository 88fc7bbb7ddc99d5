// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// Level controls how much the observer emits.
type Level int

const (
	// Off disables all output.
	Off Level = iota
	// Metrics records operations but stays silent.
	Metrics
	// Debug writes one JSON line per operation.
	Debug
)

// Observer records timing and outcome for pipeline operations. At Debug
// level each completed operation is written to the configured writer as a
// JSON line; otherwise operations are tracked silently.
type Observer struct {
	level  Level
	writer io.Writer
}

// NewObserver creates an Observer at the given level writing to w.
func NewObserver(level Level, w io.Writer) *Observer {
	return &Observer{level: level, writer: w}
}

// Event is one observed operation.
type Event struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	FilePath   string         `json:"file_path,omitempty"`
	DurationMs int64          `json:"duration_ms"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// StartTiming begins timing an operation and returns a completion function.
// Call the completion function exactly once with the outcome and any
// metadata worth recording.
func (o *Observer) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]any) {
	if o == nil || o.level == Off {
		return func(bool, map[string]any) {}
	}
	start := time.Now()
	return func(success bool, metadata map[string]any) {
		o.log(Event{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// RecordError logs a failed operation immediately, without timing.
func (o *Observer) RecordError(component, operation, filePath string, err error) {
	if o == nil || o.level == Off || err == nil {
		return
	}
	o.log(Event{
		Component: component,
		Operation: operation,
		FilePath:  filePath,
		Success:   false,
		Error:     err.Error(),
	})
}

func (o *Observer) log(ev Event) {
	if o.level == Debug && o.writer != nil {
		json.NewEncoder(o.writer).Encode(ev)
	}
}
