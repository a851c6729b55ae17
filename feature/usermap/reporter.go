package usermap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"usermap-reconciler/core/identity"
	"usermap-reconciler/core/report"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	warningColor = color.New(color.FgYellow)
)

// PrintResult writes the name mapping and the totals to w.
func PrintResult(w io.Writer, r *Result) {
	headerColor.Fprintf(w, "\n=== Usermap (%s) ===\n", r.Mode)
	r.Names.Each(func(name string, id identity.ID) {
		fmt.Fprintf(w, "%s => %s\n", name, id)
	})

	s := r.Summary()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Users in Name => UUID Cache: %d\n", s.Names)
	fmt.Fprintf(w, "Total Users in Known UUID Cache: %d\n", s.KnownUUIDs)
	if s.Reconcile != nil {
		fmt.Fprintf(w, "Replaced: %d, Skipped: %d, Invalid Names: %d\n",
			s.Reconcile.Replaced, s.Reconcile.Skipped, s.Reconcile.InvalidNames)
	}
	if s.Warnings > 0 {
		warningColor.Fprintf(w, "Warnings: %d\n", s.Warnings)
	}
}

// LogSummary logs the aggregate counts of r.
func LogSummary(l *zap.Logger, r *Result) {
	s := r.Summary()
	fields := []zap.Field{
		zap.String("mode", string(r.Mode)),
		zap.Int("names", s.Names),
		zap.Int("known_uuids", s.KnownUUIDs),
		zap.Int("warnings", s.Warnings),
	}
	if s.Reconcile != nil {
		fields = append(fields,
			zap.Int("observations", s.Reconcile.Observations),
			zap.Int("inserted", s.Reconcile.Inserted),
			zap.Int("replaced", s.Reconcile.Replaced),
			zap.Int("skipped", s.Reconcile.Skipped),
			zap.Int("invalid_names", s.Reconcile.InvalidNames),
		)
	}
	l.Info("Usermap report", fields...)
}

// JSONReport is the layout of a saved report.
type JSONReport struct {
	Mode        Mode           `json:"mode"`
	GeneratedAt string         `json:"generated_at"`
	Summary     Summary        `json:"summary"`
	Usermap     []Entry        `json:"usermap"`
	KnownUUIDs  []identity.ID  `json:"known_uuids"`
	Events      []report.Event `json:"events"`
}

// NewJSONReport builds the JSON layout of r.
func NewJSONReport(r *Result, now time.Time) JSONReport {
	events := r.Events
	if events == nil {
		events = []report.Event{}
	}
	return JSONReport{
		Mode:        r.Mode,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Summary:     r.Summary(),
		Usermap:     r.Entries(),
		KnownUUIDs:  r.IDs.Slice(),
		Events:      events,
	}
}

// SaveJSON writes the JSON report of r to path.
func SaveJSON(path string, r *Result) error {
	data, err := json.MarshalIndent(NewJSONReport(r, time.Now()), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save JSON file: %w", err)
	}
	return nil
}
