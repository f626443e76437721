// Package report turns Download Station task snapshots into the per-task
// progress report. Derivation has no side effects; the same snapshot always
// yields the same report.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/ag0n1k/tg-fsyn/internal/synology"
)

const (
	bytesPerGB = 1 << 30
	bytesPerMB = 1 << 20
)

// Summary is the derived view of one task. Elapsed and speed fields are zero
// when the task carries no usable timing, and the text rendering shows n/a
// for them in that case.
type Summary struct {
	Title          string          `json:"title" yaml:"title"`
	Status         synology.Status `json:"status" yaml:"status"`
	SizeBytes      int64           `json:"size_bytes" yaml:"size_bytes"`
	SizeGB         float64         `json:"size_gb" yaml:"size_gb"`
	ElapsedSeconds int64           `json:"elapsed_seconds,omitempty" yaml:"elapsed_seconds,omitempty"`
	ElapsedHours   float64         `json:"elapsed_hours,omitempty" yaml:"elapsed_hours,omitempty"`
	SpeedMBps      float64         `json:"speed_mbps,omitempty" yaml:"speed_mbps,omitempty"`
}

// Summarize derives the report view of one task.
func Summarize(t synology.Task) Summary {
	s := Summary{
		Title:     t.Title,
		Status:    t.Status,
		SizeBytes: t.Size,
		SizeGB:    round2(float64(t.Size) / bytesPerGB),
	}
	if elapsed := t.ElapsedSeconds(); elapsed > 0 {
		s.ElapsedSeconds = elapsed
		s.ElapsedHours = round2(float64(elapsed) / 3600)
		s.SpeedMBps = round2(float64(t.Size) / float64(elapsed) / bytesPerMB)
	}
	return s
}

// Summaries derives the report view of every task, keeping station order.
func Summaries(tasks []synology.Task) []Summary {
	out := make([]Summary, len(tasks))
	for i, t := range tasks {
		out[i] = Summarize(t)
	}
	return out
}

// Render formats one summary as its report block.
func (s Summary) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 %s\n", s.Title)
	fmt.Fprintf(&b, "   Status: %s\n", s.Status)
	fmt.Fprintf(&b, "   Size: %.2f GB\n", s.SizeGB)
	if s.ElapsedSeconds > 0 {
		fmt.Fprintf(&b, "   ⬇️ Downloaded: %.2f hours\n", s.ElapsedHours)
		fmt.Fprintf(&b, "   ⬇️ Average Speed: %.2f MB/s", s.SpeedMBps)
	} else {
		b.WriteString("   ⬇️ Downloaded: n/a\n")
		b.WriteString("   ⬇️ Average Speed: n/a")
	}
	return b.String()
}

// Render formats the whole report, one block per task in station order,
// separated by blank lines.
func Render(tasks []synology.Task) string {
	if len(tasks) == 0 {
		return "No download tasks found."
	}
	blocks := make([]string, len(tasks))
	for i, t := range tasks {
		blocks[i] = Summarize(t).Render()
	}
	return strings.Join(blocks, "\n\n")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
