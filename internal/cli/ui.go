package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/chartframe/pkg/pipeline"
)

// Terminal colors. Stage colors follow the stage graph: amber for stages a
// pass recomputed, gray for cache hits.
var (
	colorAccent   = lipgloss.Color("36")
	colorOK       = lipgloss.Color("35")
	colorWarn     = lipgloss.Color("220")
	colorErr      = lipgloss.Color("167")
	colorCommand  = lipgloss.Color("75")
	colorValue    = lipgloss.Color("255")
	colorLabel    = lipgloss.Color("245")
	colorMuted    = lipgloss.Color("240")
	colorStageRun = lipgloss.Color("#fde68a")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	focusStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle   = lipgloss.NewStyle().Foreground(colorValue)
	labelStyle   = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	okStyle      = lipgloss.NewStyle().Foreground(colorOK)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarn)
	errStyle     = lipgloss.NewStyle().Foreground(colorErr)
	commandStyle = lipgloss.NewStyle().Foreground(colorCommand)
	stageRun     = lipgloss.NewStyle().Foreground(colorStageRun)
	stageHit     = lipgloss.NewStyle().Foreground(colorMuted)
)

const (
	markOK    = "✓"
	markErr   = "✗"
	markWarn  = "!"
	markPass  = "›"
	markFile  = "→"
	markFocus = "▸"
)

// report writes the human-readable output of a command.
type report struct {
	w io.Writer
}

func newReport(w io.Writer) *report { return &report{w: w} }

func (r *report) line(s string) { fmt.Fprintln(r.w, s) }

func (r *report) blank() { fmt.Fprintln(r.w) }

// title prints a fixture name and its description.
func (r *report) title(name, description string) {
	r.line(titleStyle.Render(name))
	if description != "" {
		r.line(mutedStyle.Render(description))
	}
}

// pass prints one layout pass: its name, how many stages ran and how
// long it took, then the stages in run order colored by cache outcome.
func (r *report) pass(name string, info pipeline.CacheInfo, total time.Duration) {
	ran := len(info.Recomputed())
	outcome := okStyle.Render("all cached")
	if ran > 0 {
		outcome = fmt.Sprintf("%d/%d recomputed", ran, len(info.Stages))
	}
	r.line(fmt.Sprintf("%s %s %s %s",
		mutedStyle.Render(markPass),
		valueStyle.Render(name),
		mutedStyle.Render("·"),
		mutedStyle.Render(outcome+" in "+total.Round(time.Microsecond).String())))
	if ran == 0 {
		return
	}
	stages := make([]string, len(info.Stages))
	for i, s := range info.Stages {
		if info.Hits[s] {
			stages[i] = stageHit.Render(s)
		} else {
			stages[i] = stageRun.Render(s)
		}
	}
	r.line("  " + strings.Join(stages, " "))
}

// field prints a labeled value.
func (r *report) field(label, value string) {
	r.line(labelStyle.Render(label) + " " + valueStyle.Render(value))
}

// detail prints an indented secondary line.
func (r *report) detail(s string) {
	r.line("  " + mutedStyle.Render(s))
}

func (r *report) warn(s string) {
	r.line(warnStyle.Render(markWarn) + " " + warnStyle.Render(s))
}

// wrote reports a file the command produced.
func (r *report) wrote(what, path string) {
	r.line(okStyle.Render(markOK) + " " + what)
	r.line("  " + mutedStyle.Render(markFile) + " " + valueStyle.Render(path))
}

// next suggests a follow-up command.
func (r *report) next(what, command string) {
	r.line(mutedStyle.Render(what+":") + " " + commandStyle.Render(command))
}
