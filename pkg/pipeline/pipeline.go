// Package pipeline drives layout passes over the derivation stages.
//
// A [Controller] owns one chart instance. Each call to [Controller.Compute]
// runs the stages in dependency order:
//
//	settings → domain → ticks → frame → {panels, axes} → geometries → {legend, interaction}
//
// Every stage declares its inputs. Before a pass starts, the controller
// fingerprints the declared inputs of every stage, chaining in the
// fingerprints of the stages it reads. A stage whose fingerprint is
// unchanged since the previous pass is skipped and its previous output is
// returned, the very same pointer. Moving the pointer or hovering a legend
// item therefore only recomputes the interaction stage.
//
// The text surface used to measure labels is acquired once per pass, and
// only when a measuring stage has to run. It is released on every exit
// path, including configuration errors.
package pipeline

import (
	"fmt"
	"slices"
	"time"

	"github.com/matzehuels/chartframe/pkg/spec"
)

// Stage names, in dependency order.
const (
	StageSettings    = "settings"
	StageDomain      = "domain"
	StageTicks       = "ticks"
	StageFrame       = "frame"
	StagePanels      = "panels"
	StageAxes        = "axes"
	StageGeometries  = "geometries"
	StageLegend      = "legend"
	StageInteraction = "interaction"
)

// Inputs is everything a layout pass reads.
type Inputs struct {
	Specs     spec.Specs
	Container spec.Container
	State     spec.InteractionState
}

// Stats contains pass execution statistics.
type Stats struct {
	// Stages holds the duration of every stage that ran. Skipped stages
	// are absent.
	Stages map[string]time.Duration `json:"stages"`
	Total  time.Duration            `json:"total"`
}

// CacheInfo tracks which stages were skipped.
type CacheInfo struct {
	Stages []string        `json:"stages"` // Stage order of the pass
	Hits   map[string]bool `json:"hits"`   // Whether a stage output came from the cache
}

// Recomputed returns the stages that ran, in order.
func (ci CacheInfo) Recomputed() []string {
	var out []string
	for _, s := range ci.Stages {
		if !ci.Hits[s] {
			out = append(out, s)
		}
	}
	return out
}

// =============================================================================
// Output formats
// =============================================================================

// Supported output formats for snapshots and previews.
const (
	FormatJSON = "json"
	FormatBSON = "bson"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
)

// ValidFormats is the set of valid output format strings.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatBSON: true,
	FormatSVG:  true,
	FormatDOT:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, bson, svg, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Formats returns the valid formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}
