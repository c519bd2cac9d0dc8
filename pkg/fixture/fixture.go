// Package fixture loads chart fixtures from TOML files.
//
// A fixture declares a container, the chart specs and an interaction
// script. It is what the CLI and golden tests feed to the layout pipeline:
//
//	name = "revenue"
//
//	[container]
//	width = 640
//	height = 400
//
//	[[axes]]
//	id = "x"
//	position = "bottom"
//
//	[[series]]
//	id = "revenue"
//	kind = "bar"
//	x_accessor = "month"
//	y_accessors = ["value"]
//	data = [{month = "jan", value = 3}, {month = "feb", value = 5}]
//
//	[[steps]]
//	name = "hover feb"
//	pointer = {x = 400.0, y = 200.0}
//
// Axes declared without tick size and padding get the defaults of
// [spec.NewAxis].
package fixture

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Fixture is one chart with its interaction script.
type Fixture struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`

	Container spec.Container `toml:"container"`
	spec.Specs

	// State is the interaction state before any step.
	State spec.InteractionState `toml:"state"`
	Steps []Step                `toml:"steps"`
}

// Step is one interaction state of the script.
type Step struct {
	Name string `toml:"name"`
	spec.InteractionState
}

// Decode parses and validates a fixture.
func Decode(data []byte) (*Fixture, error) {
	var f Fixture
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "invalid fixture")
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and decodes a fixture file.
func Load(path string) (*Fixture, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "fixture %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "read fixture %s", path)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if f.Name == "" {
		f.Name = path
	}
	return f, nil
}

func (f *Fixture) applyDefaults() {
	for i, a := range f.Axes {
		if a.TickSize == 0 && a.TickPadding == 0 {
			f.Axes[i].TickSize = spec.DefaultTickSize
			f.Axes[i].TickPadding = spec.DefaultTickPadding
		}
	}
}

// Validate checks the container and the specs. Domain errors are left to
// the layout pass, which reports them with the failing stage.
func (f *Fixture) Validate() error {
	if f.Container.Width <= 0 || f.Container.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidFixture,
			"container must have a positive size, got %gx%g", f.Container.Width, f.Container.Height)
	}
	if len(f.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidFixture, "fixture declares no series")
	}
	return f.Specs.Validate()
}

// Inputs returns the pipeline inputs of the initial state.
func (f *Fixture) Inputs() pipeline.Inputs {
	return pipeline.Inputs{Specs: f.Specs, Container: f.Container, State: f.State}
}

// StepInputs returns the pipeline inputs of step i. A step that lists no
// deselected series keeps those of the initial state.
func (f *Fixture) StepInputs(i int) pipeline.Inputs {
	in := f.Inputs()
	st := f.Steps[i].InteractionState
	if st.DeselectedSeries == nil {
		st.DeselectedSeries = f.State.DeselectedSeries
	}
	in.State = st
	return in
}
