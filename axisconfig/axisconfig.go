// Package axisconfig adds a declarative, YAML-driven axis builder on top
// of the axis package's constructors, the same way a config-driven option
// struct layers over a core library's constructors.
package axisconfig

import (
	"io"

	"github.com/francescog/histogram/axis"
	"github.com/francescog/histogram/herr"
	"gopkg.in/guregu/null.v3"
	"gopkg.in/yaml.v3"
)

// Spec is the YAML shape of one axis definition. Not every field applies
// to every Kind; see Load for which fields each kind consumes.
type Spec struct {
	Kind      string    `yaml:"kind"`
	Label     string    `yaml:"label"`
	Bins      int       `yaml:"bins"`
	Lower     float64   `yaml:"lower"`
	Upper     float64   `yaml:"upper"`
	Transform string    `yaml:"transform"`
	PowExp    float64   `yaml:"pow_exponent"`
	Edges     []float64 `yaml:"edges"`
	Start     float64   `yaml:"start"`
	Period    float64   `yaml:"period"`
	Values    []string  `yaml:"values"`

	// Uoflow is nullable: omitted in YAML means "use the default overflow
	// behavior for this kind" (true for Regular/Variable/Integer),
	// distinguishing it from an explicit false, the same way a
	// null.Bool-typed option field distinguishes "unset" from "false".
	Uoflow nullableBool `yaml:"uoflow"`
}

// nullableBool adapts null.Bool to gopkg.in/yaml.v3: yaml.v3 only defers to
// a field's own UnmarshalYAML, it does not know about null.Bool's JSON or
// SQL scanning methods, so a plain "uoflow: false" scalar would otherwise
// fail to decode into the embedded sql.NullBool's (Bool, Valid) fields.
type nullableBool struct {
	null.Bool
}

func (n *nullableBool) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err != nil {
		return err
	}
	n.Bool = null.BoolFrom(b)
	return nil
}

// Document is a YAML document of axis specs, in the order axes will be
// supplied to a histogram.
type Document struct {
	Axes []Spec `yaml:"axes"`
}

// Load parses a YAML document of axis specs from r and builds the
// corresponding axis.Axis values, in document order.
func Load(r io.Reader) ([]axis.Axis, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, herr.WithDetail(herr.ErrInvalidAxisParameters, "could not parse axis config yaml: "+err.Error())
	}

	axes := make([]axis.Axis, len(doc.Axes))
	for i, spec := range doc.Axes {
		a, err := build(spec)
		if err != nil {
			return nil, err
		}
		axes[i] = a
	}
	return axes, nil
}

func build(s Spec) (axis.Axis, error) {
	switch s.Kind {
	case "regular":
		return axis.NewRegular(s.Bins, s.Lower, s.Upper, transformFor(s), s.Label, s.Uoflow.ValueOrZero() || !s.Uoflow.Valid)
	case "circular":
		return axis.NewCircular(s.Bins, s.Start, s.Period, s.Label)
	case "variable":
		return axis.NewVariable(s.Edges, s.Label, s.Uoflow.ValueOrZero() || !s.Uoflow.Valid)
	case "integer":
		return axis.NewInteger(int(s.Lower), int(s.Upper), s.Label, s.Uoflow.ValueOrZero() || !s.Uoflow.Valid)
	case "category":
		return axis.NewCategory(s.Values, s.Label)
	default:
		return nil, herr.WithDetail(herr.ErrInvalidAxisParameters, "unknown axis kind: "+s.Kind)
	}
}

func transformFor(s Spec) axis.Transform {
	switch s.Transform {
	case "log":
		return axis.Log()
	case "sqrt":
		return axis.Sqrt()
	case "cos":
		return axis.Cos()
	case "pow":
		return axis.Pow(s.PowExp)
	default:
		return axis.Identity()
	}
}
