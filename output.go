package jsonskema

import "strings"

// OutputFormat selects one of the standard output shapes.
type OutputFormat int

const (
	OutputFlag OutputFormat = iota
	OutputBasic
	OutputHierarchical
	OutputVerbose
)

func (o OutputFormat) String() string {
	switch o {
	case OutputBasic:
		return "basic"
	case OutputHierarchical:
		return "hierarchical"
	case OutputVerbose:
		return "verbose"
	default:
		return "flag"
	}
}

// ParseOutputFormat accepts the names printed by OutputFormat.String;
// "detailed" is accepted for hierarchical.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "flag":
		return OutputFlag, true
	case "basic":
		return OutputBasic, true
	case "hierarchical", "detailed":
		return OutputHierarchical, true
	case "verbose":
		return OutputVerbose, true
	}
	return OutputFlag, false
}

// FlagOutput is the "flag" output shape.
type FlagOutput struct {
	Valid bool `json:"valid"`
}

// OutputUnit is one unit of the standard output shapes. Field names follow the
// JSON Schema output format.
type OutputUnit struct {
	Valid                   bool         `json:"valid"`
	KeywordLocation         string       `json:"keywordLocation"`
	AbsoluteKeywordLocation string       `json:"absoluteKeywordLocation,omitempty"`
	InstanceLocation        string       `json:"instanceLocation"`
	Error                   string       `json:"error,omitempty"`
	Annotation              any          `json:"annotation,omitempty"`
	Errors                  []OutputUnit `json:"errors,omitempty"`
	Annotations             []OutputUnit `json:"annotations,omitempty"`
}

// Evaluation is the full trace of one evaluation. Every output shape is
// rendered from it without evaluating again.
type Evaluation struct {
	root   *traceUnit
	errors ValidationErrors
}

// Valid reports the overall result.
func (ev *Evaluation) Valid() bool { return ev.root.valid }

// Errors lists the reported errors in canonical order.
func (ev *Evaluation) Errors() ValidationErrors { return append(ValidationErrors(nil), ev.errors...) }

// Format renders the requested shape: FlagOutput for OutputFlag, OutputUnit
// otherwise.
func (ev *Evaluation) Format(f OutputFormat) any {
	switch f {
	case OutputBasic:
		return ev.Basic()
	case OutputHierarchical:
		return ev.Hierarchical()
	case OutputVerbose:
		return ev.Verbose()
	default:
		return ev.Flag()
	}
}

func (ev *Evaluation) Flag() FlagOutput { return FlagOutput{Valid: ev.root.valid} }

// Basic is a flat list: the units carrying an error when invalid, the units
// carrying an annotation when valid.
func (ev *Evaluation) Basic() OutputUnit {
	out := ev.root.unit()
	var walk func(u *traceUnit)
	walk = func(u *traceUnit) {
		if u.valid != ev.root.valid {
			return
		}
		switch {
		case !u.valid && u.err != nil:
			out.Errors = append(out.Errors, u.unit())
		case u.valid && u.hasAnnotation:
			out.Annotations = append(out.Annotations, u.unit())
		}
		for _, c := range u.children {
			walk(c)
		}
	}
	for _, c := range ev.root.children {
		walk(c)
	}
	return out
}

// Hierarchical follows the schema structure, keeps only units contributing to
// the result and collapses intermediate units with a single child.
func (ev *Evaluation) Hierarchical() OutputUnit {
	out := ev.root.unit()
	kids := ev.root.detailedChildren()
	if ev.root.valid {
		out.Annotations = kids
	} else {
		out.Errors = kids
	}
	return out
}

// Verbose is the complete trace.
func (ev *Evaluation) Verbose() OutputUnit { return ev.root.verbose() }

func (u *traceUnit) unit() OutputUnit {
	out := OutputUnit{
		Valid:                   u.valid,
		KeywordLocation:         u.keywordLocation,
		AbsoluteKeywordLocation: u.absoluteLocation,
		InstanceLocation:        u.instanceLocation,
	}
	if u.err != nil {
		out.Error = u.err.Message
	}
	if u.valid && u.hasAnnotation {
		out.Annotation = u.annotation
	}
	return out
}

func (u *traceUnit) verbose() OutputUnit {
	out := u.unit()
	for _, c := range u.children {
		if u.valid {
			out.Annotations = append(out.Annotations, c.verbose())
		} else {
			out.Errors = append(out.Errors, c.verbose())
		}
	}
	return out
}

func (u *traceUnit) detailedChildren() []OutputUnit {
	var kids []OutputUnit
	for _, c := range u.children {
		if c.valid != u.valid {
			continue
		}
		if k, ok := c.detailed(); ok {
			kids = append(kids, k)
		}
	}
	return kids
}

func (u *traceUnit) detailed() (OutputUnit, bool) {
	kids := u.detailedChildren()
	carries := (!u.valid && u.err != nil) || (u.valid && u.hasAnnotation)
	switch {
	case !carries && len(kids) == 0:
		return OutputUnit{}, false
	case !carries && len(kids) == 1:
		return kids[0], true
	}
	out := u.unit()
	if u.valid {
		out.Annotations = kids
	} else {
		out.Errors = kids
	}
	return out, true
}
