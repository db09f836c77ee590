package instance

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/matching"
)

// Assignment is one participant's line in a Report; Project is empty for
// an unmatched participant.
type Assignment struct {
	Participant string `yaml:"participant"`
	Project     string `yaml:"project"`
}

// Report is the YAML view of a matching.Result. Cost is omitted when no
// stable matching was found.
type Report struct {
	Found       bool         `yaml:"found"`
	Cost        *int         `yaml:"cost,omitempty"`
	Filled      int          `yaml:"filled"`
	Orders      int          `yaml:"orders"`
	Distinct    int          `yaml:"distinct"`
	Stable      int          `yaml:"stable"`
	Assignments []Assignment `yaml:"assignments,omitempty"`
}

// NewReport names the participants and projects of res using d.
func NewReport(d *Document, res matching.Result) Report {
	rep := Report{
		Found:    res.Found,
		Filled:   res.Filled,
		Orders:   res.Stats.Orders,
		Distinct: res.Stats.Distinct,
		Stable:   res.Stats.Stable,
	}
	if !res.Found {
		return rep
	}

	cost := res.Cost
	rep.Cost = &cost
	rep.Assignments = make([]Assignment, len(res.Matching))
	for s, p := range res.Matching {
		rep.Assignments[s].Participant = d.ParticipantName(s)
		if p != matching.Unmatched {
			rep.Assignments[s].Project = d.ProjectName(p)
		}
	}

	return rep
}

// WriteReport encodes rep as YAML with two-space indentation.
func WriteReport(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("instance: encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("instance: encode report: %w", err)
	}

	return nil
}

// WriteDocument encodes d as YAML, e.g. to export the built-in example.
func WriteDocument(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("instance: encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("instance: encode document: %w", err)
	}

	return nil
}
