// Package instance reads matching instances from YAML documents and writes
// matching results back as YAML reports.
//
// A document names both sides and lets preference lists refer to the other
// side either by index or by name:
//
//	participants:
//	  - name: ada
//	    prefers: [compilers, 1]
//	projects:
//	  - name: compilers
//	    capacity: 1
//	    accepts_unlisted: true
//	    prefers: [ada]
//
// Unnamed entries get the names p<i> (participants) and j<i> (projects).
package instance

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/matching"
)

var (
	// ErrBadReference indicates a preference entry that is neither an index nor a name.
	ErrBadReference = errors.New("instance: bad preference reference")

	// ErrUnknownName indicates a preference entry naming nobody.
	ErrUnknownName = errors.New("instance: unknown name")

	// ErrDuplicateName indicates two entries of one side sharing a name.
	ErrDuplicateName = errors.New("instance: duplicate name")
)

// Ref points at an entity of the other side, by index or by name.
type Ref struct {
	Index int
	Name  string
}

// UnmarshalYAML accepts an integer scalar (index) or any other scalar (name).
func (r *Ref) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrBadReference, value.Line)
	}
	if value.ShortTag() == "!!int" {
		var i int
		if err := value.Decode(&i); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadReference, value.Line, err)
		}
		*r = Ref{Index: i}
		return nil
	}
	if value.Value == "" {
		return fmt.Errorf("%w: line %d: empty name", ErrBadReference, value.Line)
	}
	*r = Ref{Name: value.Value}

	return nil
}

// MarshalYAML writes the name when set, the index otherwise.
func (r Ref) MarshalYAML() (interface{}, error) {
	if r.Name != "" {
		return r.Name, nil
	}

	return r.Index, nil
}

// Participant is one entry of the participants section.
type Participant struct {
	Name    string `yaml:"name,omitempty"`
	Prefers []Ref  `yaml:"prefers"`
}

// Project is one entry of the projects section.
type Project struct {
	Name            string `yaml:"name,omitempty"`
	Capacity        int    `yaml:"capacity"`
	AcceptsUnlisted bool   `yaml:"accepts_unlisted"`
	Prefers         []Ref  `yaml:"prefers"`
}

// Document models one instance file.
type Document struct {
	Participants []Participant `yaml:"participants"`
	Projects     []Project     `yaml:"projects"`
}

// Decode reads a Document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	return &doc, nil
}

// Load reads the Document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// ParticipantName returns the display name of participant i.
func (d *Document) ParticipantName(i int) string {
	if i >= 0 && i < len(d.Participants) && d.Participants[i].Name != "" {
		return d.Participants[i].Name
	}

	return "p" + strconv.Itoa(i)
}

// ProjectName returns the display name of project j.
func (d *Document) ProjectName(j int) string {
	if j >= 0 && j < len(d.Projects) && d.Projects[j].Name != "" {
		return d.Projects[j].Name
	}

	return "j" + strconv.Itoa(j)
}

// Instance resolves names and builds the matching input. Index references
// are passed through unchanged; range checks are left to matching.Validate.
func (d *Document) Instance() (*matching.Instance, error) {
	participants, err := nameIndex(len(d.Participants), d.ParticipantName)
	if err != nil {
		return nil, fmt.Errorf("participants: %w", err)
	}
	projects, err := nameIndex(len(d.Projects), d.ProjectName)
	if err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}

	in := &matching.Instance{
		ParticipantPrefs: make([][]int, len(d.Participants)),
		ProjectPrefs:     make([][]int, len(d.Projects)),
		Capacities:       make([]int, len(d.Projects)),
		AcceptsUnlisted:  make([]bool, len(d.Projects)),
	}
	for i, p := range d.Participants {
		if in.ParticipantPrefs[i], err = resolve(p.Prefers, projects); err != nil {
			return nil, fmt.Errorf("participant %s: %w", d.ParticipantName(i), err)
		}
	}
	for j, p := range d.Projects {
		if in.ProjectPrefs[j], err = resolve(p.Prefers, participants); err != nil {
			return nil, fmt.Errorf("project %s: %w", d.ProjectName(j), err)
		}
		in.Capacities[j] = p.Capacity
		in.AcceptsUnlisted[j] = p.AcceptsUnlisted
	}

	return in, nil
}

func nameIndex(n int, name func(int) string) (map[string]int, error) {
	idx := make(map[string]int, n)
	for i := 0; i < n; i++ {
		key := name(i)
		if _, ok := idx[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, key)
		}
		idx[key] = i
	}

	return idx, nil
}

func resolve(refs []Ref, names map[string]int) ([]int, error) {
	out := make([]int, len(refs))
	for k, r := range refs {
		if r.Name == "" {
			out[k] = r.Index
			continue
		}
		i, ok := names[r.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownName, r.Name)
		}
		out[k] = i
	}

	return out, nil
}

// Example returns the reference instance: three participants, three
// single-seat projects, project j1 refusing unlisted participants.
func Example() *Document {
	refs := func(idx ...int) []Ref {
		out := make([]Ref, len(idx))
		for k, i := range idx {
			out[k] = Ref{Index: i}
		}
		return out
	}

	return &Document{
		Participants: []Participant{
			{Prefers: refs(0, 1, 2)},
			{Prefers: refs(2, 0, 1)},
			{Prefers: refs(1, 0, 2)},
		},
		Projects: []Project{
			{Capacity: 1, AcceptsUnlisted: true, Prefers: refs(0, 1)},
			{Capacity: 1, AcceptsUnlisted: false, Prefers: refs(2, 0)},
			{Capacity: 1, AcceptsUnlisted: true, Prefers: refs(1, 0)},
		},
	}
}
