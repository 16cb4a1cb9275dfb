// Package catalog builds systems of bodies from definitions, either from YAML system
// files or from the built-in solar system.
package catalog

import (
	"os"

	"github.com/ChristopherRabotin/orrery"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Definition describes one body. Distances are in meters, masses in kilograms and
// angles in degrees. The orbital elements of the root (no parent) are ignored.
type Definition struct {
	Name     string  `yaml:"name"`
	Parent   string  `yaml:"parent,omitempty"`
	Category string  `yaml:"category"`
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	SMA      float64 `yaml:"sma,omitempty"`
	Ecc      float64 `yaml:"ecc,omitempty"`
	Inc      float64 `yaml:"inc,omitempty"`
	TA       float64 `yaml:"ta,omitempty"`
	RAAN     float64 `yaml:"raan,omitempty"`
	ArgPeri  float64 `yaml:"argp,omitempty"`
	Color    string  `yaml:"color,omitempty"`
}

// Elements returns the orbital elements of this definition.
func (d Definition) Elements() orrery.Elements {
	return orrery.Elements{SMA: d.SMA, Ecc: d.Ecc, Inc: d.Inc, TrueAnomaly: d.TA, RAAN: d.RAAN, ArgPeri: d.ArgPeri}
}

// File is the content of a system file.
type File struct {
	Name   string       `yaml:"name"`
	Bodies []Definition `yaml:"bodies"`
}

// Parse decodes a YAML system file.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, errors.Wrap(err, "decoding system file")
	}
	if len(f.Bodies) == 0 {
		return File{}, errors.New("system file defines no bodies")
	}
	return f, nil
}

// Load reads and decodes the YAML system file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "reading %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, errors.Wrapf(err, "loading %s", path)
	}
	return f, nil
}

// Marshal encodes the file in YAML.
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// System builds the system with the solver settings of conf. Bodies must be defined
// after their parent, and the first body without a parent is the root.
func (f File) System(conf orrery.Config) (*orrery.System, error) {
	s := conf.NewSystem(f.Name)
	if err := Build(s, f.Bodies); err != nil {
		return nil, errors.Wrapf(err, "building %s", f.Name)
	}
	return s, nil
}

// Build adds the definitions to an existing system, in order.
func Build(s *orrery.System, defs []Definition) error {
	for _, d := range defs {
		cat, err := orrery.ParseCategory(d.Category)
		if err != nil {
			return errors.Wrapf(err, "body %s", d.Name)
		}
		var id orrery.BodyID
		if d.Parent == "" {
			id, err = s.AddRoot(d.Name, cat, d.Radius, d.Mass)
		} else {
			parent, perr := s.Lookup(d.Parent)
			if perr != nil {
				return errors.Wrapf(perr, "parent of %s (parents must be defined first)", d.Name)
			}
			id, err = s.Add(d.Name, parent, cat, d.Radius, d.Mass, d.Elements())
		}
		if err != nil {
			return errors.Wrapf(err, "body %s", d.Name)
		}
		if d.Color != "" {
			if err := s.SetColor(id, d.Color); err != nil {
				return err
			}
		}
	}
	return nil
}
