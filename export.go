package orrery

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ExportConfig configures the export of a propagated system.
type ExportConfig struct {
	Dir       string    // Output directory, created if needed
	Filename  string    // Common part of all file names
	Timestamp bool      // Whether to stamp file names with the creation time
	Epoch     time.Time // Epoch of the orbital elements, written in the headers
}

// IsUseless returns whether this config would not lead to any output.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

func (c ExportConfig) path(prefix, suffix, ext string) string {
	name := fmt.Sprintf("%s-%s", prefix, c.Filename)
	if suffix != "" {
		name += "-" + suffix
	}
	if c.Timestamp {
		t := time.Now()
		name += fmt.Sprintf("-%d-%02d-%02dT%02d.%02d.%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	return filepath.Join(c.Dir, name+"."+ext)
}

// BodySummary lists the derived quantities of a body, as exported in the catalog file.
type BodySummary struct {
	Name     string  `json:"name"`
	Parent   string  `json:"parent,omitempty"`
	Category string  `json:"category"`
	Color    string  `json:"color,omitempty"`
	Mass     float64 `json:"mass"`
	Radius   float64 `json:"radius"`
	GM       float64 `json:"mu"`
	H        float64 `json:"h,omitempty"`
	Period   float64 `json:"period,omitempty"` // Omitted for the root, whose period is infinite
	SOI      float64 `json:"soi"`
	Track    string  `json:"track"`
}

// Summary returns the derived quantities of a body.
func (s *System) Summary(id BodyID) (BodySummary, error) {
	b, err := s.Body(id)
	if err != nil {
		return BodySummary{}, err
	}
	sum := BodySummary{
		Name:     b.name,
		Category: b.category.String(),
		Color:    b.color,
		Mass:     b.mass,
		Radius:   b.radius,
		GM:       s.GM(id),
		H:        s.AngularMomentum(id),
		SOI:      s.SOI(id),
	}
	if !b.IsRoot() {
		sum.Parent = s.bodies[b.parent].name
		sum.Period = s.Period(id)
	}
	return sum, nil
}

// Export writes the track of each body (in the frame of the root) to its own CSV file,
// and the summary of all bodies to a JSON catalog. It returns the paths written.
func Export(s *System, resolution int, conf ExportConfig) ([]string, error) {
	if conf.IsUseless() {
		return nil, nil
	}
	if err := os.MkdirAll(conf.Dir, 0755); err != nil {
		return nil, err
	}
	var written []string
	summaries := make([]BodySummary, 0, s.Len())
	for _, b := range s.bodies {
		sum, err := s.Summary(b.id)
		if err != nil {
			return written, err
		}
		track, err := s.Absolute(b.id, resolution)
		if err != nil {
			return written, err
		}
		path := conf.path("orbit", fileSafe(b.name), "csv")
		if err := writeTrack(path, b, track, conf.Epoch); err != nil {
			return written, err
		}
		written = append(written, path)
		sum.Track = filepath.Base(path)
		summaries = append(summaries, sum)
	}
	path := conf.path("catalog", "", "json")
	err := writeFile(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Name       string        `json:"name"`
			Resolution int           `json:"resolution"`
			Epoch      string        `json:"epoch"`
			EpochJD    float64       `json:"epochJD"`
			Bodies     []BodySummary `json:"bodies"`
		}{s.Name, resolution, conf.Epoch.UTC().Format(time.RFC3339), julian.TimeToJD(conf.Epoch), summaries})
	})
	if err != nil {
		return written, err
	}
	return append(written, path), nil
}

// writeFile creates path and fills it with write. Errors from closing the file are
// reported too since they may hide a failed write.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f)
}

func writeTrack(path string, b *Body, track Track, epoch time.Time) error {
	return writeFile(path, func(f io.Writer) error {
		// Header
		if _, err := fmt.Fprintf(f, `# Creation date (UTC): %s
# Body: %s (%s)
# Records are <x>,<y>,<z> in meters, in the frame of the system root
#   One full period, the first record is the position at epoch
#   Epoch (UTC): %s (JD %f)
`, time.Now().UTC(), b.name, b.category, epoch.UTC(), julian.TimeToJD(epoch)); err != nil {
			return err
		}
		w := csv.NewWriter(f)
		if err := w.Write([]string{"x", "y", "z"}); err != nil {
			return err
		}
		for _, p := range track {
			if err := w.Write([]string{formatMeters(p[0]), formatMeters(p[1]), formatMeters(p[2])}); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
}

func formatMeters(v float64) string {
	if v == 0 {
		// Avoid writing -0.
		v = math.Abs(v)
	}
	return strconv.FormatFloat(v, 'e', 9, 64)
}

func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
