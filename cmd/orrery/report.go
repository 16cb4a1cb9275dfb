package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/ChristopherRabotin/orrery"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))

// printCensus writes the number of bodies of each category.
func printCensus(w io.Writer, s *orrery.System) error {
	root, err := s.Root()
	if err != nil {
		return err
	}
	count, err := s.Census(root)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("=== %s System ===", s.Name)))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	total := 0
	for _, c := range orrery.Categories {
		if count[c] == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s:\t%d\n", c, count[c])
		total += count[c]
	}
	fmt.Fprintf(tw, "\nTotal Bodies:\t%d\n", total)
	return tw.Flush()
}

// printRadius plots the distance of a body to its parent over one period, and its derived quantities.
func printRadius(w io.Writer, s *orrery.System, name string, resolution, height int) error {
	id, err := s.Lookup(name)
	if err != nil {
		return err
	}
	b, _ := s.Body(id)
	if b.IsRoot() {
		return fmt.Errorf("%s is the root of the system and has no orbit", name)
	}
	track, err := s.GenerateOrbit(id, resolution)
	if err != nil {
		return err
	}
	radii := track.Radii()
	for i := range radii {
		radii[i] /= 1e3
	}
	fmt.Fprintln(w, titleStyle.Render(b.String()))
	fmt.Fprintln(w, asciigraph.Plot(radii, asciigraph.Height(height), asciigraph.Width(72), asciigraph.Caption("distance to parent (km) over one period")))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "μ\t%.6e m^3/s^2\n", s.GM(id))
	fmt.Fprintf(tw, "h\t%.6e m^2/s\n", s.AngularMomentum(id))
	fmt.Fprintf(tw, "T\t%.6e s\t(%.2f days)\n", s.Period(id), s.Period(id)/(24*time.Hour).Seconds())
	fmt.Fprintf(tw, "SOI\t%.6e m\n", s.SOI(id))
	return tw.Flush()
}

// printBounds writes the half-size of the box containing the whole system.
func printBounds(w io.Writer, s *orrery.System, resolution int) error {
	root, err := s.Root()
	if err != nil {
		return err
	}
	bounds, err := s.Bounds(root, resolution)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s System bounds", s.Name)))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, axis := range []string{"x", "y", "z"} {
		fmt.Fprintf(tw, "%s\t±%.6e m\t(%.3f AU)\n", axis, bounds[i], bounds[i]/orrery.AU)
	}
	return tw.Flush()
}
