package orrery

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

const (
	// G is the gravitational constant in N.m^2/kg^2.
	G = 6.67408e-11
	// AU is the astronomical unit in meters.
	AU = 1.495978707e11
	// InfiniteSOI is the sphere of influence of a root body, in meters.
	InfiniteSOI = 9e29
)

// Category tags a body for renderers (e.g. marker shape and size). It plays no role in propagation.
type Category uint8

const (
	// Star is the center of a system.
	Star Category = iota
	// Planet orbits a star.
	Planet
	// DwarfPlanet did not clear its neighborhood.
	DwarfPlanet
	// Moon orbits anything but a star.
	Moon
	// Asteroid is a minor body.
	Asteroid
)

func (c Category) String() string {
	switch c {
	case Star:
		return "Star"
	case Planet:
		return "Planet"
	case DwarfPlanet:
		return "DwarfPlanet"
	case Moon:
		return "Moon"
	case Asteroid:
		return "Asteroid"
	}
	return fmt.Sprintf("Category(%d)", c)
}

// Categories lists all known categories, in declaration order.
var Categories = []Category{Star, Planet, DwarfPlanet, Moon, Asteroid}

// ParseCategory returns the category from its name (case and separator insensitive).
func ParseCategory(name string) (Category, error) {
	clean := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(name))
	for _, c := range Categories {
		if strings.ToLower(c.String()) == clean {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category '%s'", name)
}

// BodyID is the handle of a body within its System.
type BodyID int

// NoParent is the parent handle of the root body.
const NoParent BodyID = -1

// Body defines a celestial body and its orbit around its parent.
// A body is immutable once added to a System, apart from its children and its cached track.
type Body struct {
	name     string
	category Category
	radius   float64 // Mean radius, informational only
	mass     float64
	color    string
	id       BodyID
	parent   BodyID
	children []BodyID
	orbit    orbit

	lock     sync.Mutex // protects the cached track
	track    Track
	trackRes int
}

// ID returns the handle of this body.
func (b *Body) ID() BodyID { return b.id }

// Name returns the body name.
func (b *Body) Name() string { return b.name }

// Category returns the category of this body.
func (b *Body) Category() Category { return b.category }

// Radius returns the mean radius in meters.
func (b *Body) Radius() float64 { return b.radius }

// Mass returns the mass in kilograms.
func (b *Body) Mass() float64 { return b.mass }

// Color returns the rendering hint of this body.
func (b *Body) Color() string { return b.color }

// Parent returns the parent handle, or NoParent for the root.
func (b *Body) Parent() BodyID { return b.parent }

// IsRoot returns whether this body is the center of its system.
func (b *Body) IsRoot() bool { return b.parent == NoParent }

// Children returns a copy of the children handles, in insertion order.
func (b *Body) Children() []BodyID {
	return append([]BodyID(nil), b.children...)
}

// Elements returns the orbital elements in degrees. Meaningless for the root.
func (b *Body) Elements() Elements {
	return b.orbit.Elements()
}

// String implements the Stringer interface.
func (b *Body) String() string {
	if b.IsRoot() {
		return fmt.Sprintf("%s (%s)", b.name, b.category)
	}
	return fmt.Sprintf("%s (%s) %s", b.name, b.category, b.orbit.Elements())
}

/* Derived quantities. These are cheap, so they are not cached. */

// GM returns μ, the gravitational parameter of the parent of this body (0 for the root).
// Panics if the body is not part of the system.
func (s *System) GM(id BodyID) float64 {
	return s.gm(s.mustBody(id))
}

func (s *System) gm(b *Body) float64 {
	if b.IsRoot() {
		return 0
	}
	return G * s.bodies[b.parent].mass
}

// AngularMomentum returns the norm of the specific angular momentum h (0 for the root).
func (s *System) AngularMomentum(id BodyID) float64 {
	return s.angularMomentum(s.mustBody(id))
}

func (s *System) angularMomentum(b *Body) float64 {
	if b.IsRoot() {
		return 0
	}
	return math.Sqrt(s.gm(b) * b.orbit.a * (1 - b.orbit.e*b.orbit.e))
}

// Period returns the orbital period in seconds (+Inf for the root since it has no orbit).
func (s *System) Period(id BodyID) float64 {
	return s.period(s.mustBody(id))
}

func (s *System) period(b *Body) float64 {
	μ := s.gm(b)
	if μ == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(math.Pow(b.orbit.a, 3)/μ)
}

// PeriodDuration returns the orbital period as a duration. The root returns the largest duration.
func (s *System) PeriodDuration(id BodyID) time.Duration {
	seconds := s.Period(id)
	if math.IsInf(seconds, 1) || seconds*float64(time.Second) > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}

// SOI returns the radius of the sphere of influence in meters (InfiniteSOI for the root).
func (s *System) SOI(id BodyID) float64 {
	b := s.mustBody(id)
	if b.IsRoot() {
		return InfiniteSOI
	}
	return b.orbit.a * math.Pow(b.mass/s.bodies[b.parent].mass, 2/5.)
}
