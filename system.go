package orrery

import (
	"context"
	"fmt"
	"runtime"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"golang.org/x/sync/errgroup"
)

// System is an arena of bodies forming a single tree: one root (typically a star) and
// any depth of bodies orbiting it. Bodies are addressed by their BodyID.
// The tree must be fully built before propagation starts: Add and AddRoot are not safe
// for concurrent use with any other method.
type System struct {
	Name          string
	bodies        []*Body
	root          BodyID
	tolerance     float64
	maxIterations int
	logger        kitlog.Logger
	metrics       *Metrics
}

// NewSystem is the same as NewPreciseSystem with the default solver tolerance and iteration cap.
func NewSystem(name string) *System {
	return NewPreciseSystem(name, DefaultTolerance, DefaultMaxIterations)
}

// NewPreciseSystem returns an empty system whose Kepler solver uses the provided tolerance
// (radians) and iteration cap.
func NewPreciseSystem(name string, tolerance float64, maxIterations int) *System {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &System{Name: name, root: NoParent, tolerance: tolerance, maxIterations: maxIterations, logger: kitlog.NewNopLogger()}
}

// SetLogger sets the logger used for propagation records.
func (s *System) SetLogger(logger kitlog.Logger) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	s.logger = kitlog.With(logger, "system", s.Name)
}

// SetMetrics sets where propagation metrics are recorded. Nil disables metrics.
func (s *System) SetMetrics(m *Metrics) {
	s.metrics = m
}

// AddRoot adds the central body of the system. There can only be one.
func (s *System) AddRoot(name string, category Category, radius, mass float64) (BodyID, error) {
	if s.root != NoParent {
		return NoParent, fmt.Errorf("%w: cannot add %s, %s is the root", ErrRootExists, name, s.bodies[s.root].name)
	}
	if err := validateBody(name, radius, mass); err != nil {
		return NoParent, err
	}
	b := &Body{name: name, category: category, radius: radius, mass: mass, id: BodyID(len(s.bodies)), parent: NoParent}
	s.bodies = append(s.bodies, b)
	s.root = b.id
	level.Debug(s.logger).Log("subsys", "system", "root", name, "mass", mass)
	return b.id, nil
}

// Add adds a body orbiting the provided parent, which must already be in the system.
// Angles of the elements are in degrees. The body is rejected if its elements do not
// describe a closed orbit or if its mass or radius is not positive.
func (s *System) Add(name string, parent BodyID, category Category, radius, mass float64, el Elements) (BodyID, error) {
	p, err := s.Body(parent)
	if err != nil {
		return NoParent, fmt.Errorf("parent of %s: %w", name, err)
	}
	if err := validateBody(name, radius, mass); err != nil {
		return NoParent, err
	}
	if err := el.Validate(); err != nil {
		return NoParent, fmt.Errorf("%s: %w", name, err)
	}
	b := &Body{name: name, category: category, radius: radius, mass: mass, id: BodyID(len(s.bodies)), parent: parent, orbit: newOrbit(el)}
	s.bodies = append(s.bodies, b)
	p.children = append(p.children, b.id)
	level.Debug(s.logger).Log("subsys", "system", "body", name, "parent", p.name, "orbit", el)
	return b.id, nil
}

// SetColor sets the rendering hint of a body.
func (s *System) SetColor(id BodyID, color string) error {
	b, err := s.Body(id)
	if err != nil {
		return err
	}
	b.color = color
	return nil
}

func validateBody(name string, radius, mass float64) error {
	if !finite(radius, mass) || mass <= 0 {
		return fmt.Errorf("%w: %s mass must be positive (m=%g)", ErrInvalidBody, name, mass)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: %s radius must be positive (r=%g)", ErrInvalidBody, name, radius)
	}
	return nil
}

// Body returns the body with the provided handle.
func (s *System) Body(id BodyID) (*Body, error) {
	if id < 0 || int(id) >= len(s.bodies) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBody, id)
	}
	return s.bodies[id], nil
}

func (s *System) mustBody(id BodyID) *Body {
	b, err := s.Body(id)
	if err != nil {
		panic(err)
	}
	return b
}

// Root returns the handle of the central body.
func (s *System) Root() (BodyID, error) {
	if s.root == NoParent {
		return NoParent, ErrNoRoot
	}
	return s.root, nil
}

// Lookup returns the handle of the first body with the provided name.
func (s *System) Lookup(name string) (BodyID, error) {
	for _, b := range s.bodies {
		if b.name == name {
			return b.id, nil
		}
	}
	return NoParent, fmt.Errorf("%w: '%s'", ErrUnknownBody, name)
}

// Len returns the number of bodies in the system.
func (s *System) Len() int {
	return len(s.bodies)
}

// Children returns the handles of the bodies directly orbiting id, in insertion order.
func (s *System) Children(id BodyID) ([]BodyID, error) {
	b, err := s.Body(id)
	if err != nil {
		return nil, err
	}
	return b.Children(), nil
}

// Walk calls fn on id and all its descendants, depth first and in insertion order.
// Walking stops at the first error returned by fn.
func (s *System) Walk(id BodyID, fn func(b *Body, depth int) error) error {
	b, err := s.Body(id)
	if err != nil {
		return err
	}
	return s.walk(b, 0, fn)
}

func (s *System) walk(b *Body, depth int, fn func(b *Body, depth int) error) error {
	if err := fn(b, depth); err != nil {
		return err
	}
	for _, child := range b.children {
		if err := s.walk(s.bodies[child], depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Census returns the number of bodies of each category in the subtree of id (included).
func (s *System) Census(id BodyID) (map[Category]int, error) {
	count := make(map[Category]int)
	err := s.Walk(id, func(b *Body, _ int) error {
		count[b.category]++
		return nil
	})
	return count, err
}

// Solver returns the Kepler solver of a body orbit.
func (s *System) Solver(id BodyID) (KeplerSolver, error) {
	b, err := s.Body(id)
	if err != nil {
		return KeplerSolver{}, err
	}
	if b.IsRoot() {
		return KeplerSolver{}, fmt.Errorf("%w: %s is the root and has no orbit", ErrInvalidElements, b.name)
	}
	return s.solver(b), nil
}

func (s *System) solver(b *Body) KeplerSolver {
	return NewKeplerSolver(b.orbit.e, b.orbit.a, s.gm(b), b.orbit.ν).Precise(s.tolerance, s.maxIterations)
}

// PropagateAll generates the orbit of every body at the provided resolution, in parallel.
// Each body caches its own track, so later calls to GenerateOrbit, Offset or Absolute with
// the same resolution do not recompute anything. The first error cancels the remaining bodies.
func (s *System) PropagateAll(ctx context.Context, resolution int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, b := range s.bodies {
		id := b.id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := s.GenerateOrbit(id, resolution)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	level.Info(s.logger).Log("subsys", "prop", "message", "system propagated", "bodies", len(s.bodies), "resolution", resolution)
	return nil
}
