package orrery

import (
	"errors"
	"testing"
)

func TestOffset(t *testing.T) {
	s, sol, earth, luna, probe := newEarthSystem(t)
	res := 60
	for _, id := range []BodyID{sol, earth} {
		offset, err := s.Offset(id, res)
		if err != nil {
			t.Fatal(err)
		}
		if len(offset) != res {
			t.Fatalf("%d samples", len(offset))
		}
		for k := range offset {
			if !vectorsEqual(offset[k], []float64{0, 0, 0}) {
				t.Fatalf("body %d: non zero offset %v", id, offset[k])
			}
		}
	}
	earthTrack, _ := s.GenerateOrbit(earth, res)
	lunaTrack, _ := s.GenerateOrbit(luna, res)
	lunaOffset, err := s.Offset(luna, res)
	if err != nil {
		t.Fatal(err)
	}
	probeOffset, err := s.Offset(probe, res)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < res; k++ {
		if !vectorsEqual(lunaOffset[k], earthTrack[0]) {
			t.Fatalf("Luna offset %d = %v != %v", k, lunaOffset[k], earthTrack[0])
		}
		if !vectorsEqual(probeOffset[k], add(earthTrack[0], lunaTrack[0])) {
			t.Fatalf("probe offset %d = %v", k, probeOffset[k])
		}
	}
	if _, err := s.Offset(luna, 1); !errors.Is(err, ErrResolution) {
		t.Fatalf("expected ErrResolution, got %v", err)
	}
	if _, err := s.Offset(BodyID(-3), res); !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", err)
	}
}

func TestAbsolute(t *testing.T) {
	s, sol, earth, luna, _ := newEarthSystem(t)
	res := 40
	root, err := s.Absolute(sol, res)
	if err != nil {
		t.Fatal(err)
	}
	if len(root) != res || !vectorsEqual(root.MaxAbs(), []float64{0, 0, 0}) {
		t.Fatalf("root absolute track = %v", root)
	}
	earthTrack, _ := s.GenerateOrbit(earth, res)
	lunaTrack, _ := s.GenerateOrbit(luna, res)
	abs, err := s.Absolute(luna, res)
	if err != nil {
		t.Fatal(err)
	}
	for k := range abs {
		if !vectorsEqual(abs[k], add(earthTrack[0], lunaTrack[k])) {
			t.Fatalf("sample %d = %v", k, abs[k])
		}
	}
}

func TestBounds(t *testing.T) {
	s, sol, earth, luna, _ := newEarthSystem(t)
	res := 80
	bounds, err := s.Bounds(sol, res)
	if err != nil {
		t.Fatal(err)
	}
	exp := []float64{0, 0, 0}
	for _, id := range []BodyID{earth, luna} {
		abs, _ := s.Absolute(id, res)
		for j, v := range abs.MaxAbs() {
			if v > bounds[j] {
				t.Fatalf("body %d exceeds bounds on axis %d: %f > %f", id, j, v, bounds[j])
			}
			if v > exp[j] {
				exp[j] = v
			}
		}
	}
	// Earth and Luna dominate the tiny probe orbit in x and y.
	if !vectorsEqual(bounds[:2], exp[:2]) {
		t.Fatalf("bounds %v != %v", bounds, exp)
	}
	if _, err := s.Bounds(sol, 0); !errors.Is(err, ErrResolution) {
		t.Fatalf("expected ErrResolution, got %v", err)
	}
}
