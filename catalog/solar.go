package catalog

import (
	"github.com/ChristopherRabotin/orrery"
)

// Solar returns the solar system: the Sun, planets and some of their moons, the largest
// asteroids and a few dwarf planets.
func Solar() File {
	return File{Name: "Sol", Bodies: append([]Definition(nil), solar...)}
}

// SolarSystem builds the solar system with the provided configuration.
func SolarSystem(conf orrery.Config) (*orrery.System, error) {
	return Solar().System(conf)
}

/* Definitions */

var solar = []Definition{
	// Sol is our closest star.
	{Name: "Sol", Category: "star", Radius: 696000e3, Mass: 1.9891e30, Color: "yellow"},

	{Name: "Mercury", Parent: "Sol", Category: "planet", Radius: 2439.7e3, Mass: 3.3011e23, SMA: 57909050e3, Inc: 6.35, Ecc: 0.205, TA: 210, RAAN: 48.331, ArgPeri: 29.124, Color: "sienna"},
	{Name: "Venus", Parent: "Sol", Category: "planet", Radius: 6051.8e3, Mass: 4.8675e24, SMA: 108.209e9, Inc: 3.395, Ecc: 0.0067, TA: 270, RAAN: 54, ArgPeri: 54, Color: "darkorange"},

	// Earth is home.
	{Name: "Earth", Parent: "Sol", Category: "planet", Radius: 6371e3, Mass: 5.9724e24, SMA: 149.6e9, Inc: 1.578690, Ecc: 0.0167086, TA: 10, RAAN: 174.873, ArgPeri: 288.1, Color: "royalblue"},
	{Name: "Luna", Parent: "Earth", Category: "moon", Radius: 1737.1e3, Mass: 0.07346e24, SMA: .3844e9, Inc: 5.145, Color: "grey"},

	{Name: "Mars", Parent: "Sol", Category: "planet", Radius: 3389.5e3, Mass: 6.39e23, SMA: 227.923e9, Inc: 1.851, Ecc: .0935, TA: 80, RAAN: 5, ArgPeri: 6, Color: "firebrick"},
	{Name: "Phobos", Parent: "Mars", Category: "moon", Radius: 11.267e3, Mass: 10.6e15, SMA: 9375e3, Inc: 1.1, Ecc: 0.015, TA: 70, RAAN: 280, ArgPeri: 44, Color: "tan"},
	{Name: "Deimos", Parent: "Mars", Category: "moon", Radius: 6.2e3, Mass: 1.5e15, SMA: 23458e3, Inc: 1.8, TA: 300, RAAN: 180, ArgPeri: 200, Color: "wheat"},

	// Main belt
	{Name: "Vesta", Parent: "Sol", Category: "asteroid", Radius: 262.7e3, Mass: 2.589e20, SMA: 353.319e9, Inc: 5.58, Ecc: .08874, TA: 144, RAAN: 103.85, ArgPeri: 151.198, Color: "slategrey"},
	{Name: "Ceres", Parent: "Sol", Category: "dwarf planet", Radius: 473e3, Mass: 9.3835e20, SMA: 414261e6, Inc: 9.2, Ecc: 0.079009, TA: 210, RAAN: 80.305, ArgPeri: 73.597, Color: "darkcyan"},
	{Name: "Pallas", Parent: "Sol", Category: "asteroid", Radius: 272.5e3, Mass: 2.04e20, SMA: 414960772.18583e3, Inc: 34.43, Ecc: .2299, TA: 180.1, RAAN: 173.024, ArgPeri: 310.202, Color: "aquamarine"},
	{Name: "Hygiea", Parent: "Sol", Category: "asteroid", Radius: 222e3, Mass: 8.32e19, SMA: 469961711e3, Inc: 3.8316, Ecc: .1125, TA: 200, RAAN: 283.2, ArgPeri: 312.32, Color: "peru"},

	// Giants
	{Name: "Jupiter", Parent: "Sol", Category: "planet", Radius: 69911e3, Mass: 1.8982e27, SMA: 778567158e3, Inc: .32, Ecc: 0.04, TA: 77, RAAN: 100.464, ArgPeri: 273.867, Color: "orange"},
	{Name: "Saturn", Parent: "Sol", Category: "planet", Radius: 58232e3, Mass: 5.6834e26, SMA: 1.433537e12, Inc: 0.93, Ecc: 0.0565, TA: 190, RAAN: 113.665, ArgPeri: 339.392, Color: "navajowhite"},
	{Name: "Uranus", Parent: "Sol", Category: "planet", Radius: 25362e3, Mass: 8.6810e25, SMA: 2875046678e3, Inc: 0.99, Ecc: 0.046, TA: 235, RAAN: 74.006, ArgPeri: 96.998, Color: "lightsteelblue"},
	{Name: "Neptune", Parent: "Sol", Category: "planet", Radius: 24622e3, Mass: 1.02413e26, SMA: 4.49841e12, Inc: 0.74, TA: 300, RAAN: 131.784, ArgPeri: 276.336, Color: "blue"},

	// Pluto and its moons, on retrograde orbits with respect to the ecliptic.
	{Name: "Pluto", Parent: "Sol", Category: "dwarf planet", Radius: 1188.3e3, Mass: 1.309e22, SMA: 5.906423e12, Inc: 17.16, Ecc: 0.2488, TA: 163, RAAN: 110.299, ArgPeri: 113.834, Color: "cadetblue"},
	{Name: "Charon", Parent: "Pluto", Category: "moon", Radius: 606e3, Mass: 1.586e21, SMA: 19591.4e3, Inc: 112.783, TA: 64, RAAN: 223.046, Color: "mediumorchid"},
	{Name: "Nix", Parent: "Pluto", Category: "moon", Radius: 49.8e3, Mass: 4.5e16, SMA: 48694e3, Inc: 115.783, TA: 64, RAAN: 223, ArgPeri: 11, Color: "lightgreen"},
	{Name: "Hydra", Parent: "Pluto", Category: "moon", Radius: 50.9e3, Mass: 4.8e16, SMA: 64738e3, Inc: 110, TA: 224, RAAN: 224, ArgPeri: 8, Color: "seagreen"},
	{Name: "Styx", Parent: "Pluto", Category: "moon", Radius: 16e3, Mass: 7.5e15, SMA: 42656e3, Inc: 112, TA: 33, RAAN: 222, ArgPeri: 359, Color: "black"},

	// Trans-Neptunian objects
	{Name: "Sedna", Parent: "Sol", Category: "dwarf planet", Radius: 998e3, Mass: 8.32e21, SMA: 7.57e13, Inc: 11.9307, Ecc: 0.8496, TA: 170, RAAN: 144.248, ArgPeri: 311.352, Color: "pink"},
	{Name: "Eris", Parent: "Sol", Category: "dwarf planet", Radius: 1163e3, Mass: 1.6466e22, SMA: 1.015231e13, Inc: 44.040, Ecc: 0.43607, TA: 200, RAAN: 35.951, ArgPeri: 151.639, Color: "indianred"},
	{Name: "Dysnomia", Parent: "Eris", Category: "moon", Radius: 350e3, Mass: 3.6e20, SMA: 37273e3, Inc: 78.29, TA: 80, RAAN: 126.17, ArgPeri: 89, Color: "yellowgreen"},
	{Name: "Biden", Parent: "Sol", Category: "dwarf planet", Radius: 597e3, Mass: 1.782e21, SMA: 6.5246064e13, Inc: 24.110, Ecc: 0.68876, TA: 200, RAAN: 90.680, ArgPeri: 293.62, Color: "dodgerblue"},
	{Name: "Leleakuhonua", Parent: "Sol", Category: "dwarf planet", Radius: 100e3, Mass: 8.38e18, SMA: 1.6231e14, Inc: 11.654, Ecc: 0.9399, TA: 190, RAAN: 300.78, ArgPeri: 117.778, Color: "teal"},
	{Name: "Orcus", Parent: "Sol", Category: "dwarf planet", Radius: 910e3, Mass: 6.348e20, SMA: 5.860347e12, Inc: 20.592, Ecc: 0.22701, TA: 85, RAAN: 268.799, ArgPeri: 72.310, Color: "maroon"},
	{Name: "Vanth", Parent: "Orcus", Category: "moon", Radius: 442.5e3, Mass: 4.2e19, SMA: 8999.8e3, Inc: 105.03, TA: 2, Color: "green"},
}
