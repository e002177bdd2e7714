package config

// J2000-epoch body tables, from the NASA JPL Horizons database. Bodies
// start at periapsis (phase 0) unless a phase angle says otherwise;
// moons are authored parent-centric and resolved against their primary at
// setup.

func pint(v int) *int { return &v }

var sun = BodyConfig{
	ID: 0, Name: "Sun", Mass: 1.98892e30, Radius: 6.96340e8,
	Position: &VecConfig{}, Velocity: &VecConfig{},
	TrajectoryCap: 10, // barely moves
}

var mercury = BodyConfig{
	ID: 1, Name: "Mercury", Mass: 3.30114e23, Radius: 2.4397e6,
	Elements: &ElementsConfig{
		SemiMajorAxisAU: 0.387098, Eccentricity: 0.205630,
		InclinationDeg: 7.005, PeriodDays: 87.969,
	},
	TrajectoryCap: 500,
}

var venus = BodyConfig{
	ID: 2, Name: "Venus", Mass: 4.86747e24, Radius: 6.0518e6,
	Elements: &ElementsConfig{
		SemiMajorAxisAU: 0.723332, Eccentricity: 0.006772,
		InclinationDeg: 3.39458, PeriodDays: 224.701,
	},
	TrajectoryCap: 800,
}

var earth = BodyConfig{
	ID: 3, Name: "Earth", Mass: 5.97237e24, Radius: 6.371e6,
	Elements: &ElementsConfig{
		SemiMajorAxisAU: 1.000001018, Eccentricity: 0.0167086,
		InclinationDeg: 0.00005, PeriodDays: 365.256363004,
	},
	TrajectoryCap: 1000,
}

var moon = BodyConfig{
	ID: 31, Name: "Moon", Parent: pint(3), Mass: 7.342e22, Radius: 1.7371e6,
	Elements: &ElementsConfig{
		SemiMajorAxisM: 3.84399e8, Eccentricity: 0.0549,
		InclinationDeg: 5.145, PeriodDays: 27.321661,
	},
	TrajectoryCap: 200,
}

var mars = BodyConfig{
	ID: 4, Name: "Mars", Mass: 6.41712e23, Radius: 3.3895e6,
	Elements: &ElementsConfig{
		SemiMajorAxisAU: 1.523679, Eccentricity: 0.0934,
		InclinationDeg: 1.850, PeriodDays: 686.971,
	},
	TrajectoryCap: 1500,
}

var jupiter = BodyConfig{
	ID: 5, Name: "Jupiter", Mass: 1.89819e27, Radius: 6.9911e7,
	Elements: &ElementsConfig{
		SemiMajorAxisAU: 5.2044, Eccentricity: 0.0489,
		InclinationDeg: 1.303, PeriodDays: 4332.59,
	},
	TrajectoryCap: 2000,
}

// Galilean moons, spread around Jupiter by phase angle.
var io = BodyConfig{
	ID: 51, Name: "Io", Parent: pint(5), Mass: 8.9319e22, Radius: 1.8216e6,
	Elements: &ElementsConfig{
		SemiMajorAxisM: 4.217e8, Eccentricity: 0.0041, PeriodDays: 1.769,
	},
	TrajectoryCap: 100,
}

var europa = BodyConfig{
	ID: 52, Name: "Europa", Parent: pint(5), Mass: 4.7998e22, Radius: 1.5608e6,
	Elements: &ElementsConfig{
		SemiMajorAxisM: 6.711e8, Eccentricity: 0.009, PeriodDays: 3.551,
		PhaseDeg: 180,
	},
	TrajectoryCap: 100,
}

var ganymede = BodyConfig{
	ID: 53, Name: "Ganymede", Parent: pint(5), Mass: 1.4819e23, Radius: 2.6341e6,
	Elements: &ElementsConfig{
		SemiMajorAxisM: 1.0704e9, Eccentricity: 0.0013, PeriodDays: 7.155,
		PhaseDeg: 90,
	},
	TrajectoryCap: 100,
}

var callisto = BodyConfig{
	ID: 54, Name: "Callisto", Parent: pint(5), Mass: 1.0759e23, Radius: 2.4103e6,
	Elements: &ElementsConfig{
		SemiMajorAxisM: 1.8827e9, Eccentricity: 0.0074, PeriodDays: 16.689,
		PhaseDeg: 270,
	},
	TrajectoryCap: 100,
}

var saturn = BodyConfig{
	ID: 6, Name: "Saturn", Mass: 5.6834e26, Radius: 5.8232e7,
	Elements: &ElementsConfig{
		SemiMajorAxisAU: 9.5826, Eccentricity: 0.0565,
		InclinationDeg: 2.485, PeriodDays: 10759.22,
	},
	TrajectoryCap: 2000,
}

var titan = BodyConfig{
	ID: 61, Name: "Titan", Parent: pint(6), Mass: 1.3452e23, Radius: 2.5747e6,
	Elements: &ElementsConfig{
		SemiMajorAxisM: 1.22187e9, Eccentricity: 0.0288, PeriodDays: 15.945,
	},
	TrajectoryCap: 100,
}

var uranus = BodyConfig{
	ID: 7, Name: "Uranus", Mass: 8.6810e25, Radius: 2.5362e7,
	Elements: &ElementsConfig{
		SemiMajorAxisAU: 19.19126, Eccentricity: 0.04717,
		InclinationDeg: 0.773, PeriodDays: 30688.5,
	},
	TrajectoryCap: 2000,
}

var neptune = BodyConfig{
	ID: 8, Name: "Neptune", Mass: 1.02413e26, Radius: 2.4622e7,
	Elements: &ElementsConfig{
		SemiMajorAxisAU: 30.07, Eccentricity: 0.008678,
		InclinationDeg: 1.77, PeriodDays: 60182.0,
	},
	TrajectoryCap: 2000,
}

// Triton's inclination past 90 degrees encodes its retrograde orbit.
var triton = BodyConfig{
	ID: 81, Name: "Triton", Parent: pint(8), Mass: 2.139e22, Radius: 1.3534e6,
	Elements: &ElementsConfig{
		SemiMajorAxisM: 3.5476e8, Eccentricity: 0.000016,
		InclinationDeg: 156.885, PeriodDays: 5.877,
	},
	TrajectoryCap: 100,
}

var pluto = BodyConfig{
	ID: 9, Name: "Pluto", Mass: 1.303e22, Radius: 1.1883e6,
	Elements: &ElementsConfig{
		SemiMajorAxisAU: 39.482, Eccentricity: 0.2488,
		InclinationDeg: 17.16, PeriodDays: 90560.0,
		PhaseDeg: 45,
	},
	TrajectoryCap: 2000,
}

var jupiterPrimary = BodyConfig{
	ID: 5, Name: "Jupiter", Mass: 1.89819e27, Radius: 6.9911e7,
	Position: &VecConfig{}, Velocity: &VecConfig{},
	TrajectoryCap: 10,
}

var Presets = map[string]*Scenario{
	"two-body": {
		Name: "two-body", Dt: 600, DurationYears: 2, SampleEvery: 10,
		Integrator: "verlet",
		Bodies:     []BodyConfig{sun, earth},
	},
	"inner": {
		Name: "inner", Dt: 3600, DurationYears: 2, SampleEvery: 10,
		Integrator: "verlet",
		Bodies:     []BodyConfig{sun, mercury, venus, earth, moon, mars},
	},
	"solar": {
		Name: "solar", Dt: 3600, DurationYears: 5, SampleEvery: 10,
		Integrator: "verlet",
		Bodies: []BodyConfig{
			sun, mercury, venus, earth, moon, mars,
			jupiter, io, europa, ganymede, callisto,
			saturn, titan, uranus, neptune, triton, pluto,
		},
	},
	"jovian": {
		Name: "jovian", Dt: 60, DurationYears: 0.05, SampleEvery: 30,
		Integrator: "verlet",
		Bodies:     []BodyConfig{jupiterPrimary, io, europa, ganymede, callisto},
	},
}

func GetPreset(name string) *Scenario {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
