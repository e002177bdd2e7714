package celestial

// Physical constants (CODATA 2018), SI units throughout.
const (
	// G is the gravitational constant [m³/(kg·s²)].
	G = 6.67430e-11

	// AU is one astronomical unit [m].
	AU = 1.495978707e11

	// Day is the length of a day [s].
	Day = 86400.0

	// Year is a Julian year [s].
	Year = 365.25 * Day
)
