package calc

// dimension is one of the base physical dimensions.
type dimension int

const (
	dimLength dimension = iota
	dimMass
	dimTime
	dimCurrent
	dimTemperature
	dimAmount
	dimLuminosity
	dimInformation

	numDims
)

// unitDef is a named unit. A quantity of one unit is scale base units of its
// dimension.
type unitDef struct {
	name  string
	dims  [numDims]int8
	scale Real
	// attach is true for units written directly after the number, as in 50%.
	attach bool
}

func scaleOf(n, d int64) Real {
	return realRat(ratFrac(n, d))
}

var (
	unitMeter = &unitDef{name: "m", dims: [numDims]int8{dimLength: 1}, scale: scaleOf(1, 1)}
	unitGram  = &unitDef{name: "g", dims: [numDims]int8{dimMass: 1}, scale: scaleOf(1, 1000)}
	unitSec   = &unitDef{name: "s", dims: [numDims]int8{dimTime: 1}, scale: scaleOf(1, 1)}
	unitByte  = &unitDef{name: "byte", dims: [numDims]int8{dimInformation: 1}, scale: scaleOf(8, 1)}

	unitNewton = &unitDef{name: "N", dims: [numDims]int8{dimMass: 1, dimLength: 1, dimTime: -2}, scale: scaleOf(1, 1)}
	unitJoule  = &unitDef{name: "J", dims: [numDims]int8{dimMass: 1, dimLength: 2, dimTime: -2}, scale: scaleOf(1, 1)}
	unitWatt   = &unitDef{name: "W", dims: [numDims]int8{dimMass: 1, dimLength: 2, dimTime: -3}, scale: scaleOf(1, 1)}
	unitPascal = &unitDef{name: "Pa", dims: [numDims]int8{dimMass: 1, dimLength: -1, dimTime: -2}, scale: scaleOf(1, 1)}
	unitHertz  = &unitDef{name: "Hz", dims: [numDims]int8{dimTime: -1}, scale: scaleOf(1, 1)}
)

// canonicalUnits are preferred for products of several units with the same
// dimensions.
var canonicalUnits = []*unitDef{unitNewton, unitJoule, unitWatt, unitPascal, unitHertz}

func scaled(name string, u *unitDef, n, d int64) *unitDef {
	s, _ := u.scale.coef.mul(ratFrac(n, d), nil)
	return &unitDef{name: name, dims: u.dims, scale: realRat(s)}
}

// units maps every recognized unit name and alias to its definition.
var units = func() map[string]*unitDef {
	liter := &unitDef{name: "L", dims: [numDims]int8{dimLength: 3}, scale: scaleOf(1, 1000)}
	pound := scaled("lb", unitGram, 45359237, 100000)
	defs := []struct {
		u       *unitDef
		aliases []string
	}{
		{unitMeter, []string{"meter", "meters", "metre", "metres"}},
		{scaled("cm", unitMeter, 1, 100), []string{"centimeter", "centimeters", "centimetre", "centimetres"}},
		{scaled("mm", unitMeter, 1, 1000), []string{"millimeter", "millimeters", "millimetre", "millimetres"}},
		{scaled("km", unitMeter, 1000, 1), []string{"kilometer", "kilometers", "kilometre", "kilometres"}},
		{scaled("in", unitMeter, 127, 5000), []string{"inch", "inches"}},
		{scaled("ft", unitMeter, 381, 1250), []string{"foot", "feet"}},
		{scaled("yd", unitMeter, 1143, 1250), []string{"yard", "yards"}},
		{scaled("mi", unitMeter, 201168, 125), []string{"mile", "miles"}},

		{unitGram, []string{"gram", "grams"}},
		{scaled("kg", unitGram, 1000, 1), []string{"kilogram", "kilograms"}},
		{scaled("mg", unitGram, 1, 1000), []string{"milligram", "milligrams"}},
		{pound, []string{"lbs", "pound", "pounds"}},
		{scaled("oz", pound, 1, 16), []string{"ounce", "ounces"}},

		{unitSec, []string{"sec", "second", "seconds"}},
		{scaled("ms", unitSec, 1, 1000), []string{"millisecond", "milliseconds"}},
		{scaled("min", unitSec, 60, 1), []string{"minute", "minutes"}},
		{scaled("h", unitSec, 3600, 1), []string{"hr", "hour", "hours"}},
		{scaled("day", unitSec, 86400, 1), []string{"days"}},
		{scaled("week", unitSec, 604800, 1), []string{"weeks"}},

		{&unitDef{name: "A", dims: [numDims]int8{dimCurrent: 1}, scale: scaleOf(1, 1)}, []string{"ampere", "amperes", "amp", "amps"}},
		{&unitDef{name: "K", dims: [numDims]int8{dimTemperature: 1}, scale: scaleOf(1, 1)}, []string{"kelvin"}},
		{&unitDef{name: "mol", dims: [numDims]int8{dimAmount: 1}, scale: scaleOf(1, 1)}, []string{"mole", "moles"}},
		{&unitDef{name: "cd", dims: [numDims]int8{dimLuminosity: 1}, scale: scaleOf(1, 1)}, []string{"candela"}},

		{&unitDef{name: "bit", dims: [numDims]int8{dimInformation: 1}, scale: scaleOf(1, 1)}, []string{"bits"}},
		{unitByte, []string{"B", "bytes"}},
		{scaled("kB", unitByte, 1000, 1), []string{"kilobyte", "kilobytes"}},
		{scaled("MB", unitByte, 1000000, 1), []string{"megabyte", "megabytes"}},

		{liter, []string{"l", "liter", "liters", "litre", "litres"}},
		{scaled("mL", liter, 1, 1000), []string{"ml", "milliliter", "milliliters", "millilitre", "millilitres"}},

		{unitNewton, []string{"newton", "newtons"}},
		{unitJoule, []string{"joule", "joules"}},
		{unitWatt, []string{"watt", "watts"}},
		{unitPascal, []string{"pascal", "pascals"}},
		{unitHertz, []string{"hertz"}},

		{&unitDef{name: "rad", scale: scaleOf(1, 1)}, []string{"radian", "radians"}},
		{&unitDef{name: "°", scale: piTimes(ratFrac(1, 180)), attach: true}, []string{"deg", "degree", "degrees"}},
		{&unitDef{name: "%", scale: scaleOf(1, 100), attach: true}, []string{"percent"}},
	}
	m := make(map[string]*unitDef)
	for _, d := range defs {
		m[d.u.name] = d.u
		for _, a := range d.aliases {
			m[a] = d.u
		}
	}
	return m
}()

// dimensionless reports whether the unit has no physical dimension.
func (u *unitDef) dimensionless() bool {
	return u.dims == [numDims]int8{}
}
