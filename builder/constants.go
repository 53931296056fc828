// SPDX-License-Identifier: MIT

package builder

// Constructor names used as error prefixes.
const (
	methodIndices          = "Indices"
	methodRandomCompressed = "RandomCompressed"
	methodRandomDensity    = "RandomDensity"
	methodRandomVector     = "RandomVector"
	methodRandomDense      = "RandomDense"
)

// Default value range of UniformValues when no ValueFn is configured.
const (
	defaultValueMin = 1.0
	defaultValueMax = 10.0
)

// Panic messages of option constructors.
const (
	panicNilRand      = "builder: WithRand(nil)"
	panicNilValueFn   = "builder: WithValueFn(nil)"
	panicBadRange     = "builder: value range requires min < max"
	panicBadIntRange  = "builder: integer range requires lo <= hi"
	panicNilOptionSet = "builder: nil config"
)
