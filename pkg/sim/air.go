// Package sim simulates PMS5003T and PMS3003 sensors on a serial line.
package sim

import (
	"math"
	"math/rand"

	"github.com/robotalks/pms.go/pkg/l0/pms"
)

// Air produces slowly drifting air quality samples.
type Air struct {
	PM25        float64 // µg/m³
	Temperature float64 // °C
	Humidity    float64 // %RH

	rnd *rand.Rand
}

// NewAir creates Air with moderate indoor values.
func NewAir(seed int64) *Air {
	return &Air{
		PM25:        12,
		Temperature: 22.5,
		Humidity:    45,
		rnd:         rand.New(rand.NewSource(seed)),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func saturate(v float64) uint16 {
	return uint16(math.Round(clamp(v, 0, math.MaxUint16)))
}

// Step advances the random walk.
func (a *Air) Step() {
	a.PM25 = clamp(a.PM25+a.rnd.NormFloat64(), 0, 999)
	a.Temperature = clamp(a.Temperature+a.rnd.NormFloat64()*0.1, -40, 99)
	a.Humidity = clamp(a.Humidity+a.rnd.NormFloat64()*0.5, 0, 99.9)
}

// Reading builds a reading of the variant from the current values. The
// ratios between sizes are rough approximations of household dust.
func (a *Air) Reading(v pms.Variant) pms.Reading {
	pm := func(ratio float64) uint16 { return saturate(a.PM25 * ratio) }
	atm := pms.PM{PM1: pm(0.7), PM25: pm(1), PM10: pm(1.3)}
	std := pms.PM{PM1: pm(0.75), PM25: pm(1.08), PM10: pm(1.4)}
	if v == pms.Compact {
		return &pms.CompactReading{Std: std, Atm: atm, Length: pms.CompactLength}
	}
	return &pms.ExtendedReading{
		Std:         std,
		Atm:         atm,
		Count03:     pm(150),
		Count05:     pm(45),
		Count10:     pm(8),
		Count25:     pm(0.6),
		Temperature: int16(math.Round(a.Temperature * 10)),
		Humidity:    uint16(math.Round(a.Humidity * 10)),
		Version:     0x91,
	}
}
