package duo

import "math/rand"

// lcg is a Lehmer linear-congruential generator (multiplier 16807 modulo
// 2^31-1). It is deliberately hand-rolled so the deterministic narrative
// selection stays stable across Go releases and across reimplementations.
type lcg struct {
	state int64
}

const (
	lcgModulus    = 2147483647
	lcgMultiplier = 16807
)

func newLCG(seed int64) *lcg {
	state := seed % lcgModulus
	if state <= 0 {
		state += lcgModulus - 1
	}
	return &lcg{state: state}
}

// next returns a float in [0, 1).
func (g *lcg) next() float64 {
	g.state = (g.state * lcgMultiplier) % lcgModulus
	return float64(g.state-1) / float64(lcgModulus-1)
}

// shuffleRoasts Fisher-Yates shuffles a copy of the list. A non-negative
// seed gives a reproducible order; a negative seed uses true randomness for
// one-off "fresh" rerolls.
func shuffleRoasts(list []Roast, seed int64) []Roast {
	out := make([]Roast, len(list))
	copy(out, list)

	random := rand.Float64
	if seed >= 0 {
		g := newLCG(seed)
		random = g.next
	}

	for i := len(out) - 1; i > 0; i-- {
		j := int(random() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// pickIndex selects a deterministic index into a list of variants, or a
// random one when seed is negative.
func pickIndex(count int, seed int64) int {
	if count <= 0 {
		return 0
	}
	if seed < 0 {
		return rand.Intn(count)
	}
	index := seed % int64(count)
	if index < 0 {
		index = -index
	}
	return int(index)
}
