// Package dice provides the random source games roll with.
package dice

import (
	"fmt"
	"math/rand"
)

// Faces is the number of sides on the die.
const Faces = 6

// Roller produces die values in [1, Faces].
type Roller interface {
	Roll() int
}

// Rand rolls a die using a math/rand generator. It is not safe for concurrent
// use, same as the *rand.Rand it wraps.
type Rand struct {
	r *rand.Rand
}

// New returns a Roller backed by r. Seed r for reproducible games.
func New(r *rand.Rand) *Rand {
	return &Rand{r: r}
}

func (d *Rand) Roll() int {
	return d.r.Intn(Faces) + 1
}

// Sequence is a Roller that returns pre-determined values, in order. It
// panics when it runs out, or when a value isn't a legal roll.
type Sequence []int

func (s *Sequence) Roll() int {
	if len(*s) == 0 {
		panic("dice: sequence exhausted")
	}
	v := (*s)[0]
	*s = (*s)[1:]
	if v < 1 || v > Faces {
		panic(fmt.Sprintf("dice: %d is not a face of the die", v))
	}
	return v
}
