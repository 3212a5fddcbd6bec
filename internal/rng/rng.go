package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Source returns a Generator. A deck asks its source for a fresh generator on every shuffle.
type Source func() Generator
