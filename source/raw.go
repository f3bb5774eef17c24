package source

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces one raw value per call. Implementations are memoryless:
// a value never depends on whether earlier values were accepted.
type Generator[T any] interface {
	Generate() T
}

// Func adapts a plain function to Generator.
type Func[T any] func() T

// Generate calls f.
func (f Func[T]) Generate() T { return f() }

// Cycle returns a generator that replays values in order, forever.
// It panics on an empty list.
func Cycle[T any](values ...T) Generator[T] {
	if len(values) == 0 {
		panic("source: Cycle()")
	}
	vs := append([]T(nil), values...)
	i := 0

	return Func[T](func() T {
		v := vs[i%len(vs)]
		i++
		return v
	})
}

// UniformInt draws integers uniformly from [min, max).
type UniformInt struct {
	stream   Stream
	min, max int
}

// NewUniformInt requires min < max.
func NewUniformInt(stream Stream, min, max int) (*UniformInt, error) {
	if stream == nil {
		return nil, fmt.Errorf("NewUniformInt: %w", ErrNilStream)
	}
	if min >= max {
		return nil, fmt.Errorf("NewUniformInt: [%d, %d): %w", min, max, ErrBadParameter)
	}

	return &UniformInt{stream: stream, min: min, max: max}, nil
}

// Generate returns the next draw.
func (g *UniformInt) Generate() int { return g.stream.IntRange(g.min, g.max) }

// Bounds returns the half-open domain.
func (g *UniformInt) Bounds() (min, max int) { return g.min, g.max }

// UniformFloat draws floats uniformly from [min, max).
type UniformFloat struct {
	stream   Stream
	min, max float64
}

// NewUniformFloat requires finite min < max.
func NewUniformFloat(stream Stream, min, max float64) (*UniformFloat, error) {
	if stream == nil {
		return nil, fmt.Errorf("NewUniformFloat: %w", ErrNilStream)
	}
	if !finite(min) || !finite(max) || min >= max {
		return nil, fmt.Errorf("NewUniformFloat: [%v, %v): %w", min, max, ErrBadParameter)
	}

	return &UniformFloat{stream: stream, min: min, max: max}, nil
}

// Generate returns the next draw.
func (g *UniformFloat) Generate() float64 { return g.stream.FloatRange(g.min, g.max) }

// Bounds returns the half-open domain.
func (g *UniformFloat) Bounds() (min, max float64) { return g.min, g.max }

// Coin returns true with a fixed probability.
type Coin struct {
	stream Stream
	chance float64
}

// NewCoin requires chance in [0, 1].
func NewCoin(stream Stream, chance float64) (*Coin, error) {
	if stream == nil {
		return nil, fmt.Errorf("NewCoin: %w", ErrNilStream)
	}
	if !(chance >= 0 && chance <= 1) {
		return nil, fmt.Errorf("NewCoin: chance=%v: %w", chance, ErrBadParameter)
	}

	return &Coin{stream: stream, chance: chance}, nil
}

// Generate flips the coin.
func (g *Coin) Generate() bool { return g.stream.Bool(g.chance) }

// Chance returns the probability of true.
func (g *Coin) Chance() float64 { return g.chance }

// Gaussian draws normally distributed floats. Values are not clamped.
type Gaussian struct {
	dist distuv.Normal
}

// NewGaussian requires a finite mean and a positive, finite stddev. The
// stream is the distribution's uniform source.
func NewGaussian(stream Stream, mean, stddev float64) (*Gaussian, error) {
	if stream == nil {
		return nil, fmt.Errorf("NewGaussian: %w", ErrNilStream)
	}
	if !finite(mean) || !finite(stddev) || stddev <= 0 {
		return nil, fmt.Errorf("NewGaussian: mean=%v stddev=%v: %w", mean, stddev, ErrBadParameter)
	}

	return &Gaussian{dist: distuv.Normal{Mu: mean, Sigma: stddev, Src: stream}}, nil
}

// Generate returns the next draw.
func (g *Gaussian) Generate() float64 { return g.dist.Rand() }

// Mean returns the distribution mean.
func (g *Gaussian) Mean() float64 { return g.dist.Mu }

// StdDev returns the standard deviation.
func (g *Gaussian) StdDev() float64 { return g.dist.Sigma }

// Domain returns mean ± k standard deviations.
func (g *Gaussian) Domain(k float64) (min, max float64) {
	return g.dist.Mu - k*g.dist.Sigma, g.dist.Mu + k*g.dist.Sigma
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
