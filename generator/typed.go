package generator

import (
	"fmt"

	"github.com/katalvlaran/fairrand/catalog"
	"github.com/katalvlaran/fairrand/source"
)

// GaussianSpread is the number of standard deviations on each side of the
// mean that form a Gaussian generator's filter domain. Values outside it
// are still produced; percentage predicates simply place them below 0 or
// above 1.
const GaussianSpread = 3.0

// NewBool returns a fair-coin generator filtered by catalog.Bool.
func NewBool(stream source.Stream, opts ...Option) (*Generator[bool], error) {
	if stream == nil {
		return nil, fmt.Errorf("NewBool: %w", ErrNeedRandSource)
	}
	coin, err := source.NewCoin(stream, 0.5)
	if err != nil {
		return nil, fmt.Errorf("NewBool: %w", err)
	}

	return newGenerator[bool](coin, "bool", catalog.Bool(), opts)
}

// NewInt returns a generator of integers in [min, max) filtered by
// catalog.Int, with the filter bound to that domain.
func NewInt(stream source.Stream, min, max int, opts ...Option) (*Generator[int], error) {
	if stream == nil {
		return nil, fmt.Errorf("NewInt: %w", ErrNeedRandSource)
	}
	raw, err := source.NewUniformInt(stream, min, max)
	if err != nil {
		return nil, fmt.Errorf("NewInt: %w", err)
	}
	g, err := newGenerator[int](raw, "int", catalog.Int(), opts)
	if err != nil {
		return nil, fmt.Errorf("NewInt: %w", err)
	}
	if err := g.SetRange(min, max); err != nil {
		return nil, fmt.Errorf("NewInt: %w", err)
	}

	return g, nil
}

// NewFloat returns a generator of floats in [min, max) filtered by
// catalog.Float, with the filter bound to that domain.
func NewFloat(stream source.Stream, min, max float64, opts ...Option) (*Generator[float64], error) {
	if stream == nil {
		return nil, fmt.Errorf("NewFloat: %w", ErrNeedRandSource)
	}
	raw, err := source.NewUniformFloat(stream, min, max)
	if err != nil {
		return nil, fmt.Errorf("NewFloat: %w", err)
	}
	g, err := newGenerator[float64](raw, "float", catalog.Float(), opts)
	if err != nil {
		return nil, fmt.Errorf("NewFloat: %w", err)
	}
	if err := g.SetRange(min, max); err != nil {
		return nil, fmt.Errorf("NewFloat: %w", err)
	}

	return g, nil
}

// NewGaussian returns a normally distributed generator filtered by
// catalog.Gaussian. The filter domain is mean ± GaussianSpread·stddev.
func NewGaussian(stream source.Stream, mean, stddev float64, opts ...Option) (*Generator[float64], error) {
	if stream == nil {
		return nil, fmt.Errorf("NewGaussian: %w", ErrNeedRandSource)
	}
	raw, err := source.NewGaussian(stream, mean, stddev)
	if err != nil {
		return nil, fmt.Errorf("NewGaussian: %w", err)
	}
	g, err := newGenerator[float64](raw, "gaussian", catalog.Gaussian(), opts)
	if err != nil {
		return nil, fmt.Errorf("NewGaussian: %w", err)
	}
	lo, hi := raw.Domain(GaussianSpread)
	if err := g.SetRange(lo, hi); err != nil {
		return nil, fmt.Errorf("NewGaussian: %w", err)
	}

	return g, nil
}
