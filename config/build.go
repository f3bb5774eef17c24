package config

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/fairrand/catalog"
	"github.com/katalvlaran/fairrand/generator"
	"github.com/katalvlaran/fairrand/matcher"
	"github.com/katalvlaran/fairrand/source"
)

// Built is a configured stream ready to draw from. Exactly one of Bool, Int
// and Float is set, matching Kind ("gaussian" streams use Float).
type Built struct {
	Name  string
	Kind  string
	Seed  uint64
	Bool  *generator.Generator[bool]
	Int   *generator.Generator[int]
	Float *generator.Generator[float64]
}

// Build constructs every stream in c. Streams without an explicit seed are
// derived from the root seed in declaration order. obs may be nil.
func Build(c Config, log *slog.Logger, obs generator.Observer) ([]*Built, error) {
	root := source.NewRand(c.Seed)
	out := make([]*Built, 0, len(c.Streams))
	for i, s := range c.Streams {
		var stream *source.Rand
		if s.Seed != nil {
			stream = source.NewRand(*s.Seed)
		} else {
			stream = source.Derive(root, uint64(i))
		}

		b, err := buildStream(c, s, stream, log, obs)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, nil
}

func buildStream(c Config, s Stream, stream *source.Rand, log *slog.Logger, obs generator.Observer) (*Built, error) {
	opts := []generator.Option{generator.WithName(s.Name)}
	budget := c.RetryBudget
	if s.RetryBudget > 0 {
		budget = s.RetryBudget
	}
	if budget > 0 {
		opts = append(opts, generator.WithRetryBudget(budget))
	}
	if log != nil {
		opts = append(opts, generator.WithLogger(log.With(slog.String("kind", s.Kind))))
	}
	if obs != nil {
		opts = append(opts, generator.WithObserver(obs))
	}

	b := &Built{Name: s.Name, Kind: s.Kind, Seed: stream.SeedValue()}
	var err error
	switch s.Kind {
	case "bool":
		var protos []matcher.Prototype[bool]
		if protos, err = prototypes(s, catalog.Bool(), boolPattern); err == nil {
			b.Bool, err = generator.NewBool(stream, append(opts, generator.WithPrototypes(protos...))...)
		}
	case "int":
		var protos []matcher.Prototype[int]
		if protos, err = prototypes(s, catalog.Int(), intPattern); err == nil {
			b.Int, err = generator.NewInt(stream, int(s.Min), int(s.Max), append(opts, generator.WithPrototypes(protos...))...)
		}
	case "float":
		var protos []matcher.Prototype[float64]
		if protos, err = prototypes(s, catalog.Float(), floatPattern); err == nil {
			b.Float, err = generator.NewFloat(stream, s.Min, s.Max, append(opts, generator.WithPrototypes(protos...))...)
		}
	case "gaussian":
		var protos []matcher.Prototype[float64]
		if protos, err = prototypes(s, catalog.Gaussian(), floatPattern); err == nil {
			b.Float, err = generator.NewGaussian(stream, s.Mean, s.StdDev, append(opts, generator.WithPrototypes(protos...))...)
		}
	default:
		err = fmt.Errorf("kind %q: %w", s.Kind, ErrInvalidConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("config: stream %q: %w", s.Name, err)
	}

	return b, nil
}

// Sample draws n accepted values.
func (b *Built) Sample(n int) ([]any, error) {
	switch {
	case b.Bool != nil:
		return sample(b.Bool, n)
	case b.Int != nil:
		return sample(b.Int, n)
	default:
		return sample(b.Float, n)
	}
}

func sample[T comparable](g *generator.Generator[T], n int) ([]any, error) {
	vs, err := g.GenerateN(n)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}

	return out, nil
}

// Patterns lists the active pattern names.
func (b *Built) Patterns() []string {
	switch {
	case b.Bool != nil:
		return b.Bool.Filter().Patterns()
	case b.Int != nil:
		return b.Int.Filter().Patterns()
	default:
		return b.Float.Filter().Patterns()
	}
}

// Audit parses values for the stream's kind and returns the names of the
// patterns the sequence completes.
func (b *Built) Audit(values []string) ([]string, error) {
	switch {
	case b.Bool != nil:
		return audit(b.Bool, values, strconv.ParseBool)
	case b.Int != nil:
		return audit(b.Int, values, strconv.Atoi)
	default:
		return audit(b.Float, values, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	}
}

func audit[T comparable](g *generator.Generator[T], values []string, parse func(string) (T, error)) ([]string, error) {
	vs := make([]T, len(values))
	for i, s := range values {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		vs[i] = v
	}

	return g.Filter().Violations(vs)
}
