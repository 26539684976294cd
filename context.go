package rtree

import "math"

// Context is the immutable configuration threaded through every tree
// operation: dimensionality, fill-factor bounds, the node-selection and
// node-splitting policies, and the STR loading factor. Once built, a
// Context is never mutated; trees sharing a Context may safely share it
// across goroutines.
type Context struct {
	dimensions    int
	minChildren   int
	maxChildren   int
	selector      Selector
	splitter      Splitter
	loadingFactor float64
	star          bool // true when running in R* mode (forced reinsertion enabled)
}

// Dimensions returns k.
func (c *Context) Dimensions() int { return c.dimensions }

// MinChildren returns the minimum fanout for a non-root node.
func (c *Context) MinChildren() int { return c.minChildren }

// MaxChildren returns the maximum fanout for any node.
func (c *Context) MaxChildren() int { return c.maxChildren }

// Builder is the only way to construct a Context. It is a plain value
// type; each With-method returns a new Builder rather than mutating in
// place, so partially-configured builders may be reused or forked.
type Builder struct {
	dimensions    int
	minChildren   int
	maxChildren   int
	selector      Selector
	splitter      Splitter
	loadingFactor float64
	star          bool
	hasMin        bool
	hasMax        bool
}

// NewBuilder returns a Builder with the library defaults: 2 dimensions,
// Guttman splitting and minimal-volume-increase selection, and an STR
// loading factor of 0.7. Call Star() to switch every default to the R*
// variant before calling Dimensions/MinChildren/MaxChildren.
func NewBuilder() Builder {
	return Builder{
		dimensions:    2,
		loadingFactor: 0.7,
	}
}

// Dimensions sets k, the number of axes (k >= 2).
func (b Builder) Dimensions(d int) Builder {
	b.dimensions = d
	return b
}

// MinChildren sets the minimum fanout for a non-root node.
func (b Builder) MinChildren(m int) Builder {
	b.minChildren = m
	b.hasMin = true
	return b
}

// MaxChildren sets the maximum fanout for any node.
func (b Builder) MaxChildren(m int) Builder {
	b.maxChildren = m
	b.hasMax = true
	return b
}

// Selector overrides the node-selection policy.
func (b Builder) Selector(s Selector) Builder {
	b.selector = s
	return b
}

// Splitter overrides the node-splitting policy.
func (b Builder) Splitter(s Splitter) Builder {
	b.splitter = s
	return b
}

// LoadingFactor sets the STR bulk-loader's target leaf fill ratio,
// 0 < f <= 1.
func (b Builder) LoadingFactor(f float64) Builder {
	b.loadingFactor = f
	return b
}

// Star switches on the R* defaults: maxChildren = 4 (unless already set),
// the R* splitter, the R* selector, and forced reinsertion during
// insertion.
func (b Builder) Star() Builder {
	b.star = true
	if !b.hasMax {
		b.maxChildren = 4
	}
	return b
}

// Build validates the configuration and returns an immutable Context, or
// a *ConfigError describing the first violated constraint.
func (b Builder) Build() (*Context, error) {
	if b.dimensions < 2 {
		return nil, configErrorf("dimensions must be >= 2, got %d", b.dimensions)
	}
	maxChildren := b.maxChildren
	if !b.hasMax {
		maxChildren = 8
	}
	minChildren := b.minChildren
	if !b.hasMin {
		minChildren = int(math.Round(0.4 * float64(maxChildren)))
		if minChildren < 2 {
			minChildren = 2
		}
	}
	if minChildren < 2 {
		return nil, configErrorf("minChildren must be >= 2, got %d", minChildren)
	}
	if maxChildren <= minChildren {
		return nil, configErrorf("maxChildren (%d) must be > minChildren (%d)", maxChildren, minChildren)
	}
	if b.loadingFactor <= 0 || b.loadingFactor > 1 {
		return nil, configErrorf("loadingFactor must be in (0, 1], got %v", b.loadingFactor)
	}

	selector := b.selector
	splitter := b.splitter
	if b.star {
		if selector == nil {
			selector = rstarSelector{}
		}
		if splitter == nil {
			splitter = rstarSplitter{}
		}
	} else {
		if selector == nil {
			selector = guttmanSelector{}
		}
		if splitter == nil {
			splitter = quadraticSplitter{}
		}
	}

	return &Context{
		dimensions:    b.dimensions,
		minChildren:   minChildren,
		maxChildren:   maxChildren,
		selector:      selector,
		splitter:      splitter,
		loadingFactor: b.loadingFactor,
		star:          b.star,
	}, nil
}
