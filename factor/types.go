package factor

import "fmt"

// Config holds construction-time settings for a Factorizer.
type Config struct {
	// Cost is the reuse-cost ceiling COST passed through to the tree.
	Cost int
}

// Option configures a Factorizer at construction time.
type Option func(*Config)

// WithCost sets the cost ceiling. It panics if cost is not positive, the same
// way suffixtree.WithCost rejects nonsensical configuration at call time.
func WithCost(cost int) Option {
	if cost <= 0 {
		panic(ErrBadCost.Error())
	}
	return func(c *Config) { c.Cost = cost }
}

func defaultConfig() Config {
	return Config{Cost: 1}
}

// Phrase is one emitted triple: a copy of Length bytes starting at Source
// (0-based, into the original input), followed by the single literal byte
// Next. Source is -1 when Length is 0 (a literal-only phrase with no copy).
// Next is 0, the end-of-string sentinel, when the copy reaches the end of
// the input.
type Phrase struct {
	Source int
	Length int
	Next   byte
}

// String renders a phrase in the CLI's wire format:
// (source_position_0based, length, next_literal_byte_code).
func (p Phrase) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Source, p.Length, p.Next)
}
