package factor

import (
	"errors"

	"github.com/lzforge/costlz/suffixtree"
)

// Factorizer drives the greedy phrase loop described in spec.md §4.6 over
// one annotated suffix tree.
type Factorizer struct {
	tree *suffixtree.Tree
}

// New builds the underlying suffix tree over input and returns a Factorizer
// ready to run. See suffixtree.New for the exact input constraints.
func New(input []byte, opts ...Option) (*Factorizer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	tree, err := suffixtree.New(input, suffixtree.WithCost(cfg.Cost))
	if err != nil {
		switch {
		case errors.Is(err, suffixtree.ErrEmptyInput):
			return nil, ErrEmptyInput
		case errors.Is(err, suffixtree.ErrZeroByte):
			return nil, ErrZeroByte
		default:
			return nil, err
		}
	}
	return &Factorizer{tree: tree}, nil
}

// Run executes the full factorization and returns the phrase sequence whose
// concatenation reproduces the original input. When the last phrase's copy
// runs to the end of the input, its Next is the zero end-of-string sentinel
// rather than an input byte.
func (f *Factorizer) Run() ([]Phrase, error) {
	n := f.tree.Len()
	var phrases []Phrase

	for textPos := 1; textPos <= n; {
		m, err := f.tree.Search(textPos)
		if err != nil {
			return nil, translateErr(err)
		}

		nextLiteral := f.tree.ByteAt(textPos + m.Length)
		phrase := Phrase{Source: m.Pos - 1, Length: m.Length, Next: nextLiteral}
		phrases = append(phrases, phrase)

		if err := f.applyCost(textPos, m); err != nil {
			return nil, err
		}

		if err := f.tree.SetU(textPos+m.Length, 0); err != nil {
			return nil, translateErr(err)
		}
		f.tree.PropagateFromLeaf(textPos, m.Length)

		textPos += m.Length + 1
	}
	return phrases, nil
}

// applyCost accounts for the cost of copying m.Length bytes from m.Pos into
// textPos, wrapping through the source range when the copy overlaps itself
// (m.Length > textPos - m.Pos), exactly as LZ77-style self-referential runs
// do.
func (f *Factorizer) applyCost(textPos int, m suffixtree.Match) error {
	if m.Length == 0 {
		return nil
	}
	period := textPos - m.Pos
	for i := 0; i < m.Length; i++ {
		k := i % period
		src := m.Pos + k
		newCost := f.tree.U(src) + 1
		if err := f.tree.SetU(textPos+i, newCost); err != nil {
			return translateErr(err)
		}
	}
	return nil
}

func translateErr(err error) error {
	switch {
	case errors.Is(err, suffixtree.ErrCostExceeded):
		return ErrCostExceeded
	case errors.Is(err, suffixtree.ErrInvalidSource):
		return ErrInvalidSource
	default:
		return err
	}
}
