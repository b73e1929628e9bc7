// Package randrange draws uniform random integers from a union of
// half-open ranges. Bounds may span the full 128-bit signed space, so
// all arithmetic runs on big.Int.
package randrange

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

var (
	ErrBackwards      = errors.New("the range is entered backwards")
	ErrInvalidInteger = errors.New("invalid integer in range")
	ErrSyntax         = errors.New("malformed range")
	ErrIntersecting   = errors.New("two or more ranges are intersecting")
	ErrNoRanges       = errors.New("no ranges to draw from")
)

// 128-bit signed bounds. To is exclusive, so it may reach 1<<127.
var (
	minFrom = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxTo   = new(big.Int).Lsh(big.NewInt(1), 127)
)

// Range is a half-open interval [From, To).
type Range struct {
	From *big.Int
	To   *big.Int
}

// New builds [from, to).
func New(from, to int64) Range {
	return Range{From: big.NewInt(from), To: big.NewInt(to)}
}

// Inclusive builds [from, to].
func Inclusive(from, to int64) Range {
	return Range{From: big.NewInt(from), To: big.NewInt(to + 1)}
}

// Single builds the one-value range [value, value+1).
func Single(value int64) Range {
	return Inclusive(value, value)
}

// Count returns the number of integers in the range.
func (r Range) Count() *big.Int {
	return new(big.Int).Sub(r.To, r.From)
}

// Intersects reports whether the two ranges share any integer.
func (r Range) Intersects(other Range) bool {
	return other.To.Cmp(r.From) > 0 && other.From.Cmp(r.To) < 0
}

func (r Range) String() string {
	return fmt.Sprintf("%v..%v", r.From, r.To)
}

// Parse reads a single "from..to" range. Both bounds are base-10
// integers, the upper bound exclusive.
func Parse(s string) (Range, error) {
	if strings.Count(s, "..") != 1 {
		return Range{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	idx := strings.Index(s, "..")
	from, err := parseBound(s[:idx])
	if err != nil {
		return Range{}, err
	}
	to, err := parseBound(s[idx+2:])
	if err != nil {
		return Range{}, err
	}
	if from.Cmp(to) >= 0 {
		return Range{}, fmt.Errorf("%w: %q", ErrBackwards, s)
	}
	if from.Cmp(minFrom) < 0 || to.Cmp(maxTo) > 0 {
		return Range{}, fmt.Errorf("%w: %q is outside the 128-bit signed space", ErrInvalidInteger, s)
	}
	return Range{From: from, To: to}, nil
}

func parseBound(tok string) (*big.Int, error) {
	trimmed := strings.TrimSpace(tok)
	n, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInteger, trimmed)
	}
	return n, nil
}

// ParseAll expands comma-separated arguments into ranges, resolving
// preset names, and rejects any pairwise overlap.
func ParseAll(args []string) ([]Range, error) {
	var ranges []Range
	for _, arg := range args {
		for _, tok := range strings.Split(arg, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if preset, ok := presets[tok]; ok {
				ranges = append(ranges, preset...)
				continue
			}
			r, err := Parse(tok)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
		}
	}
	for i, r := range ranges {
		for j, other := range ranges {
			if i == j {
				continue
			}
			if r.Intersects(other) {
				return nil, fmt.Errorf("%w: %v and %v", ErrIntersecting, r, other)
			}
		}
	}
	return ranges, nil
}

// Total returns the combined number of integers across all ranges.
func Total(ranges []Range) *big.Int {
	total := new(big.Int)
	for _, r := range ranges {
		total.Add(total, r.Count())
	}
	return total
}

// Clamp maps a zero-based index in [0, Total) onto the ranges in
// order. Indexes beyond the total yield -1.
func Clamp(value *big.Int, ranges []Range) *big.Int {
	left := new(big.Int).Set(value)
	for _, r := range ranges {
		count := r.Count()
		if left.Cmp(count) < 0 {
			return left.Add(left, r.From)
		}
		left.Sub(left, count)
	}
	return big.NewInt(-1)
}

// Sample draws one uniform integer from the union of the ranges,
// reading entropy from rng (crypto/rand.Reader in production).
func Sample(rng io.Reader, ranges []Range) (*big.Int, error) {
	total := Total(ranges)
	if total.Sign() <= 0 {
		return nil, ErrNoRanges
	}
	idx, err := rand.Int(rng, total)
	if err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return Clamp(idx, ranges), nil
}
