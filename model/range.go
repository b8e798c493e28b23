package model

import (
	"cmp"
	"fmt"
)

// Range is an inclusive interval over an ordered type, bounded by Min and Max.
//
// A Range is a plain value: copy it by assignment, compare it with Equal.
// Widening operations return a new Range and never modify the receiver.
// New applies no validation, so a caller may build a Range with Min > Max;
// such an inverted range is stored and round-tripped verbatim.
type Range[T cmp.Ordered] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

func New[T cmp.Ordered](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max}
}

// Equal reports whether both bounds of r and o compare as equal.
//
// Equality is defined by cmp.Compare, not by ==. The two agree for most
// types, but diverge for floats: cmp.Compare treats NaN as equal to NaN,
// so New(math.NaN(), 1).Equal(New(math.NaN(), 1)) is true even though the
// structs are != to each other. The comparison-based answer is the
// authoritative one. Note that Go maps keyed on Range still bucket with
// native ==, so a caller relying on NaN bounds as map keys gets native
// equality there, not this one.
func (r Range[T]) Equal(o Range[T]) bool {
	return cmp.Compare(r.Min, o.Min) == 0 && cmp.Compare(r.Max, o.Max) == 0
}

// Encapsulate returns a Range widened to cover every given value.
//
// Each value is checked against both bounds: anything below Min becomes the
// new Min, anything above Max becomes the new Max. Values already inside
// the range, or equal to a bound, change nothing. With no values, r is
// returned as is.
func (r Range[T]) Encapsulate(values ...T) Range[T] {
	for _, v := range values {
		if cmp.Less(v, r.Min) {
			r.Min = v
		}
		if cmp.Less(r.Max, v) {
			r.Max = v
		}
	}
	return r
}

// EncapsulateRanges returns a Range widened to cover the bounds of every
// given range. It behaves exactly like calling Encapsulate with each
// other's Min and Max in turn, so the result does not depend on the order
// of the others.
func (r Range[T]) EncapsulateRanges(others ...Range[T]) Range[T] {
	for _, o := range others {
		r = r.Encapsulate(o.Min, o.Max)
	}
	return r
}

// Compare orders ranges by Min first, then Max. Its shape matches gods'
// utils.Comparator, so it can be passed directly to treeset.NewWith or
// treemap.NewWith to keep ranges in ordered collections.
func Compare[T cmp.Ordered](a, b Range[T]) int {
	if c := cmp.Compare(a.Min, b.Min); c != 0 {
		return c
	}
	return cmp.Compare(a.Max, b.Max)
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}
