package model

import (
	"cmp"

	"github.com/emirpasic/gods/v2/utils"
)

// The Func variants mirror the Range methods for element types whose order
// is not the native one, taking a three-way comparator in place of
// cmp.Compare. The comparator fully defines the semantics: a type ordered
// by a partial or even inconsistent comparator yields equality and
// widening results that inherit that comparator's behavior.

// EqualFunc reports whether both bounds of a and b compare as equal under
// comparator.
func EqualFunc[T cmp.Ordered](a, b Range[T], comparator utils.Comparator[T]) bool {
	return comparator(a.Min, b.Min) == 0 && comparator(a.Max, b.Max) == 0
}

// EncapsulateFunc widens r to cover every given value, using comparator to
// order elements.
func EncapsulateFunc[T cmp.Ordered](r Range[T], comparator utils.Comparator[T], values ...T) Range[T] {
	for _, v := range values {
		if comparator(v, r.Min) < 0 {
			r.Min = v
		}
		if comparator(v, r.Max) > 0 {
			r.Max = v
		}
	}
	return r
}

// EncapsulateRangesFunc widens r to cover the bounds of every given range,
// using comparator to order elements.
func EncapsulateRangesFunc[T cmp.Ordered](r Range[T], comparator utils.Comparator[T], others ...Range[T]) Range[T] {
	for _, o := range others {
		r = EncapsulateFunc(r, comparator, o.Min, o.Max)
	}
	return r
}

// CompareFunc orders ranges by Min first, then Max, under comparator.
func CompareFunc[T cmp.Ordered](a, b Range[T], comparator utils.Comparator[T]) int {
	if c := comparator(a.Min, b.Min); c != 0 {
		return c
	}
	return comparator(a.Max, b.Max)
}
