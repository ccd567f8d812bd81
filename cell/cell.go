package cell

import "fmt"

// kind tags the three states a Cell can hold.
type kind uint8

const (
	kValue kind = iota
	kNA
	kNM
)

func (k kind) String() string {
	switch k {
	case kValue:
		return "Value"
	case kNM:
		return "NM"
	default:
		return "NA"
	}
}

// Cell is a three-valued wrapper around a datum of type A: a present
// Value, an absent NA, or a defined-to-be-undefined NM.
//
// Zero value of Cell[A] is NA — a nil/unset Cell reads as "absent",
// never as a present zero value of A.
type Cell[A any] struct {
	k   kind
	val A
}

// Value wraps a present, meaningful datum.
func Value[A any](a A) Cell[A] { return Cell[A]{k: kValue, val: a} }

// NA builds the "not available" cell: the datum was never observed.
func NA[A any]() Cell[A] { return Cell[A]{k: kNA} }

// NM builds the "not meaningful" cell: the datum is undefined in context.
func NM[A any]() Cell[A] { return Cell[A]{k: kNM} }

// IsValue reports whether c holds a present value.
func (c Cell[A]) IsValue() bool { return c.k == kValue }

// IsNA reports whether c is "not available".
func (c Cell[A]) IsNA() bool { return c.k == kNA }

// IsNM reports whether c is "not meaningful".
func (c Cell[A]) IsNM() bool { return c.k == kNM }

// IsAbsent reports whether c is either NA or NM.
func (c Cell[A]) IsAbsent() bool { return c.k != kValue }

// Get returns the wrapped value and true iff c.IsValue().
func (c Cell[A]) Get() (A, bool) { return c.val, c.k == kValue }

// MustValue returns the wrapped datum. Callers must check IsValue
// first; calling this on an absent Cell is a contract violation and
// panics rather than returning a zero value silently.
func (c Cell[A]) MustValue() A {
	if c.k != kValue {
		panic(fmt.Sprintf("cell: MustValue called on %s cell", c.k))
	}
	return c.val
}

// ValueOr returns the wrapped value, or fallback if c is absent.
func (c Cell[A]) ValueOr(fallback A) A {
	if c.k == kValue {
		return c.val
	}
	return fallback
}

// String implements fmt.Stringer for debugging and test failure output.
func (c Cell[A]) String() string {
	if c.k == kValue {
		return fmt.Sprintf("Value(%v)", c.val)
	}
	return c.k.String()
}

// Map applies f to a present value, preserving NA/NM untouched.
func Map[A, B any](c Cell[A], f func(A) B) Cell[B] {
	switch c.k {
	case kValue:
		return Value(f(c.val))
	case kNM:
		return NM[B]()
	default:
		return NA[B]()
	}
}

// FlatMap applies f to a present value; f may itself return NA/NM,
// short-circuiting the chain. NA/NM on the input short-circuit without
// calling f.
func FlatMap[A, B any](c Cell[A], f func(A) Cell[B]) Cell[B] {
	switch c.k {
	case kValue:
		return f(c.val)
	case kNM:
		return NM[B]()
	default:
		return NA[B]()
	}
}

// Semigroup combines two values of A into one. Passed explicitly to
// Combine/merge operations rather than resolved via an ambient
// instance, so the combining rule is always visible at the call site.
type Semigroup[A any] func(a, b A) A

// Combine implements the Cell monoid: NA is the identity, NM absorbs.
// Associative whenever op is associative on Value/Value pairs.
func Combine[A any](c1, c2 Cell[A], op Semigroup[A]) Cell[A] {
	if c1.k == kNM || c2.k == kNM {
		return NM[A]()
	}
	if c1.k == kNA {
		return c2
	}
	if c2.k == kNA {
		return c1
	}
	return Value(op(c1.val, c2.val))
}

// Equal reports structural equality between two cells of a comparable
// type: same variant, and if both Value, equal payloads.
func Equal[A comparable](c1, c2 Cell[A]) bool {
	if c1.k != c2.k {
		return false
	}
	if c1.k != kValue {
		return true
	}
	return c1.val == c2.val
}
