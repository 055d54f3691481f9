package cost

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Distance is the numeric type constraint for path costs.
type Distance interface {
	constraints.Integer | constraints.Float
}

// Zero returns the cost of the start state.
func Zero[D Distance]() D {
	var zero D
	return zero
}

// Infinity returns the largest value representable by D.
// The underlying kind is inspected, so named types work as well.
func Infinity[D Distance]() D {
	var inf D
	v := reflect.ValueOf(&inf).Elem()
	switch v.Kind() {
	case reflect.Int:
		v.SetInt(math.MaxInt)
	case reflect.Int8:
		v.SetInt(math.MaxInt8)
	case reflect.Int16:
		v.SetInt(math.MaxInt16)
	case reflect.Int32:
		v.SetInt(math.MaxInt32)
	case reflect.Int64:
		v.SetInt(math.MaxInt64)
	case reflect.Uint, reflect.Uintptr:
		v.SetUint(uint64(math.MaxUint))
	case reflect.Uint8:
		v.SetUint(math.MaxUint8)
	case reflect.Uint16:
		v.SetUint(math.MaxUint16)
	case reflect.Uint32:
		v.SetUint(math.MaxUint32)
	case reflect.Uint64:
		v.SetUint(math.MaxUint64)
	case reflect.Float32:
		v.SetFloat(math.MaxFloat32)
	case reflect.Float64:
		v.SetFloat(math.MaxFloat64)
	}

	return inf
}

// Add returns a+b, saturating at Infinity. Both operands must be non-negative.
func Add[D Distance](a, b D) D {
	return AddCapped(a, b, Infinity[D]())
}

// AddCapped returns a+b, saturating at inf. Hot loops resolve Infinity once
// and call this instead of Add.
func AddCapped[D Distance](a, b, inf D) D {
	if a >= inf || b >= inf || a > inf-b {
		return inf
	}

	return a + b
}

// IsInfinite reports whether d is the Infinity sentinel (or beyond it, for floats).
func IsInfinite[D Distance](d D) bool {
	return d >= Infinity[D]()
}
