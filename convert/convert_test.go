package convert

import (
	"errors"
	"math"
	"testing"

	"go.dw1.io/safemath"
)

func assertIdentity[T Primitive](t *testing.T, values ...T) {
	t.Helper()

	for _, v := range values {
		if got := From[T](v); got != v {
			t.Fatalf("From[%T](%v): got %v", v, v, got)
		}

		if got := Into[T](v); got != v {
			t.Fatalf("Into[%T](%v): got %v", v, v, got)
		}

		got, err := TryFrom[T](v)
		if err != nil || got != v {
			t.Fatalf("TryFrom[%T](%v): got %v, %v", v, v, got, err)
		}

		if got := emit[T](load(v)); got != v {
			t.Fatalf("scalar round trip of %T(%v): got %v", v, v, got)
		}
	}
}

func TestIdentity(t *testing.T) {
	assertIdentity(t, true, false)
	assertIdentity[int8](t, math.MinInt8, -1, 0, math.MaxInt8)
	assertIdentity[int16](t, math.MinInt16, 0, math.MaxInt16)
	assertIdentity[int32](t, math.MinInt32, 0, math.MaxInt32)
	assertIdentity[int64](t, math.MinInt64, 0, math.MaxInt64)
	assertIdentity[int](t, math.MinInt, 0, math.MaxInt)
	assertIdentity[uint8](t, 0, math.MaxUint8)
	assertIdentity[uint16](t, 0, math.MaxUint16)
	assertIdentity[uint32](t, 0, math.MaxUint32)
	assertIdentity[uint64](t, 0, math.MaxUint64)
	assertIdentity[uint](t, 0, math.MaxUint)
	assertIdentity[uintptr](t, 0, ^uintptr(0))
	assertIdentity[float32](t, 0, -1.5, math.MaxFloat32, float32(math.Inf(-1)))
	assertIdentity[float64](t, 0, math.SmallestNonzeroFloat64, math.MaxFloat64, math.Inf(1))
}

func TestNarrowingScenario(t *testing.T) {
	t.Run("outOfRange", func(t *testing.T) {
		_, err := TryFrom[uint8](uint16(300))
		if err == nil {
			t.Fatalf("expected error for 300 -> uint8")
		}

		var rangeErr *TryFromIntError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("expected *TryFromIntError, got %T", err)
		}

		if rangeErr.Value != uint16(300) || rangeErr.Source != Uint16 || rangeErr.Target != Uint8 {
			t.Fatalf("unexpected payload: %+v", rangeErr)
		}

		if got := err.Error(); got != "convert: 300 (uint16) out of range for uint8" {
			t.Fatalf("unexpected message %q", got)
		}

		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected error to wrap safemath.ErrTruncation")
		}
	})

	t.Run("withinRange", func(t *testing.T) {
		got, err := TryFrom[uint8](uint16(200))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != 200 {
			t.Fatalf("expected 200, got %d", got)
		}

		got, err = TryInto[uint8](uint16(200))
		if err != nil || got != 200 {
			t.Fatalf("TryInto: got %d, %v", got, err)
		}
	})
}

func TestRangeSubsumesSign(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
	}{
		{"int8ToUint8", func() error { _, err := TryFrom[uint8](int8(-1)); return err }},
		{"intToUint64", func() error { _, err := TryFrom[uint64](math.MinInt); return err }},
		{"int64ToUintptr", func() error { _, err := TryFrom[uintptr](int64(-5)); return err }},
		{"uint64ToInt64", func() error { _, err := TryFrom[int64](uint64(math.MaxInt64) + 1); return err }},
		{"uint8ToInt8", func() error { _, err := TryFrom[int8](uint8(128)); return err }},
		{"int16ToInt8", func() error { _, err := TryFrom[int8](int16(-129)); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()

			var rangeErr *TryFromIntError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected *TryFromIntError, got %v", err)
			}
		})
	}
}

func TestBoundedSuccess(t *testing.T) {
	if got := MustTryFrom[int8](int64(-128)); got != math.MinInt8 {
		t.Fatalf("expected -128, got %d", got)
	}

	if got := MustTryFrom[uint32](int64(math.MaxUint32)); got != math.MaxUint32 {
		t.Fatalf("expected MaxUint32, got %d", got)
	}

	if got := MustTryFrom[uint](uintptr(42)); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	if got := MustTryFrom[int64](uint64(math.MaxInt64)); got != math.MaxInt64 {
		t.Fatalf("expected MaxInt64, got %d", got)
	}
}

func TestLossless(t *testing.T) {
	if got := From[uint16](uint8(255)); got != 255 {
		t.Fatalf("expected 255, got %d", got)
	}

	if got := From[int64](int8(-7)); got != -7 {
		t.Fatalf("expected -7, got %d", got)
	}

	if got := From[float32](int16(math.MinInt16)); got != math.MinInt16 {
		t.Fatalf("expected %d, got %v", math.MinInt16, got)
	}

	if got := From[float64](uint32(math.MaxUint32)); got != math.MaxUint32 {
		t.Fatalf("expected %d, got %v", uint32(math.MaxUint32), got)
	}

	if got := From[float64](float32(0.1)); got != float64(float32(0.1)) {
		t.Fatalf("unexpected widening of 0.1: %v", got)
	}

	t.Run("bool", func(t *testing.T) {
		if From[uint8](true) != 1 || From[int](false) != 0 {
			t.Fatalf("expected 1 for true and 0 for false")
		}

		f := From[float64](false)
		if f != 0 || math.Signbit(f) {
			t.Fatalf("expected positive zero, got %v", f)
		}

		if From[float32](true) != 1 {
			t.Fatalf("expected 1.0 for true")
		}
	})

	t.Run("tryNeverFails", func(t *testing.T) {
		got, err := TryFrom[int32](uint16(math.MaxUint16))
		if err != nil || got != math.MaxUint16 {
			t.Fatalf("got %d, %v", got, err)
		}
	})
}

func TestUnsupported(t *testing.T) {
	t.Run("fromPanics", func(t *testing.T) {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.Is(err, ErrUnsupported) {
				t.Fatalf("expected ErrUnsupported panic, got %v", r)
			}
		}()

		_ = From[int8](int64(1))
	})

	t.Run("tryFromError", func(t *testing.T) {
		cases := []func() error{
			func() error { _, err := TryFrom[float32](int32(1)); return err },
			func() error { _, err := TryFrom[int](float64(1)); return err },
			func() error { _, err := TryFrom[bool](uint8(1)); return err },
			func() error { _, err := TryFrom[float32](float64(1)); return err },
			func() error { _, err := TryFrom[float64](int64(1)); return err },
		}

		for i, run := range cases {
			err := run()
			if !errors.Is(err, ErrUnsupported) {
				t.Fatalf("case %d: expected ErrUnsupported, got %v", i, err)
			}
		}
	})

	t.Run("message", func(t *testing.T) {
		_, err := TryFrom[float32](int32(1))
		if got := err.Error(); got != "convert: unsupported conversion from int32 to float32" {
			t.Fatalf("unexpected message %q", got)
		}
	})
}

func TestNoTransitivity(t *testing.T) {
	// int32 -> int16 -> float32 chains, but int32 -> float32 is not a row.
	if !CanTryFrom[int16, int32]() || !CanFrom[float32, int16]() {
		t.Fatalf("expected both legs to exist")
	}

	if CanTryFrom[float32, int32]() {
		t.Fatalf("int32 -> float32 must not resolve")
	}

	// uint8 -> uint16 and uint16 -> int32 exist losslessly; so does
	// uint8 -> int32, because it has its own row.
	if !CanFrom[int32, uint8]() {
		t.Fatalf("uint8 -> int32 must resolve")
	}
}

func TestCan(t *testing.T) {
	if !CanFrom[int8, int8]() || !CanTryFrom[bool, bool]() {
		t.Fatalf("identity must always resolve")
	}

	if CanFrom[uint8, uint16]() {
		t.Fatalf("uint16 -> uint8 is not lossless")
	}

	if !CanTryFrom[uint8, uint16]() {
		t.Fatalf("uint16 -> uint8 must be fallible")
	}

	if !CanTryFrom[uint, uintptr]() || CanFrom[uint, uintptr]() {
		t.Fatalf("uintptr -> uint must be bounded only")
	}
}

func TestTryFromValue(t *testing.T) {
	t.Run("primitive", func(t *testing.T) {
		got, err := TryFromValue[int16](uint8(200))
		if err != nil || got != 200 {
			t.Fatalf("got %d, %v", got, err)
		}

		_, err = TryFromValue[int8](uint8(200))
		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected truncation, got %v", err)
		}
	})

	t.Run("nonPrimitive", func(t *testing.T) {
		_, err := TryFromValue[int]("42")
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("expected ErrUnsupported, got %v", err)
		}

		if got := err.Error(); got != "convert: unsupported conversion from string to int" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("namedType", func(t *testing.T) {
		type celsius int16

		_, err := TryFromValue[int32](celsius(3))
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("expected ErrUnsupported for named type, got %v", err)
		}
	})
}

func TestKinds(t *testing.T) {
	if KindOf[uintptr]() != Uintptr || KindOf[bool]() != Bool || KindOf[float32]() != Float32 {
		t.Fatalf("unexpected kinds")
	}

	if ValueKind(int(3)) != Int || ValueKind("x") != Invalid || ValueKind(nil) != Invalid {
		t.Fatalf("unexpected value kinds")
	}
}

func TestZeroError(t *testing.T) {
	err := &TryFromIntError{Value: uint8(0), Source: Uint8, Target: Uint8, NonZero: true, Zero: true}
	if !errors.Is(err, ErrZero) || errors.Is(err, safemath.ErrTruncation) {
		t.Fatalf("zero rejection must unwrap to ErrZero only")
	}

	if got := err.Error(); got != "convert: zero is not a valid non-zero uint8" {
		t.Fatalf("unexpected message %q", got)
	}
}
