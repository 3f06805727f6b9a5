package ops

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWraparound(t *testing.T) {
	assert.Equal(t, uint8(0), Add[uint8](math.MaxUint8, 1))
	assert.Equal(t, int8(math.MinInt8), Add[int8](math.MaxInt8, 1))
	assert.Equal(t, uint16(math.MaxUint16), Sub[uint16](0, 1))
	assert.Equal(t, int64(math.MaxInt64), Sub[int64](math.MinInt64, 1))
	assert.Equal(t, int32(-2), Mul[int32](math.MaxInt32, 2))
	assert.Equal(t, uint32(0), Mul[uint32](1<<16, 1<<16))
	assert.Equal(t, int8(math.MinInt8), Neg[int8](math.MinInt8))
}

func TestDivision(t *testing.T) {
	assert.Equal(t, int(-3), Div(-7, 2))
	assert.Equal(t, int(-1), Rem(-7, 2))
	assert.Equal(t, int(1), Rem(7, -2))

	t.Run("mostNegativeByMinusOne", func(t *testing.T) {
		assert.Equal(t, int64(math.MinInt64), Div[int64](math.MinInt64, -1))
		assert.Equal(t, int64(0), Rem[int64](math.MinInt64, -1))
	})

	t.Run("byZero", func(t *testing.T) {
		zero := 0
		assert.PanicsWithError(t, "runtime error: integer divide by zero", func() { Div(1, zero) })
		assert.PanicsWithError(t, "runtime error: integer divide by zero", func() { Rem(uint8(1), uint8(zero)) })
	})

	t.Run("float", func(t *testing.T) {
		assert.True(t, math.IsInf(Div(1.0, 0.0), 1))
		assert.True(t, math.IsNaN(Div(0.0, 0.0)))
		assert.Equal(t, float32(0.5), Div[float32](1, 2))
	})
}

func TestBitwise(t *testing.T) {
	assert.Equal(t, uint8(math.MaxUint8), Not[uint8](0))
	assert.Equal(t, int8(-1), Not[int8](0))
	assert.Equal(t, uint16(0x0f00), BitAnd[uint16](0xff00, 0x0ff0))
	assert.Equal(t, uint16(0xfff0), BitOr[uint16](0xff00, 0x0ff0))
	assert.Equal(t, uint16(0xf0f0), BitXor[uint16](0xff00, 0x0ff0))
	assert.False(t, LogicalNot(true))
}

func TestShifts(t *testing.T) {
	assert.Equal(t, uint8(128), Shl(uint8(1), 7))
	assert.Equal(t, uint8(0), Shl(uint8(1), 8))
	assert.Equal(t, int32(0), Shl(int32(1), uint(40)))
	assert.Equal(t, int8(-1), Shr(int8(math.MinInt8), 7))
	assert.Equal(t, int8(-1), Shr(int8(-1), 100))
	assert.Equal(t, uint64(1), Shr(uint64(1)<<63, int8(63)))

	n := -1
	assert.PanicsWithError(t, "runtime error: negative shift amount", func() { Shl(1, n) })
}

func TestAssign(t *testing.T) {
	x := uint8(250)
	AddAssign(&x, 10)
	assert.Equal(t, uint8(4), x)

	SubAssign(&x, 5)
	assert.Equal(t, uint8(math.MaxUint8), x)

	MulAssign(&x, 2)
	assert.Equal(t, uint8(254), x)

	DivAssign(&x, 3)
	assert.Equal(t, uint8(84), x)

	RemAssign(&x, 10)
	assert.Equal(t, uint8(4), x)

	BitOrAssign(&x, 0x10)
	assert.Equal(t, uint8(0x14), x)

	BitAndAssign(&x, 0x0f)
	assert.Equal(t, uint8(0x04), x)

	BitXorAssign(&x, 0xff)
	assert.Equal(t, uint8(0xfb), x)

	ShlAssign(&x, 1)
	assert.Equal(t, uint8(0xf6), x)

	ShrAssign(&x, 4)
	assert.Equal(t, uint8(0x0f), x)
}

func TestNamedTypes(t *testing.T) {
	assert.Equal(t, 3*time.Second, Add(time.Second, 2*time.Second))
	assert.Equal(t, -time.Minute, Neg(time.Minute))
	assert.Equal(t, 6*time.Second, Sum(time.Second, 2*time.Second, 3*time.Second))
	assert.Equal(t, 0, Sum[int]())
}

type vec2 struct{ x, y float64 }

func (v vec2) Add(o vec2) vec2 { return vec2{v.x + o.x, v.y + o.y} }
func (v vec2) Sub(o vec2) vec2 { return vec2{v.x - o.x, v.y - o.y} }
func (v vec2) Mul(o vec2) vec2 { return vec2{v.x * o.x, v.y * o.y} }
func (v vec2) Div(o vec2) vec2 { return vec2{v.x / o.x, v.y / o.y} }
func (v vec2) Neg() vec2 { return vec2{-v.x, -v.y} }

func TestMethodForms(t *testing.T) {
	a, b := vec2{1, 2}, vec2{4, 8}

	assert.Equal(t, vec2{5, 10}, AddOf(a, b))
	assert.Equal(t, vec2{-3, -6}, SubOf(a, b))
	assert.Equal(t, vec2{4, 16}, MulOf(a, b))
	assert.Equal(t, vec2{0.25, 0.25}, DivOf(a, b))
	assert.Equal(t, vec2{-1, -2}, NegOf(a))
}

func TestFloatRemainder(t *testing.T) {
	assert.Equal(t, 1.5, Rem(5.5, 2.0))
	assert.Equal(t, -1.5, Rem(-5.5, 2.0))
	assert.Equal(t, 1.5, Rem(5.5, -2.0))
	assert.Equal(t, float32(1.5), Rem[float32](7.5, 2))
	assert.True(t, math.IsNaN(Rem(1.0, 0.0)))
	assert.True(t, math.IsNaN(float64(Rem[float32](1, 0))))
	assert.True(t, math.Signbit(Rem(-4.0, 2.0)))

	type meters float64
	assert.Equal(t, meters(0.5), Rem(meters(2.5), meters(1)))

	x := float32(10.25)
	RemAssign(&x, 3)
	assert.Equal(t, float32(1.25), x)

	n := 17
	RemAssign(&n, 5)
	assert.Equal(t, 2, n)
}

func TestIntegerRemainderMatchesOperator(t *testing.T) {
	for _, a := range []int8{math.MinInt8, -7, -1, 0, 1, 7, math.MaxInt8} {
		for _, b := range []int8{math.MinInt8, -3, -1, 1, 3, math.MaxInt8} {
			assert.Equal(t, a%b, Rem(a, b), "%d %% %d", a, b)
		}
	}

	for _, a := range []uint8{0, 1, 200, math.MaxUint8} {
		for _, b := range []uint8{1, 7, 128, math.MaxUint8} {
			assert.Equal(t, a%b, Rem(a, b), "%d %% %d", a, b)
		}
	}
}

func TestLogicalOperators(t *testing.T) {
	cases := []struct {
		a, b         bool
		and, or, xor bool
	}{
		{false, false, false, false, false},
		{false, true, false, true, true},
		{true, false, false, true, true},
		{true, true, true, true, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.and, LogicalAnd(tc.a, tc.b), "%v & %v", tc.a, tc.b)
		assert.Equal(t, tc.or, LogicalOr(tc.a, tc.b), "%v | %v", tc.a, tc.b)
		assert.Equal(t, tc.xor, LogicalXor(tc.a, tc.b), "%v ^ %v", tc.a, tc.b)

		p := tc.a
		LogicalAndAssign(&p, tc.b)
		assert.Equal(t, tc.and, p)

		p = tc.a
		LogicalOrAssign(&p, tc.b)
		assert.Equal(t, tc.or, p)

		p = tc.a
		LogicalXorAssign(&p, tc.b)
		assert.Equal(t, tc.xor, p)
	}

	t.Run("bothOperandsEvaluated", func(t *testing.T) {
		calls := 0
		operand := func(v bool) bool {
			calls++
			return v
		}

		LogicalAnd(operand(false), operand(true))
		LogicalOr(operand(true), operand(false))
		assert.Equal(t, 4, calls)
	})
}
