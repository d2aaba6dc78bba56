package utils

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestDegRadConversion(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1.0, 1.0+1e-9, 1e-8), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1.0, 1.1, 1e-8), test.ShouldBeFalse)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(5, 0, 10), test.ShouldEqual, 5)
	test.That(t, Clamp(-5, 0, 10), test.ShouldEqual, 0)
	test.That(t, Clamp(15, 0, 10), test.ShouldEqual, 10)

	test.That(t, ClampInt(7, 0, 4), test.ShouldEqual, 4)
	test.That(t, ClampInt(-1, 0, 4), test.ShouldEqual, 0)
	test.That(t, ClampInt(2, 0, 4), test.ShouldEqual, 2)
}

func TestIntHelpers(t *testing.T) {
	test.That(t, AbsInt(-3), test.ShouldEqual, 3)
	test.That(t, AbsInt(3), test.ShouldEqual, 3)
	test.That(t, MaxInt(2, 5), test.ShouldEqual, 5)
	test.That(t, MinInt(2, 5), test.ShouldEqual, 2)
}

func TestSampleRandomIntRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		n := SampleRandomIntRange(-7, 7, r)
		test.That(t, n, test.ShouldBeGreaterThanOrEqualTo, -7)
		test.That(t, n, test.ShouldBeLessThanOrEqualTo, 7)
	}
}
