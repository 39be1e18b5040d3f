package flight

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approxEqual(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) <= epsilon
}

// approxVec compares componentwise with an absolute tolerance.
func approxVec(a, b mgl32.Vec3, epsilon float32) bool {
	return approxEqual(a[0], b[0], epsilon) && approxEqual(a[1], b[1], epsilon) && approxEqual(a[2], b[2], epsilon)
}

func flatGround(h float32) GroundFunc {
	return func(mgl32.Vec3) float32 { return h }
}

func TestNewCraftFacesNegativeZ(t *testing.T) {
	c := NewCraft(mgl32.Vec3{0, 10, 0})
	if !approxVec(c.Front, mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("front = %v, want (0, 0, -1)", c.Front)
	}
	if !approxVec(c.Up, mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("up = %v, want (0, 1, 0)", c.Up)
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := NewCraft(mgl32.Vec3{})
	c.Look(0, 10000)
	if c.Pitch != 89 {
		t.Errorf("pitch = %v, want 89", c.Pitch)
	}
	c.Look(0, -20000)
	if c.Pitch != -89 {
		t.Errorf("pitch = %v, want -89", c.Pitch)
	}
	if !approxEqual(c.Front.Len(), 1, 1e-5) || !approxEqual(c.Right.Len(), 1, 1e-5) {
		t.Errorf("basis lost unit length at the pitch limit: front %v right %v", c.Front, c.Right)
	}
}

func TestLookYaw(t *testing.T) {
	c := NewCraft(mgl32.Vec3{})
	c.Sensitivity = 1
	c.Look(90, 0)
	if !approxVec(c.Front, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("after a quarter turn front = %v, want (1, 0, 0)", c.Front)
	}
}

func TestThrustAndDamping(t *testing.T) {
	c := NewCraft(mgl32.Vec3{0, 50, 0})
	c.Thrust(Input{Forward: true}, 2, 3, 0.5)
	if !approxVec(c.Velocity, mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Fatalf("velocity = %v, want (0, 0, -1)", c.Velocity)
	}

	c.Tick(nil)
	want := mgl32.Vec3{0, 0, -(1 - c.Damping)}
	if !approxVec(c.Velocity, want, 1e-6) {
		t.Errorf("damped velocity = %v, want %v", c.Velocity, want)
	}
	if !approxVec(c.Position, mgl32.Vec3{0, 50, want.Z()}, 1e-6) {
		t.Errorf("position = %v after one tick", c.Position)
	}
}

func TestThrustBoostAndOpposites(t *testing.T) {
	c := NewCraft(mgl32.Vec3{})
	c.Thrust(Input{Forward: true, Back: true, Left: true, Right: true}, 5, 2, 1)
	if c.Velocity != (mgl32.Vec3{}) {
		t.Errorf("opposing inputs should cancel, velocity = %v", c.Velocity)
	}

	c.Thrust(Input{Up: true, Boost: true}, 1, 4, 0.25)
	if !approxVec(c.Velocity, mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("boosted climb velocity = %v, want (0, 1, 0)", c.Velocity)
	}
}

func TestTickKeepsClearance(t *testing.T) {
	c := NewCraft(mgl32.Vec3{0, 11, 0})
	c.Velocity = mgl32.Vec3{0, -5, 0}

	c.Tick(flatGround(10))
	if !c.Grounded {
		t.Error("craft pushed to the ground should be grounded")
	}
	if c.Position.Y() != 10+c.Clearance {
		t.Errorf("y = %v, want %v", c.Position.Y(), 10+c.Clearance)
	}
	if c.Velocity.Y() != 0 {
		t.Errorf("downward velocity should be cancelled, got %v", c.Velocity.Y())
	}
	if got := c.Altitude(flatGround(10)); got != c.Clearance {
		t.Errorf("altitude = %v, want %v", got, c.Clearance)
	}

	c.Velocity = mgl32.Vec3{0, 4, 0}
	c.Tick(flatGround(10))
	if c.Grounded {
		t.Error("climbing craft should leave the ground")
	}
}

func TestTickSamplesGroundAtNewPosition(t *testing.T) {
	c := NewCraft(mgl32.Vec3{0, 5, 0})
	c.Velocity = mgl32.Vec3{10, 0, 0}

	var sampled mgl32.Vec3
	c.Tick(func(p mgl32.Vec3) float32 {
		sampled = p
		return 0
	})
	if sampled.X() != c.Position.X() {
		t.Errorf("ground sampled at x = %v, craft moved to %v", sampled.X(), c.Position.X())
	}
}

func TestInterpolated(t *testing.T) {
	c := NewCraft(mgl32.Vec3{0, 0, 0})
	c.Velocity = mgl32.Vec3{10, 0, 0}
	c.Damping = 0
	c.Tick(nil)

	cases := map[float32]float32{-1: 0, 0: 0, 0.25: 2.5, 1: 10, 3: 10}
	for alpha, x := range cases {
		if got := c.Interpolated(alpha).X(); !approxEqual(got, x, 1e-5) {
			t.Errorf("Interpolated(%v).x = %v, want %v", alpha, got, x)
		}
	}

	view := c.View(1)
	eye := view.Mul4x1(mgl32.Vec4{10, 0, 0, 1})
	if !approxVec(eye.Vec3(), mgl32.Vec3{}, 1e-5) {
		t.Errorf("view should map the eye to the origin, got %v", eye)
	}
}
