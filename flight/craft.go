package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GroundFunc returns the terrain height under p. terrain.(*Terrain).HeightAt fits.
type GroundFunc func(p mgl32.Vec3) float32

// Input is the set of thrust directions held this frame.
type Input struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
	Boost         bool
}

var worldUp = mgl32.Vec3{0, 1, 0}

type Craft struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3

	Front mgl32.Vec3
	Right mgl32.Vec3
	Up    mgl32.Vec3

	Yaw   float64
	Pitch float64

	Sensitivity float64
	Damping     float32 // fraction of velocity lost per tick
	Clearance   float32 // minimum height above ground
	Grounded    bool

	previous mgl32.Vec3
}

func NewCraft(position mgl32.Vec3) *Craft {
	c := &Craft{
		Position:    position,
		previous:    position,
		Yaw:         -90,
		Sensitivity: 0.3,
		Damping:     0.35,
		Clearance:   1.5,
	}
	c.updateVectors()
	return c
}

// Look turns the craft by a mouse delta in screen pixels. Pitch is clamped
// short of straight up/down so the view basis never degenerates.
func (c *Craft) Look(dx, dy float64) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}
	c.updateVectors()
}

func (c *Craft) updateVectors() {
	yaw := float64(mgl32.DegToRad(float32(c.Yaw)))
	pitch := float64(mgl32.DegToRad(float32(c.Pitch)))

	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.Right = c.Front.Cross(worldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// Thrust accelerates along the view direction; Up/Down are world-vertical.
func (c *Craft) Thrust(in Input, speed, boost, dt float32) {
	var direction mgl32.Vec3
	if in.Forward {
		direction = direction.Add(c.Front)
	}
	if in.Back {
		direction = direction.Sub(c.Front)
	}
	if in.Left {
		direction = direction.Sub(c.Right)
	}
	if in.Right {
		direction = direction.Add(c.Right)
	}
	if in.Up {
		direction = direction.Add(worldUp)
	}
	if in.Down {
		direction = direction.Sub(worldUp)
	}
	if direction.Len() == 0 {
		return
	}

	if in.Boost {
		speed *= boost
	}
	c.Velocity = c.Velocity.Add(direction.Normalize().Mul(speed * dt))
}

// Tick advances one fixed physics step and keeps the craft Clearance above
// ground. A nil ground means open space.
func (c *Craft) Tick(ground GroundFunc) {
	c.previous = c.Position
	c.Velocity = c.Velocity.Mul(1 - c.Damping)
	c.Position = c.Position.Add(c.Velocity)

	c.Grounded = false
	if ground == nil {
		return
	}
	floor := ground(c.Position) + c.Clearance
	if c.Position.Y() < floor {
		c.Position[1] = floor
		if c.Velocity.Y() < 0 {
			c.Velocity[1] = 0
		}
		c.Grounded = true
	}
}

// Altitude is the height above ground, negative when below it.
func (c *Craft) Altitude(ground GroundFunc) float32 {
	if ground == nil {
		return float32(math.Inf(1))
	}
	return c.Position.Y() - ground(c.Position)
}

// Interpolated blends the last two ticks for rendering between them.
func (c *Craft) Interpolated(alpha float32) mgl32.Vec3 {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return c.Position.Sub(c.previous).Mul(alpha).Add(c.previous)
}

func (c *Craft) View(alpha float32) mgl32.Mat4 {
	eye := c.Interpolated(alpha)
	return mgl32.LookAtV(eye, eye.Add(c.Front), c.Up)
}
