package main

import "github.com/go-gl/mathgl/mgl32"

const tickUpdateRate float32 = 1.0 / 60.0

var (
	thrustSpeed     float32 = 6
	boostMultiplier float32 = 3
	groundClearance float32 = 1.5
	damping         float32 = 0.35

	fieldOfView   float32 = 70
	nearClipPlane float32 = 0.1
	farClipPlane  float32 = 600

	lightDirection = mgl32.Vec3{-0.4, -1, -0.3}
	spawnPosition  = mgl32.Vec3{0, 40, 0}
)
