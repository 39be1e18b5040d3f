package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"SpacecraftGolang/config"
	"SpacecraftGolang/flight"
	"SpacecraftGolang/render"
	"SpacecraftGolang/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	craft           *flight.Craft
	drawOptions     render.DrawOptions
	lastX           float64
	lastY           float64
	firstMouse      bool = true
	deltaTime       float32
	previousFrame   time.Time = time.Now()
	fps             float64
	fpsString       string
	frameCount      int       = 0
	startTime       time.Time = time.Now() // for FPS display
	monitor         *glfw.Monitor
	tickAccumulator float32
	showDebug       bool = true
)

func initOpenGL3D() {
	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize OpenGL:", err)
	}
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.75, 0.85, 0.95, 1)
}

func projectionMatrix(width, height int) mgl32.Mat4 {
	aspectRatio := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(fieldOfView), aspectRatio, nearClipPlane, farClipPlane)
}

func OnWindowResize(w *glfw.Window, width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// buildWorld generates the land and water layers from the current config.
func buildWorld() (land, water *terrain.Terrain, err error) {
	src, err := config.NewSource(config.NoiseProvider, config.Seed)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	landCfg, waterCfg := config.LandTerrain(), config.WaterTerrain()
	land, err = terrain.NewParallel(terrain.NewLayerField(src, landCfg), landCfg, config.Workers)
	if err != nil {
		return nil, nil, fmt.Errorf("land: %w", err)
	}
	water, err = terrain.NewParallel(terrain.NewLayerField(src, waterCfg), waterCfg, config.Workers)
	if err != nil {
		return nil, nil, fmt.Errorf("water: %w", err)
	}
	fmt.Printf("Generated %d land and %d water vertices in %.2fs (%s noise, seed %d)\n",
		land.Mesh.Len(), water.Mesh.Len(), time.Since(start).Seconds(), config.NoiseProvider, config.Seed)
	return land, water, nil
}

func main() {
	config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	land, water, err := buildWorld()
	if err != nil {
		log.Fatalln(err)
	}
	ground := func(p mgl32.Vec3) float32 {
		h, _ := terrain.HighestSurface(p, land, water)
		return h
	}

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	window, err := glfw.CreateWindow(config.WindowWidth, config.WindowHeight, "Spacecraft in Go", nil, nil)
	if err != nil {
		log.Fatalln(err)
	}
	window.MakeContextCurrent()
	window.SetFramebufferSizeCallback(OnWindowResize)
	if config.Vsync {
		glfw.SwapInterval(1)
	}
	initOpenGL3D()

	program, err := render.NewTerrainProgram()
	if err != nil {
		log.Fatalln(err)
	}
	defer program.Delete()

	landBuffers, err := render.UploadMesh(land.Mesh)
	if err != nil {
		log.Fatalln(err)
	}
	defer landBuffers.Delete()
	waterBuffers, err := render.UploadMesh(water.Mesh)
	if err != nil {
		log.Fatalln(err)
	}
	defer waterBuffers.Delete()

	textures := render.NewTextureRegistry()
	defer textures.Delete()
	landOptions := render.DrawOptions{}
	if config.TexturePath != "" {
		if landOptions.Texture, err = textures.Load("land", config.TexturePath); err != nil {
			log.Println(err)
		}
	}

	sky, err := render.NewSky()
	if err != nil {
		log.Fatalln(err)
	}
	defer sky.Delete()

	ui, err := newHUD()
	if err != nil {
		log.Fatalln(err)
	}
	defer ui.delete()

	craft = flight.NewCraft(spawnPosition)
	craft.Sensitivity = config.MouseSensitivity
	craft.Damping = damping
	craft.Clearance = groundClearance

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(mouseMoveCallback)
	window.SetKeyCallback(input)

	var waterOffset float32
	worldStart := time.Now()
	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		deltaTime = float32(time.Since(previousFrame).Seconds())
		previousFrame = time.Now()
		tickAccumulator += deltaTime
		glfw.PollEvents()

		updateFPS()
		movement(window)
		for tickAccumulator >= tickUpdateRate {
			craft.Tick(ground)
			tickAccumulator -= tickUpdateRate
		}

		// breathing water: move the mesh by the change since last frame
		offset := terrain.BreathingOffset(time.Since(worldStart).Seconds(), float32(config.WaterBreathAmplitude), float32(config.WaterBreathPeriod))
		water.Mesh.ApplyVerticalOffset(offset - waterOffset)
		waterOffset = offset
		waterBuffers.Sync(water.Mesh)

		width, height := window.GetFramebufferSize()
		if width == 0 || height == 0 {
			window.SwapBuffers()
			continue
		}
		projection := projectionMatrix(width, height)
		alpha := tickAccumulator / tickUpdateRate
		view := craft.View(alpha)

		sky.Draw(projection, view)

		program.Use(projection, view, craft.Interpolated(alpha), lightDirection)
		landOptions.Mode = drawOptions.Mode
		landBuffers.Draw(program, landOptions)
		waterBuffers.Draw(program, render.DrawOptions{Mode: drawOptions.Mode})

		if showDebug {
			if err := ui.update(land, water); err != nil {
				log.Println(err)
			}
			ui.draw(width, height)
		}
		window.SwapBuffers()
		frameCount++
	}
}
