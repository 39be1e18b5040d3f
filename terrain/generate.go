package terrain

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// verticesPerCell: two triangles, no shared vertices.
const verticesPerCell = 6

type corner struct {
	position mgl32.Vec3
	raw      float64
	uv       mgl32.Vec2
}

type grid struct {
	field Field
	cfg   Config
	step  float64
	cell  float32
}

func newGrid(field Field, cfg Config) grid {
	return grid{field: field, cfg: cfg, step: cfg.sampleStep(), cell: cfg.cellSize()}
}

func (g grid) corner(i, j int) corner {
	s := g.field.Sample(float64(i)*g.step, float64(j)*g.step)

	half := g.cfg.Extent / 2
	x := float32(i)*g.cell - half + g.cfg.Origin.X()
	z := float32(j)*g.cell - half + g.cfg.Origin.Z()
	y := g.cfg.HeightMultiplier*float32(s.Elevation) + g.cfg.Origin.Y()

	res := float32(g.cfg.Resolution)
	return corner{
		position: mgl32.Vec3{x, y, z},
		raw:      s.Raw,
		uv:       mgl32.Vec2{float32(i) / res, float32(j) / res},
	}
}

// tessellateRow writes the cells (i, 0..res-1) into their fixed slots of m.
func (g grid) tessellateRow(m *Mesh, i int) {
	res := g.cfg.Resolution
	for j := 0; j < res; j++ {
		c00 := g.corner(i, j)
		c10 := g.corner(i+1, j)
		c01 := g.corner(i, j+1)
		c11 := g.corner(i+1, j+1)

		k := (i*res + j) * verticesPerCell
		g.triangle(m, k, c00, c10, c11)
		g.triangle(m, k+3, c00, c11, c01)
	}
}

func (g grid) triangle(m *Mesh, k int, a, b, c corner) {
	n := faceNormal(a.position, b.position, c.position)
	for idx, v := range [3]corner{a, b, c} {
		m.setVertex(k+idx, v, n, Classify(v.raw, g.cfg.IsWater))
	}
}

// faceNormal is the negated cross of the two edges leaving a, which points up
// for the (c00, c10, c11) / (c00, c11, c01) winding.
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a)).Mul(-1)
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return n
}

// Generate tessellates cfg.Resolution² cells into a flat-shaded triangle list.
func Generate(field Field, cfg Config) (*Mesh, error) {
	if err := cfg.validateFor(field); err != nil {
		return nil, err
	}

	g := newGrid(field, cfg)
	m := newMesh(cfg.Resolution * cfg.Resolution * verticesPerCell)
	for i := 0; i < cfg.Resolution; i++ {
		g.tessellateRow(m, i)
	}
	return m, nil
}

// GenerateParallel splits rows across workers. Each row owns a fixed range of
// the output, so the result is identical to Generate. field must be safe for
// concurrent reads.
func GenerateParallel(field Field, cfg Config, workers int) (*Mesh, error) {
	if err := cfg.validateFor(field); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	g := newGrid(field, cfg)
	m := newMesh(cfg.Resolution * cfg.Resolution * verticesPerCell)

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				g.tessellateRow(m, i)
			}
		}()
	}
	for i := 0; i < cfg.Resolution; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	return m, nil
}
