package gridlib

import (
	"image/color"
	"math"
)

// TerrainKind identifies one entry of the fixed terrain catalog
type TerrainKind uint8

const (
	TerrainGrass TerrainKind = iota
	TerrainRoad
	TerrainDirt
	TerrainWater
	TerrainObstacle
)

// DefaultTerrain is what every cell starts as
const DefaultTerrain = TerrainGrass

// TerrainInfo describes a terrain kind: display name, fill color and the
// movement cost charged for stepping into a cell of that kind
type TerrainInfo struct {
	Name  string
	Color color.RGBA
	Cost  float64
}

// An infinite cost marks a terrain as impassable (Obstacle)
var catalog = [...]TerrainInfo{
	TerrainGrass:    {"Grass", color.RGBA{34, 139, 34, 255}, 1.0},
	TerrainRoad:     {"Road", color.RGBA{160, 160, 160, 255}, 0.5},
	TerrainDirt:     {"Dirt", color.RGBA{139, 69, 19, 255}, 2.0},
	TerrainWater:    {"Water", color.RGBA{30, 144, 255, 255}, 5.0},
	TerrainObstacle: {"Obstacle", color.RGBA{50, 50, 50, 255}, math.Inf(1)},
}

// Kinds returns every terrain kind in catalog order
func Kinds() []TerrainKind {
	ks := make([]TerrainKind, len(catalog))
	for i := range catalog {
		ks[i] = TerrainKind(i)
	}
	return ks
}

// Info returns the catalog entry for k
func (k TerrainKind) Info() TerrainInfo {
	if int(k) >= len(catalog) {
		return catalog[DefaultTerrain]
	}
	return catalog[k]
}

// Name returns the display name of k
func (k TerrainKind) Name() string { return k.Info().Name }

// Cost returns the movement cost of k
func (k TerrainKind) Cost() float64 { return k.Info().Cost }

// Color returns the base fill color of k
func (k TerrainKind) Color() color.RGBA { return k.Info().Color }

// Passable reports whether cells of this kind can ever be entered
func (k TerrainKind) Passable() bool { return !math.IsInf(k.Cost(), 1) }
