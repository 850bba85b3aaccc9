// Package config loads resampling parameters from TOML files.
package config

import (
	"fmt"
	"log"
	"math/rand"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/meshio"
	"github.com/philipparndt/meshsample/pkg/remesh"
)

// Params are the tunable parameters of a resampling run
type Params struct {
	Target       int        `toml:"target"`
	Spacing      float64    `toml:"spacing"`
	TopFace      bool       `toml:"top_face"`
	CosThreshold float64    `toml:"cos_threshold"`
	Axis         [3]float64 `toml:"axis"`
	Simplify     float64    `toml:"simplify"`
	Sampler      string     `toml:"sampler"`
	Jitter       float64    `toml:"jitter"`
	Seed         int64      `toml:"seed"`
	Workers      int        `toml:"workers"`

	Output Output `toml:"output"`
}

// Output mirrors meshio.Output for parameter files
type Output struct {
	Dir      string `toml:"dir"`
	Name     string `toml:"name"`
	Vert     bool   `toml:"vert"`
	Triv     bool   `toml:"triv"`
	OBJ      bool   `toml:"obj"`
	STL      bool   `toml:"stl"`
	GeoJSON  bool   `toml:"geojson"`
	Manifest bool   `toml:"manifest"`
}

// Default returns the built-in parameters
func Default() Params {
	return Params{
		Target:       remesh.DefaultTarget,
		Spacing:      remesh.DefaultSpacing,
		CosThreshold: remesh.DefaultCosThreshold,
		Axis:         [3]float64{remesh.UpAxis.X, remesh.UpAxis.Y, remesh.UpAxis.Z},
		Sampler:      string(remesh.GridSampler),
		Jitter:       remesh.DefaultJitter,
		Seed:         1,
		Workers:      runtime.NumCPU(),
		Output: Output{
			Dir:  ".",
			Vert: true,
			Triv: true,
			OBJ:  true,
		},
	}
}

// Load reads a TOML file over the defaults; keys missing from the file keep their default
func Load(path string) (Params, error) {
	p := Default()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return p, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return p, fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
	}
	return p, nil
}

// Validate checks ranges and names
func (p Params) Validate() error {
	if p.Target <= 0 {
		return fmt.Errorf("target must be positive, got %d", p.Target)
	}
	if p.Spacing <= 0 {
		return fmt.Errorf("spacing must be positive, got %g", p.Spacing)
	}
	if p.CosThreshold < -1 || p.CosThreshold > 1 {
		return fmt.Errorf("cos_threshold must be within [-1, 1], got %g", p.CosThreshold)
	}
	if p.TopFace && p.axis().Length() == 0 {
		return fmt.Errorf("axis must be non-zero")
	}
	if p.Jitter < 0 || p.Jitter > 0.5 {
		return fmt.Errorf("jitter must be within [0, 0.5], got %g", p.Jitter)
	}
	if p.Simplify < 0 {
		return fmt.Errorf("simplify must not be negative, got %g", p.Simplify)
	}
	if _, err := remesh.ParseSamplerKind(p.Sampler); err != nil {
		return err
	}
	return nil
}

func (p Params) axis() geometry.Vector3 {
	return geometry.NewVector3(p.Axis[0], p.Axis[1], p.Axis[2])
}

// Options converts the parameters into pipeline options
func (p Params) Options(logger *log.Logger) remesh.Options {
	sampler, _ := remesh.ParseSamplerKind(p.Sampler)
	return remesh.Options{
		Target:       p.Target,
		Spacing:      p.Spacing,
		TopFace:      p.TopFace,
		Axis:         p.axis(),
		CosThreshold: p.CosThreshold,
		Simplify:     p.Simplify,
		Sampler:      sampler,
		Jitter:       p.Jitter,
		Rand:         rand.New(rand.NewSource(p.Seed)),
		Workers:      p.Workers,
		Logger:       logger,
	}
}

// MeshOutput converts the output section
func (p Params) MeshOutput() meshio.Output {
	o := p.Output
	return meshio.Output{
		Dir:      o.Dir,
		Name:     o.Name,
		Vert:     o.Vert,
		Triv:     o.Triv,
		OBJ:      o.OBJ,
		STL:      o.STL,
		GeoJSON:  o.GeoJSON,
		Manifest: o.Manifest,
	}
}
