// Package config describes a scene of bounding volumes in YAML and builds it.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/bounds"
	"github.com/akmonengine/bounds/actor"
	"github.com/akmonengine/bounds/log"
	"github.com/akmonengine/bounds/scene"
	"github.com/akmonengine/bounds/screen"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is wrapped by every validation failure
var ErrInvalidScene = errors.New("invalid scene")

const (
	DefaultTileSize = 128
	DefaultGridSize = 1024
)

// Config holds a scene: how it is projected, its terrain and its volumes.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Seed     uint64 `yaml:"seed"`
	Workers  int    `yaml:"workers"`
	Plane    int    `yaml:"plane"`
	// TileSize is the edge of a terrain tile in world units
	TileSize int `yaml:"tile_size"`
	// GridCellSize enables the spatial grid for region queries when positive
	GridCellSize int `yaml:"grid_cell_size"`

	Viewport Viewport `yaml:"viewport"`
	// Camera is optional; without it the scene is projected orthographically
	Camera  *Camera  `yaml:"camera,omitempty"`
	Terrain *Terrain `yaml:"terrain,omitempty"`

	Volumes []Volume `yaml:"volumes"`
	Probes  [][2]int `yaml:"probes"`
}

type Viewport struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Camera struct {
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
	Up     [3]float64 `yaml:"up"`
	FovY   float64    `yaml:"fov"`
	Near   float64    `yaml:"near"`
	Far    float64    `yaml:"far"`
}

// Terrain is either flat at a fixed height, or a heightmap of corner heights per plane
type Terrain struct {
	Flat   *int      `yaml:"flat,omitempty"`
	Planes [][][]int `yaml:"planes,omitempty"`
}

type Volume struct {
	Name   string `yaml:"name"`
	Anchor Anchor `yaml:"anchor"`
	// Box is x1, x2, y1, y2, z1, z2
	Box [6]int `yaml:"box"`
}

// Anchor is a tile of the terrain grid when Tile is set, world coordinates otherwise
type Anchor struct {
	X    int     `yaml:"x"`
	Z    int     `yaml:"z"`
	Tile *[2]int `yaml:"tile,omitempty"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	LogLevel string
	Seed     uint64
	Workers  int
}

// Scene is a built configuration
type Scene struct {
	Scene  *scene.Scene
	Random *scene.PCG
	World  *bounds.World
	// Names maps every volume to its configured name
	Names map[*bounds.Volume]string
}

// Load reads a YAML config file
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a YAML config, rejecting unknown keys
func Decode(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Resolve applies CLI overrides, then fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.TileSize <= 0 {
		c.TileSize = DefaultTileSize
	}
	if c.Workers <= 0 {
		c.Workers = bounds.DEFAULT_WORKERS
	}
	if c.Camera != nil && c.Camera.Up == [3]float64{} {
		c.Camera.Up = [3]float64{0, 1, 0}
	}
}

// Validate checks the config can be built
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport size %dx%d must be positive", ErrInvalidScene, c.Viewport.Width, c.Viewport.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size %d must be positive", ErrInvalidScene, c.TileSize)
	}

	if cam := c.Camera; cam != nil {
		if cam.FovY <= 0 || cam.FovY >= 180 {
			return fmt.Errorf("%w: camera fov %v must be in (0, 180)", ErrInvalidScene, cam.FovY)
		}
		if cam.Near <= 0 || cam.Far <= cam.Near {
			return fmt.Errorf("%w: camera needs 0 < near < far, got near %v far %v", ErrInvalidScene, cam.Near, cam.Far)
		}
		if cam.Eye == cam.Target {
			return fmt.Errorf("%w: camera eye and target are the same point", ErrInvalidScene)
		}
	}

	if t := c.Terrain; t != nil {
		if t.Flat != nil && len(t.Planes) > 0 {
			return fmt.Errorf("%w: terrain is either flat or a heightmap", ErrInvalidScene)
		}
		for p, plane := range t.Planes {
			for x, row := range plane {
				if len(row) != len(plane[0]) {
					return fmt.Errorf("%w: terrain plane %d row %d has %d corners, want %d", ErrInvalidScene, p, x, len(row), len(plane[0]))
				}
			}
		}
	}

	names := make(map[string]struct{}, len(c.Volumes))
	for i, v := range c.Volumes {
		if v.Name == "" {
			return fmt.Errorf("%w: volume %d has no name", ErrInvalidScene, i)
		}
		if _, ok := names[v.Name]; ok {
			return fmt.Errorf("%w: duplicate volume name %q", ErrInvalidScene, v.Name)
		}
		names[v.Name] = struct{}{}
	}

	return nil
}

// Build validates the config and assembles the scene and its volumes
func (c *Config) Build(logger log.Log) (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := &scene.Scene{
		Projector:    c.projector(),
		Viewport:     screen.NewRect(c.Viewport.X, c.Viewport.Y, c.Viewport.Width, c.Viewport.Height),
		Terrain:      c.terrain(),
		CurrentPlane: c.Plane,
	}
	rng := scene.NewPCG(c.Seed)

	world := &bounds.World{Workers: c.Workers}
	if c.GridCellSize > 0 {
		world.Grid = bounds.NewSpatialGrid(c.GridCellSize, DefaultGridSize)
	}

	names := make(map[*bounds.Volume]string, len(c.Volumes))
	for _, v := range c.Volumes {
		b := v.Box
		volume := bounds.New(s, c.anchor(v.Anchor), rng, b[0], b[1], b[2], b[3], b[4], b[5],
			bounds.WithID(VolumeID(v.Name)),
			bounds.WithLogger(logger.With(log.String("name", v.Name))),
		)
		world.AddVolume(volume)
		names[volume] = v.Name
	}

	return &Scene{Scene: s, Random: rng, World: world, Names: names}, nil
}

// VolumeID derives a stable identifier from a volume name
func VolumeID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("bounds/volume/"+name))
}

func (c *Config) projector() scene.Projector {
	if c.Camera == nil {
		return scene.Orthographic{}
	}

	cam := c.Camera
	camera := scene.NewCamera(
		mgl64.Vec3(cam.Eye),
		mgl64.Vec3(cam.Target),
		mgl64.Vec3(cam.Up),
		cam.FovY, cam.Near, cam.Far,
		c.Viewport.Width, c.Viewport.Height,
	)
	camera.Origin = screen.Point{X: c.Viewport.X, Y: c.Viewport.Y}
	return camera
}

func (c *Config) terrain() scene.Terrain {
	switch {
	case c.Terrain == nil:
		return nil
	case c.Terrain.Flat != nil:
		return scene.Flat(*c.Terrain.Flat)
	default:
		return &scene.Heightmap{TileSize: c.TileSize, Planes: c.Terrain.Planes}
	}
}

func (c *Config) anchor(a Anchor) actor.Anchor {
	if a.Tile != nil {
		return actor.Tile{GridX: a.Tile[0], GridZ: a.Tile[1], Size: c.TileSize}
	}
	return actor.Point{WorldX: a.X, WorldZ: a.Z}
}
