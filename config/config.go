// Package config loads the raycaster settings from a TOML file, environment
// variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"raycaster/vmath"
	"raycaster/world"
)

// ErrInvalid marks a configuration value that is missing or out of range.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes environment overrides, e.g. RAYCASTER_SCREEN_WD.
const EnvPrefix = "RAYCASTER"

const (
	defaultFov         = 90.0
	defaultWallHtScale = 1.0
)

// Vec is a 2D vector written as an inline table, { x = 1.0, y = 0.0 }.
type Vec struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

func (v Vec) Vector2() vmath.Vector2 {
	return vmath.V2(v.X, v.Y)
}

type Screen struct {
	Wd int `mapstructure:"wd"`
	Ht int `mapstructure:"ht"`
}

type Assets struct {
	// Tex lists wall textures, Tex[i] is texture id i
	Tex []string `mapstructure:"tex"`
	Map string   `mapstructure:"map"`
	// TextureSize resamples all textures to a square of this size, 0 keeps
	// their own size.
	TextureSize int `mapstructure:"texture_size"`
}

type Player struct {
	Fov         float64 `mapstructure:"fov"`
	Speed       float64 `mapstructure:"speed"`
	RotateSpeed float64 `mapstructure:"rotate_speed"`
	InitialDir  Vec     `mapstructure:"initial_dir"`
	InitialPos  Vec     `mapstructure:"initial_pos"`
}

type Misc struct {
	FloorTex    int     `mapstructure:"floor_tex"`
	WallHtScale float64 `mapstructure:"wall_ht_scale"`
	Debug       bool    `mapstructure:"debug"`
}

// Config is the full set of settings.
type Config struct {
	Screen Screen `mapstructure:"screen"`
	Assets Assets `mapstructure:"assets"`
	Player Player `mapstructure:"player"`
	Misc   Misc   `mapstructure:"misc"`
}

// required keys have no default
var required = []string{
	"screen.wd",
	"screen.ht",
	"assets.tex",
	"assets.map",
	"player.speed",
	"player.initial_dir.x",
	"player.initial_dir.y",
	"player.initial_pos.x",
	"player.initial_pos.y",
	"misc.floor_tex",
}

var optional = []string{
	"assets.texture_size",
	"player.fov",
	"player.rotate_speed",
	"misc.wall_ht_scale",
	"misc.debug",
}

// flag name -> config key
var flagKeys = map[string]string{
	"width":  "screen.wd",
	"height": "screen.ht",
	"debug":  "misc.debug",
}

// RegisterFlags adds the flags understood by Load to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "config.toml", "path of the TOML configuration file")
	fs.Int("width", 0, "screen width in pixels, overrides screen.wd")
	fs.Int("height", 0, "screen height in pixels, overrides screen.ht")
	fs.Bool("debug", false, "verbose logging, overrides misc.debug")
}

// Load reads the configuration file at path. Values are taken, highest
// priority first, from flags set on fs, RAYCASTER_* environment variables,
// the file, then defaults. fs may be nil. Relative asset paths are resolved
// against the directory of the file. The result is validated.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range append(required, optional...) {
		// make env-only keys visible to Unmarshal
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetDefault("player.fov", defaultFov)
	v.SetDefault("misc.wall_ht_scale", defaultWallHtScale)
	v.SetDefault("misc.debug", false)
	v.SetDefault("assets.texture_size", 0)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	for _, key := range required {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalid, key)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if !v.IsSet("player.rotate_speed") {
		cfg.Player.RotateSpeed = cfg.Player.Speed
	}

	cfg.resolvePaths(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i, p := range c.Assets.Tex {
		c.Assets.Tex[i] = abs(p)
	}
	c.Assets.Map = abs(c.Assets.Map)
}

func invalid(key string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalid, key, fmt.Sprintf(format, args...))
}

// Validate checks ranges and consistency of the settings.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Wd <= 0:
		return invalid("screen.wd", "must be positive, got %d", c.Screen.Wd)
	case c.Screen.Ht <= 0:
		return invalid("screen.ht", "must be positive, got %d", c.Screen.Ht)
	case len(c.Assets.Tex) == 0:
		return invalid("assets.tex", "must list at least one texture")
	case len(c.Assets.Tex) > world.MaxTextures:
		return invalid("assets.tex", "lists %d textures, at most %d allowed", len(c.Assets.Tex), world.MaxTextures)
	case c.Assets.Map == "":
		return invalid("assets.map", "must not be empty")
	case c.Assets.TextureSize < 0:
		return invalid("assets.texture_size", "must not be negative, got %d", c.Assets.TextureSize)
	case !(c.Player.Fov > 0 && c.Player.Fov < 180):
		return invalid("player.fov", "must be between 0 and 180, got %v", c.Player.Fov)
	case !(c.Player.Speed > 0):
		return invalid("player.speed", "must be positive, got %v", c.Player.Speed)
	case !(c.Player.RotateSpeed > 0):
		return invalid("player.rotate_speed", "must be positive, got %v", c.Player.RotateSpeed)
	case c.Player.InitialDir.Vector2().LenSq() == 0:
		return invalid("player.initial_dir", "must not be zero")
	case c.Misc.FloorTex < 0 || c.Misc.FloorTex >= len(c.Assets.Tex):
		return invalid("misc.floor_tex", "must index assets.tex, got %d of %d", c.Misc.FloorTex, len(c.Assets.Tex))
	case !(c.Misc.WallHtScale > 0):
		return invalid("misc.wall_ht_scale", "must be positive, got %v", c.Misc.WallHtScale)
	}
	return nil
}

// Clone returns a deep copy, so hosts can adjust settings without touching
// the loaded config.
func (c *Config) Clone() (*Config, error) {
	dst := &Config{}
	if err := copier.CopyWithOption(dst, c, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone config: %w", err)
	}
	return dst, nil
}
