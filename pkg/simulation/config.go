package simulation

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/thomashancock/Solar-System-Simulator/pkg/physics"
)

// EnvPrefix is prepended to environment overrides, e.g. SOLARSIM_SIMULATION_DT.
const EnvPrefix = "solarsim"

// --- Environment configuration ---
type Config struct {
	SurfaceSize  int
	TimeStep     float64
	TPS          int
	Central      *physics.Central
	RenderRadius float64
	FontScale    float64
	LogLevel     string
	Catalog      []Planet
}

type fileConfig struct {
	Surface struct {
		Size int `mapstructure:"size"`
	} `mapstructure:"surface"`
	Simulation struct {
		Dt  float64 `mapstructure:"dt"`
		TPS int     `mapstructure:"tps"`
	} `mapstructure:"simulation"`
	Central struct {
		G    float64 `mapstructure:"g"`
		Mass float64 `mapstructure:"mass"`
	} `mapstructure:"central"`
	Render struct {
		Radius    float64 `mapstructure:"radius"`
		FontScale float64 `mapstructure:"font_scale"`
	} `mapstructure:"render"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Bodies []BodyConfig `mapstructure:"bodies"`
}

// BodyConfig is one catalog entry as written in a config file.
type BodyConfig struct {
	Name     string  `mapstructure:"name"`
	Color    string  `mapstructure:"color"`
	Speed    float64 `mapstructure:"speed"`
	RadiusAU float64 `mapstructure:"radius_au"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("surface.size", 720)
	v.SetDefault("simulation.dt", Day)
	v.SetDefault("simulation.tps", 60)
	v.SetDefault("central.g", physics.G)
	v.SetDefault("central.mass", physics.SolarMass)
	v.SetDefault("render.radius", DefaultRenderRadius)
	v.SetDefault("render.font_scale", 2.0)
	v.SetDefault("log.level", "info")
}

// LoadConfig reads defaults, the optional file at path and SOLARSIM_*
// environment variables, in increasing priority. Without a "bodies" list
// the default planet catalog is used.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg := &Config{
		SurfaceSize:  fc.Surface.Size,
		TimeStep:     fc.Simulation.Dt,
		TPS:          fc.Simulation.TPS,
		Central:      &physics.Central{G: fc.Central.G, Mass: fc.Central.Mass},
		RenderRadius: fc.Render.Radius,
		FontScale:    fc.Render.FontScale,
		LogLevel:     strings.ToLower(fc.Log.Level),
	}

	if len(fc.Bodies) == 0 {
		cfg.Catalog = DefaultCatalog()
	} else {
		catalog, err := catalogFromConfig(fc.Bodies)
		if err != nil {
			return nil, err
		}
		cfg.Catalog = catalog
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SurfaceSize <= 0 {
		return fmt.Errorf("config: surface.size must be positive, got %d", c.SurfaceSize)
	}
	if !(c.TimeStep > 0) {
		return fmt.Errorf("config: %w, got %v", ErrInvalidTimeStep, c.TimeStep)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: simulation.tps must be positive, got %d", c.TPS)
	}
	if err := c.Central.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !(c.RenderRadius > 0) {
		return fmt.Errorf("config: render.radius must be positive, got %v", c.RenderRadius)
	}
	if !(c.FontScale > 0) {
		return fmt.Errorf("config: render.font_scale must be positive, got %v", c.FontScale)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.LogLevel)
	}
	if len(c.Catalog) == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

func catalogFromConfig(bodies []BodyConfig) ([]Planet, error) {
	catalog := make([]Planet, 0, len(bodies))
	seen := make(map[string]struct{}, len(bodies))
	for i, b := range bodies {
		if b.Name == "" {
			return nil, fmt.Errorf("config: bodies[%d] has no name", i)
		}
		if _, ok := seen[b.Name]; ok {
			return nil, fmt.Errorf("config: %w: %q", ErrDuplicateBody, b.Name)
		}
		seen[b.Name] = struct{}{}
		if !(b.RadiusAU > 0) {
			return nil, fmt.Errorf("config: body %q: radius_au must be positive, got %v", b.Name, b.RadiusAU)
		}
		c, err := ParseColor(b.Color)
		if err != nil {
			return nil, fmt.Errorf("config: body %q: %w", b.Name, err)
		}
		catalog = append(catalog, Planet{
			Name:   b.Name,
			Color:  c,
			Speed:  b.Speed,
			Radius: b.RadiusAU * AU,
		})
	}
	return catalog, nil
}

// ParseColor accepts one of the named catalog colours or a #rrggbb value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hc, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unknown colour %q: %w", s, err)
	}
	r, g, b := hc.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
