package simulation

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/thomashancock/Solar-System-Simulator/pkg/physics"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SurfaceSize != 720 || cfg.TimeStep != Day || cfg.TPS != 60 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Central.G != physics.G || cfg.Central.Mass != physics.SolarMass {
		t.Fatalf("unexpected central constants: %+v", cfg.Central)
	}
	if cfg.RenderRadius != DefaultRenderRadius || cfg.LogLevel != "info" {
		t.Fatalf("unexpected render/log defaults: %+v", cfg)
	}
	want := DefaultCatalog()
	if len(cfg.Catalog) != len(want) {
		t.Fatalf("catalog has %d entries, want %d", len(cfg.Catalog), len(want))
	}
	for i := range want {
		if cfg.Catalog[i] != want[i] {
			t.Errorf("catalog[%d] = %+v, want %+v", i, cfg.Catalog[i], want[i])
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "conf.toml", `
[surface]
size = 512

[simulation]
dt = 3600.0
tps = 30

[log]
level = "debug"

[[bodies]]
name = "vulcan"
color = "#ff8800"
speed = 50.0
radius_au = 0.5

[[bodies]]
name = "earth"
color = "green"
speed = 29.78
radius_au = 1.0
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SurfaceSize != 512 || cfg.TimeStep != 3600 || cfg.TPS != 30 || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	want := []Planet{
		{"vulcan", color.RGBA{0xff, 0x88, 0x00, 0xff}, 50, 0.5 * AU},
		{"earth", Green, 29.78, 1.0 * AU},
	}
	if len(cfg.Catalog) != len(want) {
		t.Fatalf("catalog = %+v", cfg.Catalog)
	}
	for i := range want {
		if cfg.Catalog[i] != want[i] {
			t.Errorf("catalog[%d] = %+v, want %+v", i, cfg.Catalog[i], want[i])
		}
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SOLARSIM_SIMULATION_DT", "43200")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TimeStep != 43200 {
		t.Fatalf("dt = %v, want 43200", cfg.TimeStep)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"zero dt", "[simulation]\ndt = 0.0\n", ErrInvalidTimeStep},
		{"duplicate body", "[[bodies]]\nname = \"a\"\ncolor = \"red\"\nradius_au = 1.0\n[[bodies]]\nname = \"a\"\ncolor = \"red\"\nradius_au = 2.0\n", ErrDuplicateBody},
		{"bad colour", "[[bodies]]\nname = \"a\"\ncolor = \"mauve-ish\"\nradius_au = 1.0\n", nil},
		{"zero radius", "[[bodies]]\nname = \"a\"\ncolor = \"red\"\nradius_au = 0.0\n", nil},
		{"unknown level", "[log]\nlevel = \"chatty\"\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, "conf.toml", tc.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("error %q is not %q", err, tc.want)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"saddlebrown", SaddleBrown, true},
		{"Cyan", Cyan, true},
		{"#8b4513", SaddleBrown, true},
		{"#00f", Blue, true},
		{"nope", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseColor(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
