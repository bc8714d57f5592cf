package field

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"
)

var (
	ErrInvalidConfig = errors.New("invalid field config")
	ErrUnknownPreset = errors.New("unknown preset")
)

// Variant selects between the two visual treatments the field has shipped
// with. They differ only in compositing and link colouring.
type Variant int

const (
	// VariantNeon is the canonical look: additive glow, links shaded
	// between the hues of their two endpoints.
	VariantNeon Variant = iota
	// VariantClassic keeps the earlier look: normal compositing and
	// fixed cyan links.
	VariantClassic
)

func (v Variant) String() string {
	switch v {
	case VariantNeon:
		return "neon"
	case VariantClassic:
		return "classic"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// LinkStyle chooses how connective lines are coloured.
type LinkStyle int

const (
	LinkGradient LinkStyle = iota
	LinkSolid
)

// Config holds every tunable of the particle field.
type Config struct {
	Variant Variant

	MaxParticles     int
	SpawnProbability float64 // per frame
	SpawnJitter      float64 // logical px either side of the pointer
	SpeedRange       float64 // initial velocity components in [-SpeedRange, SpeedRange]
	RadiusMin        float64
	RadiusMax        float64
	LifeMin          float64 // ms
	LifeMax          float64 // ms

	Attraction    float64 // fraction of pointer displacement added to velocity per frame
	Damping       float64 // velocity multiplier per frame
	VelocityScale float64 // position += velocity * dt * VelocityScale

	GlowScale float64 // glow radius as a multiple of particle radius

	LinkDistance float64 // logical px; pairs closer than this are linked
	LinkAlpha    float64 // link opacity at zero distance
	LinkStyle    LinkStyle
	LinkColor    HSLA // used by LinkSolid

	TrailColor color.NRGBA // translucent overpaint applied every frame
	Background color.NRGBA // solid prime colour

	Blend   BlendMode
	Palette []HSLA

	DriftStrength float64 // Perlin wander force; 0 disables it
	DriftScale    float64 // noise frequency per logical px
}

// Default returns the canonical configuration.
func Default() Config {
	return Config{
		Variant:          VariantNeon,
		MaxParticles:     28,
		SpawnProbability: 0.6,
		SpawnJitter:      8,
		SpeedRange:       0.6,
		RadiusMin:        1.6,
		RadiusMax:        4.6,
		LifeMin:          800,
		LifeMax:          1800,
		Attraction:       0.0006,
		Damping:          0.985,
		VelocityScale:    0.06,
		GlowScale:        6,
		LinkDistance:     50,
		LinkAlpha:        0.26,
		LinkStyle:        LinkGradient,
		LinkColor:        HSLA{H: 190, S: 100, L: 60, A: 1},
		TrailColor:       color.NRGBA{R: 2, G: 6, B: 12, A: 56}, // alpha 0.22
		Background:       color.NRGBA{R: 2, G: 6, B: 12, A: 255},
		Blend:            BlendAdditive,
		Palette:          NeonPalette(),
		DriftScale:       0.004,
	}
}

// Neon is Default under its preset name.
func Neon() Config { return Default() }

// Classic is Default with the classic variant applied.
func Classic() Config { return Default().WithVariant(VariantClassic) }

// WithVariant returns c with the variant's blend mode and link style applied.
func (c Config) WithVariant(v Variant) Config {
	c.Variant = v
	switch v {
	case VariantClassic:
		c.Blend = BlendNormal
		c.LinkStyle = LinkSolid
	default:
		c.Variant = VariantNeon
		c.Blend = BlendAdditive
		c.LinkStyle = LinkGradient
	}
	return c
}

var presets = map[string]func() Config{
	"neon":    Neon,
	"classic": Classic,
}

// PresetByName looks up a named preset, case-insensitively.
func PresetByName(name string) (Config, error) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return fn(), nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LinkOpacity is the opacity of a link between two particles dist apart.
// It falls linearly from LinkAlpha at 0 to 0 at LinkDistance.
func (c Config) LinkOpacity(dist float64) float64 {
	if c.LinkDistance <= 0 || dist >= c.LinkDistance {
		return 0
	}
	if dist < 0 {
		dist = 0
	}
	return c.LinkAlpha * (1 - dist/c.LinkDistance)
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.MaxParticles <= 0:
		return fmt.Errorf("%w: MaxParticles must be positive, got %d", ErrInvalidConfig, c.MaxParticles)
	case c.SpawnProbability < 0 || c.SpawnProbability > 1:
		return fmt.Errorf("%w: SpawnProbability must be in [0,1], got %g", ErrInvalidConfig, c.SpawnProbability)
	case c.SpawnJitter < 0:
		return fmt.Errorf("%w: SpawnJitter must not be negative, got %g", ErrInvalidConfig, c.SpawnJitter)
	case c.SpeedRange < 0:
		return fmt.Errorf("%w: SpeedRange must not be negative, got %g", ErrInvalidConfig, c.SpeedRange)
	case c.RadiusMin <= 0 || c.RadiusMax < c.RadiusMin:
		return fmt.Errorf("%w: radius range [%g,%g]", ErrInvalidConfig, c.RadiusMin, c.RadiusMax)
	case c.LifeMin <= 0 || c.LifeMax < c.LifeMin:
		return fmt.Errorf("%w: life range [%g,%g]", ErrInvalidConfig, c.LifeMin, c.LifeMax)
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("%w: Damping must be in (0,1], got %g", ErrInvalidConfig, c.Damping)
	case c.VelocityScale < 0:
		return fmt.Errorf("%w: VelocityScale must not be negative, got %g", ErrInvalidConfig, c.VelocityScale)
	case c.GlowScale < 0:
		return fmt.Errorf("%w: GlowScale must not be negative, got %g", ErrInvalidConfig, c.GlowScale)
	case c.LinkDistance < 0:
		return fmt.Errorf("%w: LinkDistance must not be negative, got %g", ErrInvalidConfig, c.LinkDistance)
	case c.LinkAlpha < 0 || c.LinkAlpha > 1:
		return fmt.Errorf("%w: LinkAlpha must be in [0,1], got %g", ErrInvalidConfig, c.LinkAlpha)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	case c.DriftStrength < 0:
		return fmt.Errorf("%w: DriftStrength must not be negative, got %g", ErrInvalidConfig, c.DriftStrength)
	case c.DriftStrength > 0 && c.DriftScale <= 0:
		return fmt.Errorf("%w: DriftScale must be positive when drift is enabled", ErrInvalidConfig)
	}
	return nil
}
