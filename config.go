package polyclean

import (
	"bufio"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config collects the tolerances of the cleaning operations, for callers that
// want to keep them in a file. The functions of this package take their
// tolerances as arguments and never consult a Config themselves.
type Config struct {
	// Vertices closer than this are merged by RemoveDuplicateVertices.
	DuplicateTolerance float64 `yaml:"duplicate_tolerance" toml:"duplicate_tolerance"`
	// Maximum deviation for ReducePoints.
	ReduceEpsilon float64 `yaml:"reduce_epsilon" toml:"reduce_epsilon"`
	ReduceIterate bool    `yaml:"reduce_iterate" toml:"reduce_iterate"`
	// Maximum turn, in radians, for RemoveColinearPoints.
	ColinearAngle float64 `yaml:"colinear_angle" toml:"colinear_angle"`
	// Snap distance for SnapEndpoints and TrimExtend.
	SnapEpsilon float64 `yaml:"snap_epsilon" toml:"snap_epsilon"`
	// Segments per arc for FlattenArcs; 0 picks a count per arc.
	FlattenSegments int `yaml:"flatten_segments" toml:"flatten_segments"`
	// Direction for SetDirection. It has no default: the zero value means
	// none was chosen.
	Direction Direction `yaml:"direction" toml:"direction"`
	// Workers for Batch; 0 uses all CPUs.
	Workers int `yaml:"workers" toml:"workers"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		DuplicateTolerance: 0,
		ReduceEpsilon:      1,
		ColinearAngle:      1e-6,
		SnapEpsilon:        20,
		FlattenSegments:    0,
	}
}

// Validate reports the first setting that no operation can work with.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"duplicate_tolerance", c.DuplicateTolerance},
		{"reduce_epsilon", c.ReduceEpsilon},
		{"colinear_angle", c.ColinearAngle},
		{"snap_epsilon", c.SnapEpsilon},
	} {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Errorf("%s: invalid tolerance %g", f.name, f.v)
		}
	}
	if c.Direction != 0 && !c.Direction.valid() {
		return errors.Errorf("direction: invalid value %d", int(c.Direction))
	}
	return nil
}

// Decoder decodes a document into a value.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc returns a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc adapts the constructor of a concrete decoder type.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

var (
	// YAML decodes strict YAML: unknown keys are errors.
	YAML = NewDecoderFunc(func(r io.Reader) *yaml.Decoder {
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d
	})
	// TOML decodes strict TOML: unknown keys are errors.
	TOML = NewDecoderFunc(func(r io.Reader) *toml.Decoder {
		return toml.NewDecoder(r).DisallowUnknownFields()
	})
)

// ReadConfig decodes a configuration from r. Settings missing from the
// document keep their values from [DefaultConfig].
func ReadConfig(r io.Reader, f DecoderFunc) (Config, error) {
	cfg := DefaultConfig()
	if err := f(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a configuration file. The format is chosen by extension:
// .yaml and .yml for YAML, .toml for TOML.
func LoadConfig(path string) (Config, error) {
	var f DecoderFunc
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f = YAML
	case ".toml":
		f = TOML
	default:
		return Config{}, errors.Errorf("%s: unsupported config format %q", path, ext)
	}
	fp, err := os.Open(path)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	defer fp.Close()
	cfg, err := ReadConfig(bufio.NewReader(fp), f)
	if err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}
