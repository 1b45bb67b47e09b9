package inpaint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/inpaint/difference"
	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/priority"
)

// ErrBadConfig wraps every configuration validation failure.
var ErrBadConfig = errors.New("inpaint: invalid config")

// KDTreeColor names the k-d tree stage over patch mean colors.
const KDTreeColor = "kdtree-color"

// defaultStageK is the number of candidates a non-final stage keeps when
// StageK is not set.
const defaultStageK = 25

// Config is the explicit run configuration. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// PatchHalfWidth is the radius of compared patches; a patch is
	// (2·PatchHalfWidth+1)² pixels.
	PatchHalfWidth int `yaml:"patch_half_width"`
	// FillHalfWidth is the radius painted per fill. -1 means PatchHalfWidth;
	// 0 paints the target pixel alone.
	FillHalfWidth int `yaml:"fill_half_width"`
	// PriorityFunction is "onion-peel", "criminisi" or "depth".
	PriorityFunction string `yaml:"priority_function"`
	// DifferenceFunctors lists the search stages, coarse to fine. Each entry
	// is a difference functor name or "kdtree-color".
	DifferenceFunctors []string `yaml:"difference_functors"`
	// StageK is the number of candidates kept by each non-final stage.
	StageK []int `yaml:"stage_k"`
	// BoundaryConnectivity is 4 or 8.
	BoundaryConnectivity int `yaml:"boundary_connectivity"`
	// BlurVariance smooths the structure planes of the criminisi and depth
	// priorities. 0 disables smoothing.
	BlurVariance float64 `yaml:"blur_variance"`
	// DepthChannel is the image channel read by the depth priority.
	DepthChannel int `yaml:"depth_channel"`
	// DepthThreshold scales the depth continuity term; 0 disables it.
	DepthThreshold float64 `yaml:"depth_threshold"`
	// AcceptanceThreshold, if > 0, rejects fills whose best score exceeds it.
	AcceptanceThreshold float64 `yaml:"acceptance_threshold"`
	// Painter is "hole-list" or "masked-grid".
	Painter string `yaml:"painter"`
	// RecordCandidates is how many ranked candidates to keep per iteration
	// for PotentialCandidatePairs; 0 keeps none.
	RecordCandidates int `yaml:"record_candidates"`
	// HoleValue and ValidValue are the mask sentinels.
	HoleValue  uint8 `yaml:"hole_value"`
	ValidValue uint8 `yaml:"valid_value"`
}

// DefaultConfig returns onion-peel priority, a single SSD stage, patch
// half-width 4 and the default mask sentinels.
func DefaultConfig() Config {
	return Config{
		PatchHalfWidth:       4,
		FillHalfWidth:        -1,
		PriorityFunction:     "onion-peel",
		DifferenceFunctors:   []string{"ssd"},
		BoundaryConnectivity: 4,
		BlurVariance:         2,
		DepthChannel:         3,
		Painter:              "hole-list",
		HoleValue:            255,
		ValidValue:           0,
	}
}

// Fill returns the effective fill half-width.
func (c Config) Fill() int {
	if c.FillHalfWidth < 0 {
		return c.PatchHalfWidth
	}
	return c.FillHalfWidth
}

// Connectivity maps BoundaryConnectivity onto gridgraph.
func (c Config) Connectivity() gridgraph.Connectivity {
	if c.BoundaryConnectivity == 8 {
		return gridgraph.Conn8
	}
	return gridgraph.Conn4
}

// GridOptions returns the mask options described by c.
func (c Config) GridOptions() gridgraph.GridOptions {
	return gridgraph.GridOptions{HoleValue: c.HoleValue, ValidValue: c.ValidValue, Conn: c.Connectivity()}
}

// StageKs returns one keep-count per non-final stage, filling in defaults.
func (c Config) StageKs() []int {
	n := len(c.DifferenceFunctors) - 1
	if n <= 0 {
		return nil
	}
	if len(c.StageK) == n {
		return c.StageK
	}
	ks := make([]int, n)
	for i := range ks {
		ks[i] = defaultStageK
	}
	return ks
}

// Validate checks every field and returns the first problem wrapped in
// ErrBadConfig.
func (c Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrBadConfig, fmt.Sprintf(format, args...))
	}
	switch {
	case c.PatchHalfWidth < 1:
		return bad("patch_half_width must be at least 1, got %d", c.PatchHalfWidth)
	case c.FillHalfWidth < -1 || c.FillHalfWidth > c.PatchHalfWidth:
		return bad("fill_half_width must be in [-1, %d], got %d", c.PatchHalfWidth, c.FillHalfWidth)
	case !slices.Contains(priority.Names(), c.PriorityFunction):
		return bad("unknown priority_function %q", c.PriorityFunction)
	case len(c.DifferenceFunctors) == 0:
		return bad("difference_functors is empty")
	case len(c.StageK) != 0 && len(c.StageK) != len(c.DifferenceFunctors)-1:
		return bad("stage_k needs %d entries, got %d", len(c.DifferenceFunctors)-1, len(c.StageK))
	case c.BoundaryConnectivity != 4 && c.BoundaryConnectivity != 8:
		return bad("boundary_connectivity must be 4 or 8, got %d", c.BoundaryConnectivity)
	case c.BlurVariance < 0, c.DepthThreshold < 0, c.AcceptanceThreshold < 0:
		return bad("blur_variance, depth_threshold and acceptance_threshold must be non-negative")
	case c.DepthChannel < 0:
		return bad("depth_channel must be non-negative, got %d", c.DepthChannel)
	case c.Painter != "hole-list" && c.Painter != "masked-grid":
		return bad("unknown painter %q", c.Painter)
	case c.RecordCandidates < 0:
		return bad("record_candidates must be non-negative, got %d", c.RecordCandidates)
	case c.HoleValue == c.ValidValue:
		return bad("hole_value and valid_value must differ")
	}
	known := difference.Names()
	for _, name := range c.DifferenceFunctors {
		if name != KDTreeColor && !slices.Contains(known, name) {
			return bad("unknown difference functor %q", name)
		}
	}
	for i, k := range c.StageK {
		if k < 1 {
			return bad("stage_k[%d] must be positive, got %d", i, k)
		}
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("inpaint: read config: %w", err)
	}
	return ParseConfig(data)
}
