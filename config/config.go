package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/gridastar/grid"
)

// ErrInvalidScenario indicates a scenario failed validation.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Environment variables read by Load.
const (
	EnvMaxCost    = "GRIDPATH_MAX_COST"
	EnvPriority   = "GRIDPATH_PRIORITY"
	EnvHeuristic  = "GRIDPATH_HEURISTIC"
	EnvDirections = "GRIDPATH_DIRECTIONS"
)

// scenarioValidate is shared by all Scenario validations.
var scenarioValidate *validator.Validate

func init() {
	scenarioValidate = validator.New()
	_ = scenarioValidate.RegisterValidation("node", validateNode)
}

// validateNode accepts strings grid.ParseNode understands.
func validateNode(fl validator.FieldLevel) bool {
	_, err := grid.ParseNode(fl.Field().String())
	return err == nil
}

// Scenario describes a grid, its costs and one search request.
//
// Thread Safety: safe to read concurrently; not safe to modify while Build runs.
type Scenario struct {
	Width        int        `json:"width" yaml:"width" validate:"gt=0"`
	Height       int        `json:"height" yaml:"height" validate:"gt=0"`
	DefaultCost  float64    `json:"default_cost" yaml:"default_cost" validate:"gte=0"`
	DiagonalCost *float64   `json:"diagonal_cost,omitempty" yaml:"diagonal_cost,omitempty" validate:"omitempty,gte=0"`
	MaxCost      float64    `json:"max_cost" yaml:"max_cost" validate:"gt=0"`
	Directions   int        `json:"directions" yaml:"directions" validate:"oneof=4 8"`
	Priority     string     `json:"priority" yaml:"priority" validate:"oneof=exact truncate"`
	Heuristic    string     `json:"heuristic" yaml:"heuristic" validate:"oneof=chebyshev octile manhattan euclidean zero"`
	Start        string     `json:"start" yaml:"start" validate:"required,node"`
	End          string     `json:"end" yaml:"end" validate:"required,node"`
	Walls        []string   `json:"walls,omitempty" yaml:"walls,omitempty" validate:"dive,node"`
	Costs        []CellCost `json:"costs,omitempty" yaml:"costs,omitempty" validate:"dive"`
	Edges        []Edge     `json:"edges,omitempty" yaml:"edges,omitempty" validate:"dive"`
}

// CellCost sets the cost of entering one cell from any neighbor.
type CellCost struct {
	Cell string  `json:"cell" yaml:"cell" validate:"required,node"`
	Cost float64 `json:"cost" yaml:"cost" validate:"gte=0"`
}

// Edge sets the cost of one move between adjacent cells.
type Edge struct {
	From      string  `json:"from" yaml:"from" validate:"required,node"`
	To        string  `json:"to" yaml:"to" validate:"required,node"`
	Cost      float64 `json:"cost" yaml:"cost" validate:"gte=0"`
	Symmetric bool    `json:"symmetric" yaml:"symmetric"`
}

// DefaultScenario returns the values a scenario file starts from.
// Width, Height, Start and End have no default.
func DefaultScenario() Scenario {
	return Scenario{
		DefaultCost: 1,
		MaxCost:     math.Inf(1),
		Directions:  8,
		Priority:    "exact",
		Heuristic:   "chebyshev",
	}
}

// Load reads a scenario with priority: env > file > defaults.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := decode(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyEnv(&s)
	if err := s.Validate(); err != nil {
		return s, err
	}
	klog.V(2).Infof("config: loaded %s (%dx%d, start=%s end=%s)", path, s.Width, s.Height, s.Start, s.End)

	return s, nil
}

// Parse decodes and validates a scenario without consulting the environment.
func Parse(data []byte) (Scenario, error) {
	s, err := decode(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}

// decode fills DefaultScenario from YAML, falling back to JSON.
func decode(data []byte) (Scenario, error) {
	s := DefaultScenario()
	if err := yaml.Unmarshal(data, &s); err != nil {
		s = DefaultScenario()
		if jsonErr := json.Unmarshal(data, &s); jsonErr != nil {
			return Scenario{}, fmt.Errorf("tried YAML and JSON: YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return s, nil
}

// applyEnv overrides fields from the environment. Unparseable numbers are ignored.
func applyEnv(s *Scenario) {
	if v := os.Getenv(EnvMaxCost); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.MaxCost = f
		}
	}
	if v := os.Getenv(EnvPriority); v != "" {
		s.Priority = v
	}
	if v := os.Getenv(EnvHeuristic); v != "" {
		s.Heuristic = v
	}
	if v := os.Getenv(EnvDirections); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			s.Directions = i
		}
	}
}

// Validate checks field constraints, then that every referenced cell lies
// inside the grid and every edge joins two distinct adjacent cells.
func (s Scenario) Validate() error {
	if err := scenarioValidate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if math.IsNaN(s.MaxCost) {
		return fmt.Errorf("%w: max_cost is NaN", ErrInvalidScenario)
	}
	if s.Width > grid.MaxNodes/s.Height {
		return fmt.Errorf("%w: %dx%d grid exceeds %d cells", ErrInvalidScenario, s.Width, s.Height, grid.MaxNodes)
	}

	check := func(field, raw string) (grid.Node, error) {
		n, _ := grid.ParseNode(raw) // syntax already validated
		if n.X < 0 || n.Y < 0 || n.X >= s.Width || n.Y >= s.Height {
			return n, fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidScenario, field, n, s.Width, s.Height)
		}
		return n, nil
	}

	if _, err := check("start", s.Start); err != nil {
		return err
	}
	if _, err := check("end", s.End); err != nil {
		return err
	}
	for _, w := range s.Walls {
		if _, err := check("wall", w); err != nil {
			return err
		}
	}
	for _, c := range s.Costs {
		if _, err := check("cost cell", c.Cell); err != nil {
			return err
		}
	}
	for _, e := range s.Edges {
		from, err := check("edge from", e.From)
		if err != nil {
			return err
		}
		to, err := check("edge to", e.To)
		if err != nil {
			return err
		}
		dx, dy := to.X-from.X, to.Y-from.Y
		if from == to || dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			return fmt.Errorf("%w: edge %v→%v does not join adjacent cells", ErrInvalidScenario, from, to)
		}
	}

	return nil
}
