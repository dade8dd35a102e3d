package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ghx_sizing/ghx"
	"ghx_sizing/weather"
)

// Project is one heat pump and its ground heat exchanger, as read from YAML.
type Project struct {
	Name      string    `yaml:"name"`
	Equipment Equipment `yaml:"equipment"`
	Fluid     Fluid     `yaml:"fluid"`
	Ground    Ground    `yaml:"ground"`
	BoreField BoreField `yaml:"bore_field"`
	Weather   Weather   `yaml:"weather"`

	dir string // directory of the project file, for relative weather paths
}

// Equipment is the heat pump. Capacities are Btu/h.
type Equipment struct {
	HeatingCapacity float64             `yaml:"heating_capacity"`
	CoolingCapacity float64             `yaml:"cooling_capacity"`
	EER             float64             `yaml:"eer"`
	COP             float64             `yaml:"cop"`
	Curves          *ghx.HeatPumpCurves `yaml:"curves,omitempty"`
}

// Fluid is the loop fluid. An empty glycol or a zero fraction is water.
type Fluid struct {
	Glycol   string  `yaml:"glycol,omitempty"`
	Fraction float64 `yaml:"fraction,omitempty"`
}

// Ground holds the soil and grout properties.
type Ground struct {
	Conductivity      float64 `yaml:"conductivity"`       // Btu/hr-ft-F
	Diffusivity       float64 `yaml:"diffusivity"`        // ft2/hr
	GroutConductivity float64 `yaml:"grout_conductivity"` // Btu/hr-ft-F
}

// BoreField is the bore field request.
type BoreField struct {
	Config           string        `yaml:"config"`
	Holes            Auto[int]     `yaml:"holes"`
	Depth            Auto[float64] `yaml:"depth"` // ft
	Spacing          float64       `yaml:"spacing"`
	Diameter         float64       `yaml:"diameter"`
	DesignDeltaT     float64       `yaml:"design_delta_t"`
	PipeSize         float64       `yaml:"pipe_size"`
	PipeConductivity float64       `yaml:"pipe_conductivity"`
	ShankSpacing     string        `yaml:"shank_spacing"`
}

// Weather is either an hourly dry-bulb file or the statistics themselves.
type Weather struct {
	File       string                 `yaml:"file,omitempty"`
	Format     string                 `yaml:"format,omitempty"` // csv or hasp
	Interval   string                 `yaml:"interval,omitempty"`
	Statistics *ghx.WeatherStatistics `yaml:"statistics,omitempty"`
}

// Defaults returns a project with the default ground, bore field and
// efficiency settings and an auto-sized field.
func Defaults() Project {
	req := ghx.DefaultBoreFieldRequest()
	return Project{
		Equipment: Equipment{EER: 16, COP: 3.6},
		Ground: Ground{
			Conductivity:      req.GroundConductivity,
			Diffusivity:       req.GroundDiffusivity,
			GroutConductivity: req.GroutConductivity,
		},
		BoreField: BoreField{
			Config:           string(req.Config),
			Spacing:          req.Spacing,
			Diameter:         req.Diameter,
			DesignDeltaT:     req.DesignDeltaT,
			PipeSize:         req.PipeSize,
			PipeConductivity: req.PipeConductivity,
			ShankSpacing:     string(req.ShankSpacing),
		},
	}
}

// Parse decodes a project over the defaults.
func Parse(data []byte) (*Project, error) {
	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}
	return &p, nil
}

// Load reads a project from a YAML file. The file name without its extension
// is the default project name.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		base := filepath.Base(path)
		p.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	p.dir = filepath.Dir(path)
	return p, nil
}

// Save writes the project as YAML.
func (p *Project) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding project YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing project file: %w", err)
	}
	return nil
}

// WeatherPath is the weather file, resolved against the project directory.
func (p *Project) WeatherPath() string {
	if p.Weather.File == "" || filepath.IsAbs(p.Weather.File) {
		return p.Weather.File
	}
	return filepath.Join(p.dir, p.Weather.File)
}

func (p *Project) weatherStatistics() (ghx.WeatherStatistics, error) {
	switch {
	case p.Weather.Statistics != nil && p.Weather.File != "":
		return ghx.WeatherStatistics{}, fmt.Errorf("%w: weather has both a file and statistics", ghx.ErrInvalidInput)
	case p.Weather.Statistics != nil:
		return *p.Weather.Statistics, nil
	case p.Weather.File != "":
		format, err := weather.ParseFormat(p.Weather.Format)
		if err != nil {
			return ghx.WeatherStatistics{}, err
		}
		itv, err := weather.ParseInterval(p.Weather.Interval)
		if err != nil {
			return ghx.WeatherStatistics{}, err
		}
		return weather.LoadStatistics(p.WeatherPath(), format, itv)
	default:
		return ghx.WeatherStatistics{}, fmt.Errorf("%w: no weather file or statistics", ghx.ErrInvalidInput)
	}
}

/*
Builds the sizing input.

	Returns:
		input for ghx.Size, with the weather file read if one is given

	Notes:
		Enumerated settings are parsed here so that a bad name fails before any
		weather data is read.
*/
func (p *Project) Input() (ghx.Input, error) {
	cfg, err := ghx.ParseBoreConfig(p.BoreField.Config)
	if err != nil {
		return ghx.Input{}, err
	}
	shank, err := ghx.ParseShankSpacing(p.BoreField.ShankSpacing)
	if err != nil {
		return ghx.Input{}, err
	}
	fluid, err := ghx.NewFluid(ghx.GlycolKind(p.Fluid.Glycol), p.Fluid.Fraction)
	if err != nil {
		return ghx.Input{}, err
	}

	holes := ghx.AutoHoles()
	if p.BoreField.Holes.Set {
		holes = ghx.FixedHoles(p.BoreField.Holes.Value)
	}
	depth := ghx.AutoDepth()
	if p.BoreField.Depth.Set {
		depth = ghx.FixedDepth(p.BoreField.Depth.Value)
	}

	ws, err := p.weatherStatistics()
	if err != nil {
		return ghx.Input{}, err
	}

	return ghx.Input{
		Name:    p.Name,
		Weather: ws,
		Capacity: ghx.CapacityRequirement{
			Heating: p.Equipment.HeatingCapacity,
			Cooling: p.Equipment.CoolingCapacity,
		},
		EER:    p.Equipment.EER,
		COP:    p.Equipment.COP,
		Fluid:  fluid,
		Curves: p.Equipment.Curves,
		BoreField: ghx.BoreFieldRequest{
			Config:             cfg,
			Holes:              holes,
			Depth:              depth,
			Spacing:            p.BoreField.Spacing,
			Diameter:           p.BoreField.Diameter,
			GroundConductivity: p.Ground.Conductivity,
			GroutConductivity:  p.Ground.GroutConductivity,
			GroundDiffusivity:  p.Ground.Diffusivity,
			DesignDeltaT:       p.BoreField.DesignDeltaT,
			PipeSize:           p.BoreField.PipeSize,
			PipeConductivity:   p.BoreField.PipeConductivity,
			ShankSpacing:       shank,
		},
	}, nil
}
