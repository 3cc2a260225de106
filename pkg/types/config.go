package types

// GenerateConfig holds settings for the generate stage.
// Per prd001-plan R2.1, prd003-geometry R5.1-R5.3.
type GenerateConfig struct {
	// PlanFile is the path to the plan table (CSV).
	PlanFile string `json:"plan_file" yaml:"plan_file"`

	// AirfoilDir overrides the airfoil directory named in the plan.
	// Empty means use the plan value.
	AirfoilDir string `json:"airfoil_dir,omitempty" yaml:"airfoil_dir,omitempty"`

	// OutputDir overrides the output directory named in the plan.
	// Empty means use the plan value.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// ResamplePoints overrides the per-surface resampling count from the
	// plan. Zero means use the plan value; negative disables resampling.
	ResamplePoints int `json:"resample_points,omitempty" yaml:"resample_points,omitempty"`

	// Force regenerates every rib even when the catalog fingerprint is
	// unchanged and the output file exists.
	Force bool `json:"force" yaml:"force"`
}

// CatalogConfig holds settings for the generation catalog.
// Per prd005-catalog R1.2, R3.1.
type CatalogConfig struct {
	// Path is the SQLite database file (e.g. "catalog/ribforge.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of listing results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Generate GenerateConfig `json:"generate" yaml:"generate"`
	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog"`
}
