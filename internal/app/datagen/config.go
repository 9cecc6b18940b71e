package datagen

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Dragomordor/SimpleTMs/internal/app/datagen/movecsv"
	"github.com/Dragomordor/SimpleTMs/internal/app/datagen/resource"
	"github.com/Dragomordor/SimpleTMs/internal/domain"
)

// Config holds generator settings.
type Config struct {
	Namespace        string        `yaml:"namespace"                env:"DATAGEN_NAMESPACE"         env-default:"simpletms"`
	InputPath        string        `yaml:"input_path"               env:"DATAGEN_INPUT_PATH"`
	OutputDir        string        `yaml:"output_dir"               env:"DATAGEN_OUTPUT_DIR"        env-default:"resources"`
	MoveSetName      string        `yaml:"move_set_name"            env:"DATAGEN_MOVE_SET_NAME"     env-default:"default"`
	CustomSetName    string        `yaml:"custom_set_name"          env:"DATAGEN_CUSTOM_SET_NAME"`
	IncludeType      bool          `yaml:"include_type_in_move_set" env:"DATAGEN_INCLUDE_TYPE"`
	LabelStyle       string        `yaml:"label_style"              env:"DATAGEN_LABEL_STYLE"       env-default:"static"`
	StaticLang       bool          `yaml:"static_lang"              env:"DATAGEN_STATIC_LANG"`
	Columns          ColumnsConfig `yaml:"columns"`
	ExclusionsPath   string        `yaml:"exclusions_path"          env:"DATAGEN_EXCLUSIONS_PATH"`
	BuiltinExclusion bool          `yaml:"builtin_exclusions"       env:"DATAGEN_BUILTIN_EXCLUSIONS"`
	ExcludePrefixes  []string      `yaml:"exclude_prefixes"         env:"DATAGEN_EXCLUDE_PREFIXES"  env-separator:","`
	DuplicatePolicy  string        `yaml:"duplicate_policy"         env:"DATAGEN_DUPLICATE_POLICY"  env-default:"fail"`
	SortByIdentifier bool          `yaml:"sort_by_identifier"       env:"DATAGEN_SORT"`
	Workers          int           `yaml:"workers"                  env:"DATAGEN_WORKERS"           env-default:"8"`
	DryRun           bool          `yaml:"dry_run"                  env:"DATAGEN_DRY_RUN"`
}

// ColumnsConfig maps move table headers to record fields. Matching is
// case-insensitive; empty optional columns are ignored.
type ColumnsConfig struct {
	Name       string `yaml:"name"       env:"DATAGEN_COLUMN_NAME"     env-default:"Move"`
	Type       string `yaml:"type"       env:"DATAGEN_COLUMN_TYPE"     env-default:"Type"`
	Category   string `yaml:"category"   env:"DATAGEN_COLUMN_CATEGORY"`
	Identifier string `yaml:"identifier" env:"DATAGEN_COLUMN_IDENTIFIER"`
	Generation string `yaml:"generation" env:"DATAGEN_COLUMN_GENERATION"`
	PP         string `yaml:"pp"         env:"DATAGEN_COLUMN_PP"`
	Power      string `yaml:"power"      env:"DATAGEN_COLUMN_POWER"`
	Accuracy   string `yaml:"accuracy"   env:"DATAGEN_COLUMN_ACCURACY"`
}

// defaultConfig returns the values cleanenv cannot express as env-default:
// it treats false, empty strings and empty slices as unset, so those
// defaults are applied before decoding.
func defaultConfig() Config {
	return Config{
		CustomSetName:    "custom",
		IncludeType:      true,
		StaticLang:       true,
		BuiltinExclusion: true,
		ExcludePrefixes:  []string{"hiddenpower"},
		SortByIdentifier: true,
		Columns: ColumnsConfig{
			Category: "Category",
		},
	}
}

// LoadConfig reads generator configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("datagen config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("datagen config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("datagen config: read env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings a run cannot start without.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	if strings.TrimSpace(c.Namespace) == "" {
		add("namespace", "required")
	}
	if strings.TrimSpace(c.InputPath) == "" {
		add("input_path", "required")
	}
	if strings.TrimSpace(c.OutputDir) == "" && !c.DryRun {
		add("output_dir", "required")
	}
	if strings.TrimSpace(c.MoveSetName) == "" {
		add("move_set_name", "required")
	}
	if c.CustomSetName != "" && c.CustomSetName == c.MoveSetName {
		add("custom_set_name", "must differ from move_set_name")
	}
	if !resource.LabelStyle(c.LabelStyle).IsValid() {
		add("label_style", fmt.Sprintf("must be static or numbered (got %q)", c.LabelStyle))
	}
	if !resource.DuplicatePolicy(c.DuplicatePolicy).IsValid() {
		add("duplicate_policy", fmt.Sprintf("must be fail or overwrite (got %q)", c.DuplicatePolicy))
	}
	if c.Columns.Name == "" {
		add("columns.name", "required")
	}
	if c.Columns.Type == "" {
		add("columns.type", "required")
	}
	if c.Workers < 1 {
		add("workers", fmt.Sprintf("must be >= 1 (got %d)", c.Workers))
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (c *Config) columns() movecsv.Columns {
	return movecsv.Columns{
		Name:       c.Columns.Name,
		Type:       c.Columns.Type,
		Category:   c.Columns.Category,
		Identifier: c.Columns.Identifier,
		Generation: c.Columns.Generation,
		PP:         c.Columns.PP,
		Power:      c.Columns.Power,
		Accuracy:   c.Columns.Accuracy,
	}
}

func (c *Config) buildOptions() resource.Options {
	return resource.Options{
		Namespace:     c.Namespace,
		MoveSetName:   c.MoveSetName,
		CustomSetName: c.CustomSetName,
		IncludeType:   c.IncludeType,
		LabelStyle:    resource.LabelStyle(c.LabelStyle),
		StaticLang:    c.StaticLang,
		Sort:          c.SortByIdentifier,
		Duplicates:    resource.DuplicatePolicy(c.DuplicatePolicy),
	}
}
