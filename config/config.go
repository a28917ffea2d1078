package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Environment selects which settings file is loaded.
type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// EnvVar names the process variable selecting the active environment.
// An unset variable selects [EnvDev].
const EnvVar = "SOYCTL_ENV"

// Process variables overriding individual settings after the file is
// loaded.
const (
	envProfileID = "SOYCTL_DATABRICKS_PROFILE_ID"
	envClusterID = "SOYCTL_DATABRICKS_CLUSTER_ID"
	envLogLevel  = "SOYCTL_LOG_LEVEL"
	envLogToJSON = "SOYCTL_LOG_TO_JSON"
)

// ParseEnvironment resolves a case-insensitive environment name.
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(s)))

	switch env {
	case EnvDev, EnvStaging, EnvProd:
		return env, nil
	}

	return "", errors.Errorf(
		"invalid environment: %q, must be one of %q, %q, %q",
		s, EnvDev, EnvStaging, EnvProd,
	)
}

// Settings holds the per-environment configuration. The logging fields
// are the startup contract with the logging facade: the facade itself
// never reads files or process variables.
type Settings struct {
	Environment         Environment `yaml:"-"`
	DatabricksProfileID string      `yaml:"databricks_profile_id"`
	DatabricksClusterID string      `yaml:"databricks_cluster_id"`
	LogLevel            string      `yaml:"log_level"`
	LogToJSON           bool        `yaml:"log_to_json"`
}

// Load resolves the active environment from [EnvVar], reads
// env.<name>.yaml from dir, applies process-variable overrides, and
// validates required fields.
func Load(dir string) (*Settings, error) {
	name := os.Getenv(EnvVar)
	if name == "" {
		name = string(EnvDev)
	}

	env, err := ParseEnvironment(name)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, fmt.Sprintf("env.%s.yaml", env))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("environment file %s does not exist", path)
		}

		return nil, errors.Wrapf(err, "reading environment file %s", path)
	}

	settings := Settings{
		Environment: env,
		LogLevel:    "INFO",
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrapf(err, "parsing environment file %s", path)
	}

	if err := settings.applyProcessEnv(); err != nil {
		return nil, err
	}

	if err := settings.validate(); err != nil {
		return nil, errors.Wrapf(err, "environment file %s", path)
	}

	return &settings, nil
}

func (s *Settings) applyProcessEnv() error {
	if v := os.Getenv(envProfileID); v != "" {
		s.DatabricksProfileID = v
	}

	if v := os.Getenv(envClusterID); v != "" {
		s.DatabricksClusterID = v
	}

	if v := os.Getenv(envLogLevel); v != "" {
		s.LogLevel = v
	}

	if v := os.Getenv(envLogToJSON); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", envLogToJSON)
		}

		s.LogToJSON = b
	}

	return nil
}

func (s *Settings) validate() error {
	var missing []string

	if s.DatabricksProfileID == "" {
		missing = append(missing, "databricks_profile_id")
	}

	if s.DatabricksClusterID == "" {
		missing = append(missing, "databricks_cluster_id")
	}

	if len(missing) > 0 {
		return errors.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	return nil
}

// TemplateVars returns the settings as template variables for rendering
// asset definitions.
func (s *Settings) TemplateVars() map[string]any {
	return map[string]any{
		"env":                   string(s.Environment),
		"databricks_profile_id": s.DatabricksProfileID,
		"databricks_cluster_id": s.DatabricksClusterID,
		"log_level":             s.LogLevel,
		"log_to_json":           s.LogToJSON,
	}
}
