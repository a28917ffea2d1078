// Package config loads per-environment settings from YAML files with
// process-variable overrides.
//
// The active environment (dev, staging, or prod) is selected by the
// SOYCTL_ENV variable and maps to a file named env.<name>.yaml. The
// resolved settings supply the logging facade's startup contract — a
// level name and a use-JSON flag — along with the Databricks
// identifiers used to render asset definitions.
package config
