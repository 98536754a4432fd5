package constants

// DefaultConfigPath is where agesweep looks for its config when --config is not given.
const DefaultConfigPath = "~/.config/agesweep/config.toml"

// DefaultMetricsNamespace prefixes every exported metric name.
const DefaultMetricsNamespace = "agesweep"
