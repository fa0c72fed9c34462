package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that parses config files written
// as a flat YAML mapping of flag names to values.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Flag names with hyphens (e.g., "log-level") may use underscores in the
// config file (e.g., "log_level"). Command-line flags override config file
// values.
//
// Example config file:
//
//	log_level: debug
//	log_format: json
//	log_pretty: true
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var values map[string]any

	if err := yaml.Unmarshal(data, &values); err != nil {
		// Unparseable config: resolve nothing rather than fail startup.
		return config{}, nil
	}

	normal := make(config, len(values))
	for key, value := range values {
		normal[key] = flagValue(value)
	}

	return normal, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed: the config was already parsed successfully.
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys may use
	// underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found: return nil to let Kong use defaults.
	return nil, nil
}

// flagValue converts a decoded YAML value to a form Kong can apply to a
// flag. Kong requires numbers as strings for parsing.
func flagValue(value any) any {
	switch num := value.(type) {
	case int64:
		return strconv.FormatInt(num, 10)
	case uint64:
		return strconv.FormatUint(num, 10)
	case float64:
		return strconv.FormatFloat(num, 'f', -1, 64)
	default:
		return value
	}
}
