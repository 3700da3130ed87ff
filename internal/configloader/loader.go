// Package configloader provides configuration loading and resolution for
// the CLI front-end. The core library itself never touches the
// filesystem — only commands under internal/cli depend on this package.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/markdoc/pkg/config"
)

// configFilePermissions is the file mode for configuration files
// written by `markdoc init` (world-readable).
const configFilePermissions = 0644

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreUserConfig skips loading the user-level configuration file.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading the project-level configuration file.
	IgnoreProjectConfig bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config config.FormatCfg

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded, in
	// lowest-to-highest precedence order.
	LoadedFrom []string
}

// Load resolves the final FormatCfg by merging all sources. Precedence
// (highest to lowest): explicit --config path, project file
// (.markdoc.yml, searched upward), user file
// ($XDG_CONFIG_HOME/markdoc/config.yml), built-in default.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Paths: &ConfigPaths{}}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.Default()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths
	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		userCfg, err := loadConfigFile(paths.User)
		if err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		cfg = merge(cfg, userCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if !opts.IgnoreProjectConfig && paths.Project != "" {
		projectCfg, err := loadConfigFile(paths.Project)
		if err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		cfg = merge(cfg, projectCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if opts.ExplicitPath != "" {
		explicitCfg, err := loadConfigFile(opts.ExplicitPath)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		cfg = merge(cfg, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a FormatCfg from a YAML file.
func loadConfigFile(path string) (config.FormatCfg, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return config.FormatCfg{}, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return config.FormatCfg{}, fmt.Errorf("parse YAML: %w", err)
	}
	if cfg.HeadingStyle == "" {
		cfg.HeadingStyle = config.HeadingStyleAuto
	}

	return cfg, nil
}

// WriteConfig writes cfg to path as YAML with a header comment,
// overwriting any existing file.
func WriteConfig(cfg config.FormatCfg, path string) error {
	header := `# markdoc format configuration
# See: https://github.com/yaklabco/markdoc`

	content, err := cfg.ToYAMLWithHeader(header)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
