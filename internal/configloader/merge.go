package configloader

import "github.com/yaklabco/markdoc/pkg/config"

// merge combines two FormatCfgs, with override's HeadingStyle taking
// precedence over base's when set. Minify and Backup are carried from
// override only when override's HeadingStyle was also explicitly set —
// FormatCfg has no concept of "unset" for a bool, so whenever override's
// HeadingStyle is set, its Minify and Backup replace base's, even when false.
func merge(base, override config.FormatCfg) config.FormatCfg {
	result := base
	if override.HeadingStyle != "" {
		result.HeadingStyle = override.HeadingStyle
		result.Minify = override.Minify
		result.Backup = override.Backup
	}
	return result
}

// MergeAll merges multiple FormatCfgs in order, with later configs taking
// precedence.
func MergeAll(configs ...config.FormatCfg) config.FormatCfg {
	if len(configs) == 0 {
		return config.Default()
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
