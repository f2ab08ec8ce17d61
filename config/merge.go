package config

// mergeConfigs merges override configuration into base. Zero values in
// override leave the base value in place.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}

	result.TUI = mergeTUI(base.TUI, override.TUI)

	if override.Clipboard.Backend != "" {
		result.Clipboard.Backend = override.Clipboard.Backend
	}
	if override.Stats.WordsPerMinute != 0 {
		result.Stats.WordsPerMinute = override.Stats.WordsPerMinute
	}
	if override.Metrics.Addr != "" {
		result.Metrics.Addr = override.Metrics.Addr
	}

	result.Extensions = mergeExtensions(base.Extensions, override.Extensions)

	return &result
}

func mergeTUI(base, override TUIConfig) TUIConfig {
	result := base

	if override.Icons != "" {
		result.Icons = override.Icons
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.ToastDuration != "" {
		result.ToastDuration = override.ToastDuration
	}
	if override.MarkdownPreview != nil {
		v := *override.MarkdownPreview
		result.MarkdownPreview = &v
	}

	// Keybindings merge per action so an override can rebind one key
	// without repeating the rest.
	if len(override.Keybindings) > 0 {
		merged := make(KeybindingsConfig, len(base.Keybindings)+len(override.Keybindings))
		for action, keys := range base.Keybindings {
			merged[action] = keys
		}
		for action, keys := range override.Keybindings {
			merged[action] = keys
		}
		result.Keybindings = merged
	}

	return result
}

func mergeExtensions(base, override map[string]interface{}) map[string]interface{} {
	if override == nil {
		return base
	}

	result := make(map[string]interface{}, len(base)+len(override))
	for key, value := range base {
		result[key] = value
	}
	for key, value := range override {
		// If both base and override have the same extension key, merge them
		if baseMap, ok := result[key].(map[string]interface{}); ok {
			if overrideMap, ok := value.(map[string]interface{}); ok {
				mergedMap := make(map[string]interface{}, len(baseMap)+len(overrideMap))
				for k, v := range baseMap {
					mergedMap[k] = v
				}
				for k, v := range overrideMap {
					mergedMap[k] = v
				}
				result[key] = mergedMap
				continue
			}
		}
		result[key] = value
	}
	return result
}
