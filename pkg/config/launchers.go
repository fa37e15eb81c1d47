package config

// PickersConfig holds the raw [pickers.<name>] tables.
// They stay untyped here and are decoded by the launcher package.
type PickersConfig map[string]map[string]any

// GetPickerConfig returns the raw table for a picker, or nil
func (c *Config) GetPickerConfig(name string) map[string]any {
	if c.Pickers == nil {
		return nil
	}
	return c.Pickers[name]
}

// mergePickers overlays user picker tables key by key
func mergePickers(merged PickersConfig, user PickersConfig) {
	for name, table := range user {
		dst := make(map[string]any, len(merged[name])+len(table))
		for k, v := range merged[name] {
			dst[k] = v
		}
		for k, v := range table {
			dst[k] = v
		}
		merged[name] = dst
	}
}
