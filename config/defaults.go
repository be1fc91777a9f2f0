package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Marker call-forms
	v.SetDefault("markers.invoke", []string{"Ask", "LLM"})
	v.SetDefault("markers.define", "Define")

	// On-disk layout. The subdir name is shared by generated implementation
	// modules and metadata sidecars; changing it orphans previously generated
	// modules.
	v.SetDefault("layout.subdir", "askit")
	v.SetDefault("layout.runtime_path", "github.com/teranos/askit/dyn")
	v.SetDefault("layout.session_file", "askit_session.go")
}
