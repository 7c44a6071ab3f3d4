// Package registry manages the set of named templates known to sprout.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"

	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/template/model"
)

// Environment variable prefix for sprout configuration.
const envPrefix = "SPROUT"

// builtinEntries are the templates sprout knows about without any user
// registry file. User registry entries shadow them by name.
var builtinEntries = map[string]model.TemplateEntry{
	"go-cli": {
		Source:      "https://github.com/sprout-cli/template-go-cli",
		Description: "Command line application with cobra",
	},
	"go-service": {
		Source:      "https://github.com/sprout-cli/template-go-service",
		Description: "HTTP service with graceful shutdown",
	},
	"go-library": {
		Source:      "https://github.com/sprout-cli/template-go-library",
		Description: "Reusable library with CI workflow",
	},
}

// Registry is an immutable lookup table of named template entries.
type Registry struct {
	entries map[string]model.TemplateEntry
}

// New creates a Registry from the given entries.
func New(entries map[string]model.TemplateEntry) *Registry {
	if entries == nil {
		entries = map[string]model.TemplateEntry{}
	}
	return &Registry{entries: entries}
}

// Names returns the registered template names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (model.TemplateEntry, bool) {
	entry, ok := r.entries[name]
	return entry, ok
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.entries)
}

// registryFile is the on-disk shape of the user registry.
type registryFile struct {
	Templates map[string]model.TemplateEntry `mapstructure:"templates"`
}

// Builtins returns a Registry holding only the built-in entries.
func Builtins() *Registry {
	return New(mergeEntries(builtinEntries, nil))
}

// Load returns the built-in entries merged with the user registry file,
// user entries winning on name collisions. SPROUT_REGISTRY overrides the
// file location; a missing file yields just the built-ins, not an error.
func Load() (*Registry, error) {
	userEntries, err := loadUserEntries()
	if err != nil {
		return nil, err
	}
	return New(mergeEntries(builtinEntries, userEntries)), nil
}

// loadUserEntries reads the user registry file.
func loadUserEntries() (map[string]model.TemplateEntry, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	_ = v.BindEnv("registry", "SPROUT_REGISTRY")

	registryPath := v.GetString("registry")
	if registryPath == "" {
		var err error
		registryPath, err = DefaultRegistryPath()
		if err != nil {
			return nil, fmt.Errorf("resolving registry path: %w", err)
		}
	}
	debug.DebugValue("[registry] Registry file", registryPath)

	v.SetConfigFile(registryPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			debug.Debug("[registry] No user registry file")
			return nil, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("reading registry file: %w", err)
	}

	var file registryFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("unmarshaling registry file: %w", err)
	}

	for name, entry := range file.Templates {
		if entry.Source == "" {
			return nil, fmt.Errorf("registry entry %q is missing required field: source", name)
		}
	}

	debug.DebugValue("[registry] User templates", len(file.Templates))
	return file.Templates, nil
}

// mergeEntries overlays user entries on top of the built-ins.
func mergeEntries(builtins, user map[string]model.TemplateEntry) map[string]model.TemplateEntry {
	merged := make(map[string]model.TemplateEntry, len(builtins)+len(user))
	for name, entry := range builtins {
		merged[name] = entry
	}
	for name, entry := range user {
		merged[name] = entry
	}
	return merged
}

// DefaultRegistryPath returns the default user registry file location.
func DefaultRegistryPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "sprout", "registry.yaml"), nil
}
