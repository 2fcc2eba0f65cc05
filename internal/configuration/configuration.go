package configuration

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/desertwitch/statcompat/internal/capability"
)

const (
	DefaultConfigFile = "/etc/statcompat.env"

	SettingTargetRelease = "STATCOMPAT_TARGET_RELEASE"
	SettingLogLevel      = "STATCOMPAT_LOG_LEVEL"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings is the principal structure holding the application configuration.
type Settings struct {
	TargetRelease string
	Capabilities  capability.Set
	LogLevel      slog.Level
}

// Handler reads and interprets Unix-type configuration files.
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// ReadGeneric reads the given files into a map (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.genericHandler.Read(filenames...)
}

// MapKeyToString returns the value for key, or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToLevel returns the log level named by key, or fallback when the key
// is missing or not a level name.
func (c *Handler) MapKeyToLevel(envMap map[string]string, key string, fallback slog.Level) slog.Level {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return fallback
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return fallback
	}

	return level
}

// Establish builds the [Settings] from the given configuration files. Keys
// absent from the files fall back to the compiled-in release and info level.
func (c *Handler) Establish(filenames ...string) (*Settings, error) {
	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config) failed to read config: %w", err)
	}

	return c.fromMap(envMap)
}

// Defaults returns the [Settings] used when no configuration file exists.
func (c *Handler) Defaults() *Settings {
	settings, _ := c.fromMap(nil)

	return settings
}

func (c *Handler) fromMap(envMap map[string]string) (*Settings, error) {
	release := c.MapKeyToString(envMap, SettingTargetRelease)
	if release == "" {
		return &Settings{
			TargetRelease: capability.Release,
			Capabilities:  capability.Build,
			LogLevel:      c.MapKeyToLevel(envMap, SettingLogLevel, slog.LevelInfo),
		}, nil
	}

	caps, err := capability.Lookup(release)
	if err != nil {
		return nil, fmt.Errorf("(config) invalid %s: %w", SettingTargetRelease, err)
	}

	return &Settings{
		TargetRelease: release,
		Capabilities:  caps,
		LogLevel:      c.MapKeyToLevel(envMap, SettingLogLevel, slog.LevelInfo),
	}, nil
}
