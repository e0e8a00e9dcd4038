package cli

import "github.com/seitarof/glad-gen/internal/config"

// Config stores CLI options for a single generation run.
type Config struct {
	ConfigFile  string
	Bindings    string
	Filename    string
	Package     string
	TypeName    string
	SkipNative  bool
	Verbose     bool
	ShowVersion bool

	// Settings holds glad.toml merged with the flags above.
	Settings config.Settings
}

// OutputFilename returns destination file path for generator layer.
func (c *Config) OutputFilename() string {
	return c.Filename
}
