package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gogpu/pipestate/capability"
	"github.com/gogpu/pipestate/driver"
)

type Config struct {
	Driver     string
	API        string
	Version    string
	Extensions []string
	Missing    []string
	Disable    []string
	Dot        bool
	Verbose    bool
}

func NewDefaultConfig() Config {
	return Config{
		API:     "gl",
		Version: "2.1",
	}
}

func (c *Config) AddFlags(fs *pflag.FlagSet) *Config {
	fs.StringVarP(&c.Driver, "driver", "d", c.Driver, "Probe a registered driver instead of a described one")
	fs.StringVar(&c.API, "api", c.API, "API family of the described driver: gl, gles1 or gles2")
	fs.StringVar(&c.Version, "gl-version", c.Version, "Core version of the described driver, major.minor")
	fs.StringSliceVarP(&c.Extensions, "ext", "e", nil, "Extensions the described driver advertises")
	fs.StringSliceVar(&c.Missing, "missing", nil, "Symbols that fail to resolve")
	fs.StringSliceVar(&c.Disable, "disable", nil, "Features to switch off after probing")
	fs.BoolVar(&c.Dot, "dot", c.Dot, "Print a sample pipeline graph in dot format")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "Log probe details to stderr")
	return c
}

func parseAPI(s string) (capability.API, error) {
	switch strings.ToLower(s) {
	case "gl":
		return capability.APIGL, nil
	case "gles1":
		return capability.APIGLES1, nil
	case "gles2":
		return capability.APIGLES2, nil
	}
	return 0, fmt.Errorf("unknown api %q", s)
}

// Static builds the described driver.
func (c *Config) Static() (*driver.Static, error) {
	api, err := parseAPI(c.API)
	if err != nil {
		return nil, err
	}
	var major, minor int
	if _, err := fmt.Sscanf(c.Version, "%d.%d", &major, &minor); err != nil {
		return nil, fmt.Errorf("gl version %q: %w", c.Version, err)
	}
	d := driver.Null()
	d.DriverName = "described"
	d.DriverAPI = api
	d.Major, d.Minor = major, minor
	d.ExtensionString = strings.Join(c.Extensions, " ")
	d.Missing = c.Missing
	return d, nil
}

// Disabled converts the --disable names to feature flags.
func (c *Config) Disabled() (capability.Flags, error) {
	var f capability.Flags
	for _, name := range c.Disable {
		flag, ok := capability.ParseFlag(name)
		if !ok {
			return 0, fmt.Errorf("unknown feature %q", name)
		}
		f |= flag
	}
	return f, nil
}
