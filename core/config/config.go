package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Configuration struct {
	// Prompt is printed before each read in interactive mode.
	Prompt string `json:"prompt"`

	// DefaultPath is the search path the interpreter starts with.
	DefaultPath []string `json:"default_path" validate:"dive,required"`

	// ExportPath mirrors the search path into the PATH of child processes.
	ExportPath bool `json:"export_path"`

	Color string `json:"color" validate:"oneof=auto always never"`

	// EventLog is the path of the JSON lines event log, empty disables it.
	EventLog string `json:"event_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
