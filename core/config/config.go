package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name looked for in the shell directory.
	ConfigurationName = "config.yaml"
	// RCName is the startup script sourced before the first prompt.
	RCName = "jshellrc"
)

// Configuration holds the recognized options for a shell session. The core
// never parses option files itself; Load hands it this structure.
type Configuration struct {
	// PromptFormat is the prompt template; {cwd} is replaced with the
	// working directory.
	PromptFormat string `json:"prompt_format" validate:"required,contains={cwd}"`
	EnableColors bool   `json:"enable_colors"`
	AutoComplete bool   `json:"auto_complete"`
	SaveHistory  bool   `json:"save_history"`
	MaxHistory   int    `json:"max_history" validate:"gte=0"`
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

// Default returns the embedded default configuration. Panics on parse
// failure because that can only be a build defect.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
