package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder stacks partial configs from highest to lowest precedence.
// mergo fills only zero fields, so the first layer that sets a value wins.
type configBuilder struct {
	layers []*StructuredConfig
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 4)}
}

// push appends the result of load as the next layer, or records the error.
func (b *configBuilder) push(source string, load func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := load()
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if cfg != nil {
		b.layers = append(b.layers, cfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.push("env", loadEnv)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.withFlagArgs(os.Args[1:])
}

func (b *configBuilder) withFlagArgs(args []string) *configBuilder {
	return b.push("flags", func() (*StructuredConfig, error) {
		return ParseFlags(args)
	})
}

// withJSON loads the file named by the first layer that set JSONFilePath.
// Without such a layer it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
			break
		}
	}
	if path == "" {
		return b
	}

	return b.push("json", func() (*StructuredConfig, error) {
		return parseJSON(path)
	})
}

// withDefaults goes last so it only fills what no explicit source set.
func (b *configBuilder) withDefaults() *configBuilder {
	return b.push("defaults", func() (*StructuredConfig, error) {
		return Defaults(), nil
	})
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("error occured during building config: %w", errors.Join(b.errs...))
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
