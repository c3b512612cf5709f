package config

import (
	"fmt"
	"os"

	"github.com/frameloop/pulse"
	"gopkg.in/yaml.v3"
)

type bindingFile struct {
	Next     bindingEntry `yaml:"next"`
	Previous bindingEntry `yaml:"previous"`
	Axis     *int         `yaml:"axis"`
}

type bindingEntry struct {
	Keys    []string `yaml:"keys"`
	Buttons []int    `yaml:"buttons"`
}

func (e bindingEntry) binding(fallback pulse.NavBinding) pulse.NavBinding {
	if len(e.Keys) == 0 && len(e.Buttons) == 0 {
		return fallback
	}

	binding := pulse.NavBinding{Buttons: e.Buttons}
	for _, key := range e.Keys {
		binding.Keys = append(binding.Keys, pulse.Key(key))
	}

	return binding
}

// LoadBindings loads navigation bindings from a YAML file. Directions missing
// in the file use the default bindings.
func LoadBindings(path string) (pulse.NavBindings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return pulse.NavBindings{}, fmt.Errorf("read bindings: %w", err)
	}

	bindings, err := ParseBindings(raw)
	if err != nil {
		return pulse.NavBindings{}, fmt.Errorf("bindings %s: %w", path, err)
	}

	return bindings, nil
}

func ParseBindings(raw []byte) (pulse.NavBindings, error) {
	var f bindingFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return pulse.NavBindings{}, fmt.Errorf("parse bindings: %w", err)
	}

	bindings := pulse.NavBindings{
		Next:     f.Next.binding(pulse.DefaultNavBindings.Next),
		Previous: f.Previous.binding(pulse.DefaultNavBindings.Previous),
		Axis:     pulse.DefaultNavBindings.Axis,
	}

	if f.Axis != nil {
		if *f.Axis < 0 {
			return pulse.NavBindings{}, fmt.Errorf("negative axis %d", *f.Axis)
		}

		bindings.Axis = *f.Axis
	}

	return bindings, nil
}

// Bindings returns the bindings configured in the input section.
func (c *Config) Bindings() (pulse.NavBindings, error) {
	if c.Input.Bindings == "" {
		return pulse.DefaultNavBindings, nil
	}

	return LoadBindings(c.Input.Bindings)
}
