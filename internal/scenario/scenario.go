// Package scenario loads named board positions from HCL files, so recurring
// race situations can be evaluated by name instead of retyped as literals.
//
//	scenario "two_horse" {
//	  race = "r,,y"
//	  dice = "ry"
//	}
package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/camelup/race"
)

// Config is the decoded scenario file.
type Config struct {
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Scenario is one named board position with its remaining dice.
type Scenario struct {
	Name string `hcl:"name,label"`
	Race string `hcl:"race"`
	Dice string `hcl:"dice"`
}

// Load parses and validates a scenario file. Every race and dice literal is
// checked with the race parsers, so a loaded scenario always evaluates.
func Load(filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario file: %s", diags.Error())
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Scenarios))
	for _, s := range c.Scenarios {
		if seen[s.Name] {
			return fmt.Errorf("scenario %q: defined twice", s.Name)
		}
		seen[s.Name] = true

		if _, err := race.ParseRace(s.Race); err != nil {
			return fmt.Errorf("scenario %q: invalid race: %w", s.Name, err)
		}
		if _, err := race.ParseDice(s.Dice); err != nil {
			return fmt.Errorf("scenario %q: invalid dice: %w", s.Name, err)
		}
	}
	return nil
}

// Get returns the named scenario.
func (c *Config) Get(name string) (Scenario, error) {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario %q: not found", name)
}

// Parse resolves the scenario's literals into their domain values.
func (s Scenario) Parse() (race.Race, race.Dice, error) {
	r, err := race.ParseRace(s.Race)
	if err != nil {
		return race.Race{}, race.Dice{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	dice, err := race.ParseDice(s.Dice)
	if err != nil {
		return race.Race{}, race.Dice{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return r, dice, nil
}
