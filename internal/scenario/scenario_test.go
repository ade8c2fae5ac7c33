package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/camelup/race"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
scenario "two_horse" {
  race = "r,,y"
  dice = "ry"
}

scenario "trap_finish" {
  race = "gy,r,+,w"
  dice = "rw"
}
`)

	config, err := Load(path)
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)

	s, err := config.Get("two_horse")
	require.NoError(t, err)
	assert.Equal(t, "r,,y", s.Race)
	assert.Equal(t, "ry", s.Dice)

	r, dice, err := s.Parse()
	require.NoError(t, err)
	assert.Equal(t, "r,,y", r.String())
	assert.True(t, dice.Equal(race.NewDice(race.Red, race.Yellow)))
}

func TestLoadRejectsInvalidRace(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
scenario "broken" {
  race = "r+,y"
  dice = "r"
}
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, race.ErrCamelInOasis)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoadRejectsInvalidDice(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
scenario "broken" {
  race = "r,y"
  dice = "r,y"
}
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, race.ErrNotACamel)
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
scenario "dup" {
  race = "r,y"
  dice = "r"
}

scenario "dup" {
  race = "g,w"
  dice = "g"
}
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defined twice")
}

func TestGetMissingScenario(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
scenario "present" {
  race = "r,y"
  dice = "r"
}
`)

	config, err := Load(path)
	require.NoError(t, err)

	_, err = config.Get("absent")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
