package config_test

import (
	"testing"

	"github.com/aretw0/switchyard/pkg/config"
	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/phone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	f, err := config.Load("testdata/phone.yaml")
	require.NoError(t, err)

	spec, err := f.Build()
	require.NoError(t, err)

	want, err := phone.Definition().Build()
	require.NoError(t, err)

	assert.Equal(t, want.Table.States(), spec.Table.States())
	for _, s := range want.Table.States() {
		assert.Equal(t, want.Table.RulesFor(s), spec.Table.RulesFor(s), "state %s", s)
	}
	assert.True(t, spec.IsTerminal("on_hook"))
	assert.Equal(t, "off the hook", f.Label("off_hook"))
	assert.Equal(t, "hung_up", f.Label("hung_up"))
}

func TestLoad_JSONDefaultsName(t *testing.T) {
	f, err := config.Load("testdata/call.json")
	require.NoError(t, err)
	assert.Equal(t, "call", f.Name)

	spec, err := f.Build()
	require.NoError(t, err)
	next, err := spec.Table.Apply("connected", "hang_up")
	require.NoError(t, err)
	assert.Equal(t, domain.StateID("idle"), next)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := config.Parse([]byte("initial: a\nstates: []\ncolour: red\n"), "yaml")
	assert.Error(t, err)

	_, err = config.Parse([]byte(`{"initial": "a", "colour": "red"}`), "json")
	assert.Error(t, err)

	_, err = config.Parse([]byte("x"), "toml")
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	f, err := config.FromMap(map[string]any{
		"initial": "locked",
		"states": []any{
			map[string]any{"name": "locked", "rules": []any{
				map[string]any{"trigger": "unlock", "to": "open"},
			}},
		},
		"terminal": []any{"open"},
	})
	require.NoError(t, err)

	spec, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, []domain.StateID{"open"}, spec.TerminalStates())
}

func TestFromSpec_RoundTrip(t *testing.T) {
	spec, err := phone.Definition().Build()
	require.NoError(t, err)

	data, err := config.FromSpec(spec, nil).Marshal()
	require.NoError(t, err)

	f, err := config.Parse(data, "yaml")
	require.NoError(t, err)
	again, err := f.Build()
	require.NoError(t, err)

	assert.Equal(t, spec.Table.States(), again.Table.States())
	assert.Equal(t, spec.Table.RulesFor(phone.Connected), again.Table.RulesFor(phone.Connected))
}
