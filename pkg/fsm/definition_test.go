package fsm_test

import (
	"testing"

	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/fsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		def     *fsm.Definition
		wantErr string
	}{
		{
			name:    "missing initial",
			def:     fsm.NewDefinition().Rule("a", "x", "a"),
			wantErr: "no initial state",
		},
		{
			name:    "undefined initial",
			def:     fsm.NewDefinition().Rule("a", "x", "a").Initial("b"),
			wantErr: "initial state",
		},
		{
			name:    "undefined target",
			def:     fsm.NewDefinition().Rule("a", "x", "b").Initial("a"),
			wantErr: "targets",
		},
		{
			name:    "empty trigger",
			def:     fsm.NewDefinition().Rule("a", "", "a").Initial("a"),
			wantErr: "empty trigger",
		},
		{
			name:    "empty state name",
			def:     fsm.NewDefinition().State("").Rule("a", "go", "").Initial("a"),
			wantErr: "empty name",
		},
		{
			name:    "empty terminal name",
			def:     fsm.NewDefinition().Rule("a", "go", "b").Terminal("b", "").Initial("a"),
			wantErr: "empty name",
		},
		{
			name:    "terminal with rules",
			def:     fsm.NewDefinition().Rule("a", "x", "b").Rule("b", "y", "a").Terminal("b").Initial("a"),
			wantErr: "outgoing rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefinition_UnknownStateIsWrapped(t *testing.T) {
	_, err := fsm.NewDefinition().Rule("a", "x", "ghost").Initial("a").Build()
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestDefinition_BuildIsolatesTable(t *testing.T) {
	def := fsm.NewDefinition().Rule("a", "x", "b").Terminal("b").Initial("a")
	spec, err := def.Build()
	require.NoError(t, err)

	def.Rule("a", "y", "b")
	assert.Len(t, spec.Table.RulesFor("a"), 1)
}

func TestDefinition_StatesAndTerminals(t *testing.T) {
	spec := fsm.NewDefinition().
		Name("phone").
		State("off_hook",
			domain.Rule{Trigger: "call_dialed", To: "connecting"},
			domain.Rule{Trigger: "stop_using_phone", To: "on_hook"},
		).
		State("connecting", domain.Rule{Trigger: "hung_up", To: "off_hook"}).
		Terminal("on_hook").
		Initial("off_hook").
		MustBuild()

	assert.Equal(t, "phone", spec.Name)
	assert.Equal(t, []domain.StateID{"off_hook", "connecting", "on_hook"}, spec.Table.States())
	assert.Equal(t, []domain.StateID{"on_hook"}, spec.TerminalStates())
	assert.True(t, spec.IsTerminal("on_hook"))
	assert.False(t, spec.IsTerminal("off_hook"))
}
