package cloud

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionsFor(t *testing.T) {
	tests := []struct {
		state LifecycleState
		want  []Action
	}{
		{LifecycleStart, []Action{ActionCreate}},
		{LifecyclePending, nil},
		{LifecycleStopped, []Action{ActionStart, ActionDestroy}},
		{LifecycleRunning, []Action{ActionReboot, ActionStop}},
		{LifecycleShuttingDown, nil},
		{LifecycleFinish, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			require.Equal(t, tt.want, ActionsFor(tt.state))
		})
	}
}

func TestActionsForState(t *testing.T) {
	require.Equal(t, []Action{ActionReboot, ActionStop}, ActionsForState(StateRunning))
	require.Equal(t, []Action{ActionStart, ActionDestroy}, ActionsForState(StateStopped))

	// PENDING (and anything transitional) has no user-invocable actions.
	require.Empty(t, ActionsForState(StatePending))
	require.Empty(t, ActionsForState(StateUnknown))
}

func TestTransitionsCopy(t *testing.T) {
	ts := Transitions()
	require.Len(t, ts, 7)

	// Mutating the returned slice must not affect the table.
	ts[0].Action = ActionDestroy
	require.Equal(t, ActionCreate, Transitions()[0].Action)
}

func TestAutomaticTransitionsNotOffered(t *testing.T) {
	for _, tr := range Transitions() {
		if !tr.Automatic {
			continue
		}
		for _, a := range ActionsFor(tr.From) {
			require.NotEqual(t, tr.Action, a, "automatic transition from %s leaked into actions", tr.From)
		}
	}
}
