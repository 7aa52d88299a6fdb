package cloud

// Action is a user-invocable instance operation.
type Action string

const (
	ActionCreate  Action = "create"
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionReboot  Action = "reboot"
	ActionDestroy Action = "destroy"
)

// LifecycleState names a node of the instance lifecycle graph.
type LifecycleState string

const (
	LifecycleStart        LifecycleState = "start"
	LifecyclePending      LifecycleState = "pending"
	LifecycleStopped      LifecycleState = "stopped"
	LifecycleRunning      LifecycleState = "running"
	LifecycleShuttingDown LifecycleState = "shutting_down"
	LifecycleFinish       LifecycleState = "finish"
)

// Transition is one edge of the instance lifecycle. Automatic transitions
// are performed by the remote system on its own after a prior action
// completes; they are never offered as instance actions.
type Transition struct {
	From      LifecycleState
	To        LifecycleState
	Action    Action
	Automatic bool
}

// transitions is the full instance lifecycle, in declaration order.
var transitions = []Transition{
	{From: LifecycleStart, To: LifecyclePending, Action: ActionCreate},
	{From: LifecyclePending, To: LifecycleStopped, Automatic: true},
	{From: LifecycleStopped, To: LifecycleRunning, Action: ActionStart},
	{From: LifecycleRunning, To: LifecycleRunning, Action: ActionReboot},
	{From: LifecycleRunning, To: LifecycleShuttingDown, Action: ActionStop},
	{From: LifecycleShuttingDown, To: LifecycleStopped, Automatic: true},
	{From: LifecycleStopped, To: LifecycleFinish, Action: ActionDestroy},
}

// Transitions returns a copy of the lifecycle transition table.
func Transitions() []Transition {
	out := make([]Transition, len(transitions))
	copy(out, transitions)
	return out
}

// ActionsFor returns the user-invocable actions available from the given
// lifecycle state, in table order. The result is defined statically by the
// table and does not depend on remote state.
func ActionsFor(state LifecycleState) []Action {
	var actions []Action
	for _, t := range transitions {
		if t.From == state && !t.Automatic {
			actions = append(actions, t.Action)
		}
	}
	return actions
}

// lifecycleFor maps a uniform instance state onto its lifecycle node.
func lifecycleFor(s State) LifecycleState {
	switch s {
	case StateRunning:
		return LifecycleRunning
	case StateStopped:
		return LifecycleStopped
	default:
		return LifecyclePending
	}
}

// ActionsForState returns the actions available to an instance reported in
// the given uniform state.
func ActionsForState(s State) []Action {
	return ActionsFor(lifecycleFor(s))
}
