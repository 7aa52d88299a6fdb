package cloud

// EntityKind selects the translation table for a raw power state: templates
// and instances expose different uniform states for the same power value.
type EntityKind int

const (
	KindImage EntityKind = iota
	KindInstance
)

// TranslateState maps a raw vSphere power state onto the uniform state
// model. Pure function, no side effects.
//
// For images a powered-off template is usable, so poweredOff is AVAILABLE
// and poweredOn is UNAVAILABLE; any other value reports UNKNOWN. For
// instances everything that is neither poweredOff nor poweredOn (suspended,
// transitional states) lands in the PENDING catch-all.
func TranslateState(kind EntityKind, raw string) State {
	if kind == KindImage {
		switch raw {
		case "poweredOff":
			return StateAvailable
		case "poweredOn":
			return StateUnavailable
		default:
			return StateUnknown
		}
	}

	switch raw {
	case "poweredOff":
		return StateStopped
	case "poweredOn":
		return StateRunning
	default:
		return StatePending
	}
}
