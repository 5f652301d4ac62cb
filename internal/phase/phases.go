package phase

// ModulePhase tracks how far a source unit has progressed through the front end.
//
// Progression is sequential: NotStarted -> Lexed -> Parsed -> TypeChecked.
// A unit that fails a phase stays at the last phase it completed.
type ModulePhase int

const (
	PhaseNotStarted  ModulePhase = iota // Unit registered but not processed
	PhaseLexed                          // Tokens generated
	PhaseParsed                         // AST built
	PhaseTypeChecked                    // Every expression typed, every declaration concrete
)

// PhasePrerequisites maps each phase to its required predecessor phase
var PhasePrerequisites = map[ModulePhase]ModulePhase{
	PhaseLexed:       PhaseNotStarted,
	PhaseParsed:      PhaseLexed,
	PhaseTypeChecked: PhaseParsed,
}

// CanAdvance reports whether a unit at from may move to target
func CanAdvance(from, target ModulePhase) bool {
	required, ok := PhasePrerequisites[target]
	return ok && from == required
}

func (p ModulePhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLexed:
		return "Lexed"
	case PhaseParsed:
		return "Parsed"
	case PhaseTypeChecked:
		return "TypeChecked"
	default:
		return "Unknown"
	}
}
