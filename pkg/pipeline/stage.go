package pipeline

// Kind classifies what a Stage's Run call decided (spec §4.3): short-circuit
// the whole pipeline with a result, narrow the live candidate set and
// continue, or leave everything untouched and yield to the next stage.
type Kind int

const (
	// Skip leaves the Context unchanged; the orchestrator moves on.
	Skip Kind = iota
	// Narrow means the stage mutated Context.Candidates (or related
	// scores) but did not reach a final verdict.
	Narrow
	// Verdict short-circuits the pipeline with a final Result.
	Verdict
)

func (k Kind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Narrow:
		return "narrow"
	case Verdict:
		return "verdict"
	default:
		return "unknown"
	}
}

// Outcome is what a Stage.Run call returns: one of Skip, Narrow, or
// Verdict (with Result populated only for Verdict).
type Outcome struct {
	Kind   Kind
	Result Result
}

func skip() Outcome            { return Outcome{Kind: Skip} }
func narrow() Outcome          { return Outcome{Kind: Narrow} }
func verdict(r Result) Outcome { return Outcome{Kind: Verdict, Result: r} }

// Stage is one step of the detection pipeline (spec §9: "a tagged variant
// Stage = Bom | Utf1632 | Escape | ... with a single run(context) ->
// StageOutcome operation").
type Stage interface {
	Name() string
	Run(ctx *Context) Outcome
}

// Stages returns the eleven pipeline stages in the strict order spec §4.3
// mandates.
func Stages() []Stage {
	return []Stage{
		bomStage{},
		utf1632Stage{},
		escapeStage{},
		binaryGuardStage{},
		markupStage{},
		asciiStage{},
		utf8ValidateStage{},
		byteValidityStage{},
		cjkGateStage{},
		structuralProbeStage{},
		statisticalScoreStage{},
	}
}

// CheapStages returns the deterministic, allocation-light prefix stages
// spec §4.13 names for the streaming detector's early-termination check
// after each chunk boundary: BOM, UTF-16/32 pattern, escape, and markup.
func CheapStages() []Stage {
	return []Stage{
		bomStage{},
		utf1632Stage{},
		escapeStage{},
		markupStage{},
	}
}
