package chat

// Stage is a state of a single pipeline run.
type Stage int

// Pipeline stages. Runs move forward through the list and end in Done or Failed.
const (
	StageIdle Stage = iota
	StageClassifying
	StageRetrieving
	StageAssembling
	StageGenerating
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageIdle:        "idle",
	StageClassifying: "classifying",
	StageRetrieving:  "retrieving",
	StageAssembling:  "assembling",
	StageGenerating:  "generating",
	StageDone:        "done",
	StageFailed:      "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}
