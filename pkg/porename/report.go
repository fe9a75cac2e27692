package porename

// Stage names the pass a Result belongs to
type Stage string

const (
	// StageNormalize is the date-prefix and split pass
	StageNormalize Stage = "normalize"
	// StageFinalize is the identifier rename pass
	StageFinalize Stage = "finalize"
)

// Outcome is how a file came out of a stage
type Outcome int

const (
	// OutcomeRenamed means the file was renamed (pass 2: with identifiers)
	OutcomeRenamed Outcome = iota
	// OutcomeSplit means a scanned file was split into one file per page
	OutcomeSplit
	// OutcomeNotFound means no identifier was found; the file was still renamed
	OutcomeNotFound
	// OutcomeFailed means processing of the file stopped on an error
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRenamed:
		return "renamed"
	case OutcomeSplit:
		return "split"
	case OutcomeNotFound:
		return "not found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes what happened to one file in one stage
type Result struct {
	Stage          Stage
	Original       string         // File name before the stage
	Outputs        []string       // File names after the stage
	Classification Classification // Valid unless the file could not be classified
	Identifiers    IdentifierSet  // Finalize only
	Outcome        Outcome
	Err            error

	repeat bool // Second failure of a file already counted
}

// Reporter receives one Result per file and stage, in processing order
type Reporter interface {
	Report(Result)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(Result)

// Report calls f(r)
func (f ReporterFunc) Report(r Result) { f(r) }

// Summary counts the outcomes of a run
type Summary struct {
	Normalized int // Files renamed with a date prefix
	Split      int // Scanned files split into pages
	Pages      int // Page files written by splits
	Renamed    int // Files renamed with identifiers
	NotFound   int // Files renamed as ERREUR_COMMANDE
	Failed     int // Files that stopped on an error in either stage, counted once
}

func (s *Summary) add(r Result) {
	switch {
	case r.Outcome == OutcomeFailed:
		if !r.repeat {
			s.Failed++
		}
	case r.Stage == StageNormalize && r.Outcome == OutcomeSplit:
		s.Split++
		s.Pages += len(r.Outputs)
	case r.Stage == StageNormalize:
		s.Normalized++
	case r.Outcome == OutcomeNotFound:
		s.NotFound++
	default:
		s.Renamed++
	}
}
