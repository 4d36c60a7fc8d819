package mypoem

import "fmt"

// ValidationReason identifies why a revision record is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrOutOfOrderSeq  ValidationReason = "out_of_order_seq"
	ErrWordCountDrift ValidationReason = "word_count_drift"
	ErrLineCountDrift ValidationReason = "line_count_drift"
	ErrTimeRegression ValidationReason = "time_regression"
)

// ValidationError describes a single validation failure in a revision history.
type ValidationError struct {
	Index    int              // index of the offending revision in the history
	Revision Revision         // the offending revision
	Reason   ValidationReason // why this revision is invalid
	Want     int              // expected value for count/seq mismatches
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrOutOfOrderSeq:
		return fmt.Sprintf("revision %d: seq %d is not %d",
			e.Index, e.Revision.Seq, e.Want)
	case ErrWordCountDrift:
		return fmt.Sprintf("revision %d: stored word count %d, content has %d",
			e.Index, e.Revision.WordCount, e.Want)
	case ErrLineCountDrift:
		return fmt.Sprintf("revision %d: stored line count %d, content has %d",
			e.Index, e.Revision.LineCount, e.Want)
	case ErrTimeRegression:
		return fmt.Sprintf("revision %d: created before its predecessor", e.Index)
	default:
		return fmt.Sprintf("revision %d: unknown validation error", e.Index)
	}
}

// ValidateHistory checks the structural invariants of a loaded revision
// history: sequence numbers count up from 1, stored word/line counts match
// the content, and timestamps never move backwards. Returns a slice of
// validation errors, or nil if the history is valid.
func ValidateHistory(revisions []Revision) []ValidationError {
	var errs []ValidationError

	for i, rev := range revisions {
		if rev.Seq != i+1 {
			errs = append(errs, ValidationError{
				Index:    i,
				Revision: rev,
				Reason:   ErrOutOfOrderSeq,
				Want:     i + 1,
			})
		}
		if got := CountWords(rev.Content); rev.WordCount != got {
			errs = append(errs, ValidationError{
				Index:    i,
				Revision: rev,
				Reason:   ErrWordCountDrift,
				Want:     got,
			})
		}
		if got := CountLines(rev.Content); rev.LineCount != got {
			errs = append(errs, ValidationError{
				Index:    i,
				Revision: rev,
				Reason:   ErrLineCountDrift,
				Want:     got,
			})
		}
		if i > 0 && rev.CreatedAt.Before(revisions[i-1].CreatedAt) {
			errs = append(errs, ValidationError{
				Index:    i,
				Revision: rev,
				Reason:   ErrTimeRegression,
			})
		}
	}

	return errs
}
