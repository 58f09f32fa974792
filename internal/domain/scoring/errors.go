package scoring

import (
	"errors"
	"fmt"
)

// Sentinel kinds for scoring errors. These allow errors.Is/As from callers.
var (
	ErrNoGroundTruth      = errors.New("ground truth is not set")
	ErrInvalidNumericData = errors.New("submission contains invalid numeric data")
)

// LengthMismatchError reports a submission whose prediction count differs
// from the ground truth length. The message carries both counts.
type LengthMismatchError struct {
	Got  int // predictions in the submission
	Want int // values in the ground truth
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("prediction count (%d) does not match ground truth count (%d)", e.Got, e.Want)
}
