package presenter

import (
	"fmt"

	"piclabel/domain/classify"
)

// User-visible outcome messages.
const (
	MsgNothingFound = "Nothing recognized."
	MsgUncertain    = "Not confident enough to say."
	MsgFallback     = "Unexpected classification result."
)

// Outcome is the typed completion of one classification request: either a
// ranked prediction list or a failure. A non-nil empty list means the model
// ran and found nothing.
type Outcome struct {
	RequestID   string
	Predictions []classify.Prediction
	Err         error
}

// FormatOutcome renders an outcome as the single display string. A present
// prediction list always wins over a simultaneously present error; a nil
// list with a nil error is the unexpected shape and gets the fallback text.
func FormatOutcome(o Outcome, threshold float32) string {
	if o.Predictions != nil {
		if len(o.Predictions) == 0 {
			return MsgNothingFound
		}
		top := o.Predictions[0]
		if top.Confidence >= threshold {
			return fmt.Sprintf("%s %.1f%%", top.Label, top.Confidence*100)
		}
		return MsgUncertain
	}
	if o.Err != nil {
		return o.Err.Error()
	}
	return MsgFallback
}
