package engine

import "fmt"

// Respondent-facing message strings. These are part of the engine's contract
// with the UI boundary and with externally-stored responses, so they must not
// drift.
const (
	MsgRequired       = "This field is required"
	MsgInvalidEmail   = "Please enter a valid email address"
	MsgInvalidNumber  = "Please enter a valid number"
	MsgStaleSelection = "Some selected options are no longer available"
	MsgStaleOption    = "Selected option is no longer available"
	MsgStaleRating    = "Selected rating is no longer available"
	MsgInvalidFormat  = "Invalid format"
)

func msgMinSelections(n int) string {
	if n == 1 {
		return "Please select at least 1 option"
	}
	return fmt.Sprintf("Please select at least %d options", n)
}

func msgMaxSelections(n int) string {
	if n == 1 {
		return "Please select at most 1 option"
	}
	return fmt.Sprintf("Please select at most %d options", n)
}

func msgMinLength(n int) string {
	return fmt.Sprintf("Must be at least %d characters", n)
}

func msgMaxLength(n int) string {
	return fmt.Sprintf("Must be at most %d characters", n)
}

func msgMinNumber(n float64) string {
	return fmt.Sprintf("Must be at least %v", trimNumber(n))
}

func msgMaxNumber(n float64) string {
	return fmt.Sprintf("Must be at most %v", trimNumber(n))
}

// trimNumber renders whole floats without a trailing ".0" so generated
// messages read naturally ("at least 3", not "at least 3.0").
func trimNumber(n float64) any {
	if n == float64(int64(n)) {
		return int64(n)
	}
	return n
}
