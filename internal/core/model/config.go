package model

// DurationChoices lists the selectable countdown lengths in minutes, in
// display order.
var DurationChoices = []int{5, 15, 30, 60}

// ValidDuration reports whether minutes is one of the selectable lengths.
func ValidDuration(minutes int) bool {
	for _, choice := range DurationChoices {
		if choice == minutes {
			return true
		}
	}
	return false
}
