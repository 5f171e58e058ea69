package aggregate

import (
	"time"

	"github.com/Tiliavir/paperdash/internal/timecalc"
)

// RequiredMinutes is the goal for every weekday from the date of start through
// the date of now, both inclusive. Both times must be in the local location.
func RequiredMinutes(start, now time.Time, dailyGoal int) int {
	return timecalc.CountWeekdays(start, now) * dailyGoal
}

// Debt is required minus actual minutes. Positive means behind the goal;
// there is no lower bound.
func Debt(required, actual int) int {
	return required - actual
}
