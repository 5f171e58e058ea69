package cmd

import (
	"github.com/gen2brain/beeep"

	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/timecalc"
)

// notifier is swapped out in tests.
var notifier = func(title, message string) error {
	return beeep.Notify(title, message, "")
}

// notifyMessage is the desktop notification for snap.
func notifyMessage(snap model.MetricsSnapshot, dailyGoal int) (title, message string) {
	if deficit := snap.DailyDeficit(dailyGoal); deficit > 0 {
		return "paperdash", "You owe: " + timecalc.FormatMinutes(deficit) + " today"
	}
	return "paperdash", "Daily goal reached!"
}

func notify(snap model.MetricsSnapshot, dailyGoal int) error {
	beeep.AppName = "paperdash"
	return notifier(notifyMessage(snap, dailyGoal))
}
