package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"ringtimer/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	duration *widget.Select
	notify   *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("RingTimer Settings")

	duration := widget.NewSelect(durationOptions(), nil)
	duration.SetSelected(minutesLabel(settings.DefaultDurationMinutes))

	notify := widget.NewCheck("Notify when the countdown finishes", nil)
	notify.SetChecked(settings.NotifyOnFinish)

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Default duration"), duration),
		notify,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 200))

	prefs := &Window{
		window:   window,
		settings: settings,
		onSave:   onSave,
		duration: duration,
		notify:   notify,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.duration.SetSelected(minutesLabel(settings.DefaultDurationMinutes))
	prefs.notify.SetChecked(settings.NotifyOnFinish)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := minutesFromLabel(prefs.duration.Selected); ok {
		settings.DefaultDurationMinutes = minutes
	}
	settings.NotifyOnFinish = prefs.notify.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func durationOptions() []string {
	options := make([]string, 0, len(model.DurationChoices))
	for _, minutes := range model.DurationChoices {
		options = append(options, minutesLabel(minutes))
	}
	return options
}

func minutesLabel(minutes int) string {
	return fmt.Sprintf("%d minutes", minutes)
}

func minutesFromLabel(label string) (int, bool) {
	for _, minutes := range model.DurationChoices {
		if minutesLabel(minutes) == label {
			return minutes, true
		}
	}
	return 0, false
}
