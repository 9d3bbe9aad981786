package timerscreen

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ringtimer/internal/core/countdown"
	"ringtimer/internal/core/model"
	"ringtimer/internal/present"
	"ringtimer/internal/ui/ring"
)

// Screen is the single countdown screen: duration selector, progress ring
// with a digital clock, and Start/Cancel buttons toggled by the running flag.
type Screen struct {
	engine *countdown.Engine

	ring         *ring.Ring
	clock        *canvas.Text
	status       *canvas.Text
	durations    *widget.RadioGroup
	startButton  *widget.Button
	cancelButton *widget.Button
	content      fyne.CanvasObject

	subscription <-chan countdown.Event
	onDuration   func(minutes int)
	onFinish     func()
}

// New builds the screen around an engine and selects the initial duration.
// No timer is started.
func New(engine *countdown.Engine, defaultMinutes int) *Screen {
	screen := &Screen{engine: engine}

	screen.ring = ring.New()

	screen.clock = canvas.NewText("00:00:00", theme.Color(theme.ColorNameForeground))
	screen.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	screen.clock.TextSize = 34
	screen.clock.Alignment = fyne.TextAlignCenter

	screen.status = canvas.NewText("Pick a duration and press Start", theme.Color(theme.ColorNameForeground))
	screen.status.TextSize = 13
	screen.status.Alignment = fyne.TextAlignCenter

	screen.durations = widget.NewRadioGroup(durationLabels(), func(selected string) {
		minutes, ok := minutesForLabel(selected)
		if !ok {
			return
		}
		screen.configureMinutes(minutes)
	})
	screen.durations.Horizontal = true
	screen.durations.Required = true

	screen.startButton = widget.NewButton("Start", func() {
		screen.engine.Start()
	})
	screen.startButton.Importance = widget.HighImportance

	screen.cancelButton = widget.NewButton("Cancel", func() {
		screen.engine.Cancel()
	})
	screen.cancelButton.Hide()

	dial := container.NewMax(screen.ring, container.NewCenter(screen.clock))
	buttons := container.NewCenter(container.NewHBox(screen.startButton, screen.cancelButton))
	screen.content = container.NewBorder(
		container.NewVBox(container.NewCenter(screen.durations), container.NewCenter(screen.status)),
		buttons,
		nil,
		nil,
		dial,
	)

	if !model.ValidDuration(defaultMinutes) {
		defaultMinutes = model.DurationChoices[0]
	}
	screen.durations.SetSelected(labelForMinutes(defaultMinutes))

	return screen
}

// Content returns the root canvas object for the screen.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// SetOnDurationChange registers a callback fired after a new duration has
// been applied to the engine.
func (screen *Screen) SetOnDurationChange(handler func(minutes int)) {
	screen.onDuration = handler
}

// SetOnFinish registers a callback fired when a countdown reaches zero.
func (screen *Screen) SetOnFinish(handler func()) {
	screen.onFinish = handler
}

// SelectDuration switches the selector to the given choice, which configures
// the engine through the selection handler. Unknown values are ignored.
func (screen *Screen) SelectDuration(minutes int) {
	if !model.ValidDuration(minutes) {
		return
	}
	screen.durations.SetSelected(labelForMinutes(minutes))
}

// Attach subscribes the screen to engine events and begins dispatching them
// onto the UI thread. It starts no timer.
func (screen *Screen) Attach() {
	if screen.subscription != nil {
		return
	}
	events := screen.engine.Subscribe(8)
	screen.subscription = events

	go func() {
		for event := range events {
			if event.Type == countdown.EventFinished && screen.onFinish != nil {
				screen.onFinish()
			}
			frame := present.Render(event.Snapshot)
			running := event.Running
			eventType := event.Type
			fyne.Do(func() {
				screen.apply(frame, running, eventType)
			})
		}
	}()
}

// Detach cancels any active countdown unconditionally and drops the event
// subscription, ending the dispatch goroutine. Safe to call more than once.
func (screen *Screen) Detach() {
	screen.engine.Cancel()
	if screen.subscription != nil {
		screen.engine.Unsubscribe(screen.subscription)
		screen.subscription = nil
	}
}

func (screen *Screen) configureMinutes(minutes int) {
	if err := screen.engine.Configure(minutes * 60); err != nil {
		log.Printf("configure %d minutes: %v", minutes, err)
		return
	}
	screen.apply(present.Render(screen.engine.Snapshot()), false, countdown.EventCancelled)
	if screen.onDuration != nil {
		screen.onDuration(minutes)
	}
}

// apply renders one frame. Must run on the UI thread.
func (screen *Screen) apply(frame present.Frame, running bool, eventType countdown.EventType) {
	screen.clock.Text = frame.DisplayText
	screen.clock.Refresh()
	screen.ring.SetProgress(frame.Progress)

	if running {
		screen.status.Text = "Counting down"
		screen.startButton.Hide()
		screen.cancelButton.Show()
		screen.durations.Disable()
	} else {
		if eventType == countdown.EventFinished {
			screen.status.Text = "Time is up"
		} else {
			screen.status.Text = "Pick a duration and press Start"
		}
		screen.startButton.Show()
		screen.cancelButton.Hide()
		screen.durations.Enable()
	}
	screen.status.Refresh()
}

func durationLabels() []string {
	labels := make([]string, 0, len(model.DurationChoices))
	for _, minutes := range model.DurationChoices {
		labels = append(labels, labelForMinutes(minutes))
	}
	return labels
}

func labelForMinutes(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

func minutesForLabel(label string) (int, bool) {
	for _, minutes := range model.DurationChoices {
		if labelForMinutes(minutes) == label {
			return minutes, true
		}
	}
	return 0, false
}
