package main

import (
	"log"
	"time"

	"ringtimer/internal/core/countdown"
	"ringtimer/internal/platform"
	"ringtimer/internal/present"
	"ringtimer/internal/storage"
	"ringtimer/internal/ui/preferences"
	"ringtimer/internal/ui/timerscreen"
	"ringtimer/internal/ui/tray"
	"ringtimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "RingTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.ringtimer.app")
	fyneApp.SetIcon(resources.MustIcon("ring.svg"))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	settings = settings.Normalize()

	engine := countdown.New(countdown.Config{TickInterval: time.Second})
	screen := timerscreen.New(engine, settings.DefaultDurationMinutes)

	screen.SetOnDurationChange(func(minutes int) {
		settings.DefaultDurationMinutes = minutes
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	})
	screen.SetOnFinish(func() {
		if settings.NotifyOnFinish {
			fyneApp.SendNotification(fyne.NewNotification(appName, "Countdown finished"))
		}
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated.Normalize()
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		screen.SelectDuration(settings.DefaultDurationMinutes)
	})

	window := fyneApp.NewWindow(appName)
	window.SetContent(screen.Content())
	window.Resize(fyne.NewSize(380, 440))
	window.SetMaster()

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShowWindow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnPreferences: prefsWindow.Show,
			OnQuickStart: func(minutes int) {
				screen.SelectDuration(minutes)
				engine.Start()
			},
			OnCancel: engine.Cancel,
			OnQuit: func() {
				screen.Detach()
				engine.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon("ring.svg"))

		events := engine.Subscribe(5)
		go func() {
			for event := range events {
				running := event.Running
				status := trayStatus(event)
				fyne.Do(func() {
					trayManager.SetStatus(status)
					trayManager.SetRunning(running)
				})
			}
		}()
	}

	window.SetCloseIntercept(func() {
		screen.Detach()
		engine.Close()
		fyneApp.Quit()
	})

	screen.Attach()
	window.Show()
	fyneApp.Run()
}

func trayStatus(event countdown.Event) string {
	if event.Running {
		return present.FormatClock(event.Snapshot.RemainingSeconds) + " remaining"
	}
	if event.Type == countdown.EventFinished {
		return "finished"
	}
	return "idle"
}
