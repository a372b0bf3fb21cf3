package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/gograins/pkg/mapping"
	"github.com/itohio/gograins/pkg/monitor"
	"github.com/itohio/gograins/pkg/trigger"
)

// createToolbar creates the toolbar: connect and settings on the left, the
// patch selectors and audio toggle on the right.
func createToolbar(state *appState) fyne.CanvasObject {
	state.connectBtn = widget.NewButtonWithIcon("", theme.LoginIcon(), func() {
		handleConnect(state)
	})

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		showSettingsDialog(state)
	})

	state.tableSelect = widget.NewSelect(tableNames(), func(string) {
		onPatchChanged(state)
	})
	state.tableSelect.SetSelected(state.cfg.Engine.PitchTable)

	state.edgeSelect = widget.NewSelect([]string{trigger.Rising.String(), trigger.Falling.String()}, func(string) {
		onPatchChanged(state)
	})
	state.edgeSelect.SetSelected(state.cfg.Engine.ClockEdge)

	state.audioBtn = widget.NewButtonWithIcon("", theme.VolumeUpIcon(), func() {
		toggleAudio(state)
	})

	return container.NewBorder(
		nil,
		nil,
		container.NewHBox(state.connectBtn, settingsBtn),
		container.NewHBox(state.tableSelect, state.edgeSelect, state.audioBtn),
		nil,
	)
}

// tableNames lists the pitch tables in index order.
func tableNames() []string {
	var names []string
	for t := mapping.Freq; t.Valid(); t++ {
		names = append(names, t.String())
	}
	return names
}

// onPatchChanged stores the selected table and edge and applies them.
func onPatchChanged(state *appState) {
	if state.tableSelect == nil || state.edgeSelect == nil {
		return
	}
	if state.tableSelect.Selected == "" || state.edgeSelect.Selected == "" {
		return
	}
	if state.cfg.Engine.PitchTable == state.tableSelect.Selected && state.cfg.Engine.ClockEdge == state.edgeSelect.Selected {
		return
	}

	state.cfg.Engine.PitchTable = state.tableSelect.Selected
	state.cfg.Engine.ClockEdge = state.edgeSelect.Selected
	if err := state.cfg.Save(state.configPath); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save config: %w", err), state.window)
	}
	applyPatch(state)
}

// applyPatch sends the configured table and edge to the module and the trace.
func applyPatch(state *appState) {
	ecfg, err := state.cfg.EngineConfig()
	if err != nil {
		dialog.ShowError(fmt.Errorf("invalid engine settings: %w", err), state.window)
		return
	}

	state.trace.SetEdge(ecfg.ClockEdge)

	if state.device == nil || !state.device.IsConnected() {
		return
	}
	if err := state.device.Configure(ecfg.PitchTable, ecfg.ClockEdge); err != nil {
		log.Printf("Failed to configure module: %v", err)
	}
}

// toggleAudio starts or stops playback, opening the audio device on first
// use.
func toggleAudio(state *appState) {
	if state.player == nil {
		player, err := monitor.NewPlayer(state.resynth, state.cfg.Audio.BlockLength)
		if err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		state.player = player
	}

	if state.player.IsStarted() {
		state.player.Stop()
		state.audioBtn.SetIcon(theme.VolumeUpIcon())
		return
	}
	state.player.Start()
	state.audioBtn.SetIcon(theme.VolumeMuteIcon())
}

func (state *appState) closeAudio() {
	if state.player == nil {
		return
	}
	if err := state.player.Close(); err != nil {
		log.Printf("Error closing audio: %v", err)
	}
}
