package main

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/gograins/pkg/link"
)

// showSettingsDialog displays a settings dialog with tabs for all configuration options.
func showSettingsDialog(state *appState) {
	tabs := container.NewAppTabs(
		createSerialTab(state),
		createEngineTab(state),
		createScopeTab(state),
		createAudioTab(state),
		createMockTab(state),
	)

	content := container.NewBorder(nil, nil, nil, nil, tabs)
	content.Resize(fyne.NewSize(600, 500))

	d := dialog.NewCustom("Settings", "Close", content, state.window)
	d.Resize(fyne.NewSize(600, 500))
	d.Show()
}

func saveConfig(state *appState) bool {
	if err := state.cfg.Save(state.configPath); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save config: %w", err), state.window)
		return false
	}
	return true
}

// createSerialTab creates the Serial configuration tab.
func createSerialTab(state *appState) *container.TabItem {
	var options []string
	if ports, err := link.Ports(); err == nil {
		for _, port := range ports {
			options = append(options, port.Name)
		}
	}
	current := state.cfg.Serial.Port
	found := false
	for _, opt := range options {
		if opt == current {
			found = true
			break
		}
	}
	if !found && current != "" {
		options = append(options, current)
	}

	portSelect := widget.NewSelect(options, nil)
	if current != "" {
		portSelect.SetSelected(current)
	}

	baudEntry := widget.NewEntry()
	baudEntry.SetText(strconv.Itoa(state.cfg.Serial.BaudRate))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Serial Port", Widget: portSelect},
			{Text: "Baud Rate", Widget: baudEntry},
		},
		OnSubmit: func() {
			changed := false
			if portSelect.Selected != "" && portSelect.Selected != state.cfg.Serial.Port {
				state.cfg.Serial.Port = portSelect.Selected
				changed = true
			}
			if baud, err := strconv.Atoi(baudEntry.Text); err == nil && baud > 0 && baud != state.cfg.Serial.BaudRate {
				state.cfg.Serial.BaudRate = baud
				changed = true
			}
			if !saveConfig(state) {
				return
			}
			if changed && !state.useMock {
				reconnect(state)
			}
		},
	}

	return container.NewTabItem("Serial", form)
}

// createEngineTab creates the Engine configuration tab. Table and edge are
// also on the toolbar; the sample rate only affects the simulated module.
func createEngineTab(state *appState) *container.TabItem {
	rateEntry := widget.NewEntry()
	rateEntry.SetText(strconv.FormatUint(uint64(state.cfg.Engine.SampleRate), 10))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Sample Rate (Hz)", Widget: rateEntry},
		},
		OnSubmit: func() {
			rate, err := strconv.ParseUint(rateEntry.Text, 10, 32)
			if err != nil || rate == 0 {
				dialog.ShowError(fmt.Errorf("invalid sample rate %q", rateEntry.Text), state.window)
				return
			}
			state.cfg.Engine.SampleRate = uint32(rate)
			if saveConfig(state) && state.useMock {
				reconnect(state)
			}
		},
	}

	return container.NewTabItem("Engine", form)
}

// createScopeTab creates the Scope configuration tab.
func createScopeTab(state *appState) *container.TabItem {
	windowEntry := widget.NewEntry()
	windowEntry.SetText(fmt.Sprintf("%.1f", state.cfg.Scope.WindowSeconds))

	pointsEntry := widget.NewEntry()
	pointsEntry.SetText(strconv.Itoa(state.cfg.Scope.MaxDisplayPoints))

	averageEntry := widget.NewEntry()
	averageEntry.SetText(strconv.Itoa(state.cfg.Scope.AverageSamples))

	cvEntry := widget.NewEntry()
	cvEntry.SetText(fmt.Sprintf("%.2f", state.cfg.Scope.CVVolts))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Window (seconds)", Widget: windowEntry},
			{Text: "Max Display Points", Widget: pointsEntry},
			{Text: "Average Samples (0=disabled)", Widget: averageEntry},
			{Text: "CV Full Scale (V)", Widget: cvEntry},
		},
		OnSubmit: func() {
			if ws, err := strconv.ParseFloat(windowEntry.Text, 64); err == nil && ws > 0 {
				state.cfg.Scope.WindowSeconds = ws
			}
			if mp, err := strconv.Atoi(pointsEntry.Text); err == nil && mp > 0 {
				state.cfg.Scope.MaxDisplayPoints = mp
			}
			if avg, err := strconv.Atoi(averageEntry.Text); err == nil && avg >= 0 {
				state.cfg.Scope.AverageSamples = avg
			}
			if cv, err := strconv.ParseFloat(cvEntry.Text, 64); err == nil && cv > 0 {
				state.cfg.Scope.CVVolts = cv
			}
			if saveConfig(state) {
				dialog.ShowInformation("Scope", "Restart to apply display settings.", state.window)
			}
		},
	}

	return container.NewTabItem("Scope", form)
}

// createAudioTab creates the Audio configuration tab.
func createAudioTab(state *appState) *container.TabItem {
	enabledCheck := widget.NewCheck("Play on startup", nil)
	enabledCheck.SetChecked(state.cfg.Audio.Enabled)

	rateEntry := widget.NewEntry()
	rateEntry.SetText(strconv.Itoa(state.cfg.Audio.SampleRate))

	blockEntry := widget.NewEntry()
	blockEntry.SetText(state.cfg.Audio.BlockLength.String())

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Enabled", Widget: enabledCheck},
			{Text: "Sample Rate (Hz)", Widget: rateEntry},
			{Text: "Buffer Length", Widget: blockEntry},
		},
		OnSubmit: func() {
			state.cfg.Audio.Enabled = enabledCheck.Checked
			if sr, err := strconv.Atoi(rateEntry.Text); err == nil && sr > 0 {
				state.cfg.Audio.SampleRate = sr
			}
			if bl, err := time.ParseDuration(blockEntry.Text); err == nil && bl > 0 {
				state.cfg.Audio.BlockLength = bl
			}
			saveConfig(state)
		},
	}

	return container.NewTabItem("Audio", form)
}

// createMockTab creates the simulated module configuration tab.
func createMockTab(state *appState) *container.TabItem {
	var knobEntries [3]*widget.Entry
	items := make([]*widget.FormItem, 0, 9)
	for i := range knobEntries {
		knobEntries[i] = widget.NewEntry()
		knobEntries[i].SetText(fmt.Sprintf("%.3f", state.cfg.Mock.Knobs[i]))
		items = append(items, &widget.FormItem{Text: fmt.Sprintf("Knob %d (0..1)", i+1), Widget: knobEntries[i]})
	}

	cvRateEntry := widget.NewEntry()
	cvRateEntry.SetText(fmt.Sprintf("%.3f", state.cfg.Mock.CVRate))

	cvDepthEntry := widget.NewEntry()
	cvDepthEntry.SetText(fmt.Sprintf("%.3f", state.cfg.Mock.CVDepth))

	noiseEntry := widget.NewEntry()
	noiseEntry.SetText(fmt.Sprintf("%.4f", state.cfg.Mock.NoiseLevel))

	clockEntry := widget.NewEntry()
	clockEntry.SetText(state.cfg.Mock.ClockPeriod.String())

	stepEntry := widget.NewEntry()
	stepEntry.SetText(state.cfg.Mock.StepRate.String())

	frameEntry := widget.NewEntry()
	frameEntry.SetText(strconv.Itoa(state.cfg.Mock.FrameEvery))

	items = append(items,
		&widget.FormItem{Text: "CV LFO Rate (Hz)", Widget: cvRateEntry},
		&widget.FormItem{Text: "CV LFO Depth (0..1)", Widget: cvDepthEntry},
		&widget.FormItem{Text: "Noise Level (0..1)", Widget: noiseEntry},
		&widget.FormItem{Text: "Clock Period", Widget: clockEntry},
		&widget.FormItem{Text: "Step Rate", Widget: stepEntry},
		&widget.FormItem{Text: "Frame Every N Steps", Widget: frameEntry},
	)

	form := &widget.Form{
		Items: items,
		OnSubmit: func() {
			for i, e := range knobEntries {
				if v, err := strconv.ParseFloat(e.Text, 64); err == nil {
					state.cfg.Mock.Knobs[i] = v
				}
			}
			if v, err := strconv.ParseFloat(cvRateEntry.Text, 64); err == nil {
				state.cfg.Mock.CVRate = v
			}
			if v, err := strconv.ParseFloat(cvDepthEntry.Text, 64); err == nil {
				state.cfg.Mock.CVDepth = v
			}
			if v, err := strconv.ParseFloat(noiseEntry.Text, 64); err == nil {
				state.cfg.Mock.NoiseLevel = v
			}
			if d, err := time.ParseDuration(clockEntry.Text); err == nil {
				state.cfg.Mock.ClockPeriod = d
			}
			if d, err := time.ParseDuration(stepEntry.Text); err == nil && d > 0 {
				state.cfg.Mock.StepRate = d
			}
			if n, err := strconv.Atoi(frameEntry.Text); err == nil && n > 0 {
				state.cfg.Mock.FrameEvery = n
			}
			if saveConfig(state) && state.useMock {
				reconnect(state)
			}
		},
	}

	return container.NewTabItem("Mock", form)
}
