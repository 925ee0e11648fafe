package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	chartview "github.com/AnachronisticTech/ChartView"
	"github.com/AnachronisticTech/ChartView/internal/config"
)

// app wraps the chart widget and answers value-changed events with the
// terminal bell, the closest analog to haptic feedback a terminal has.
type app struct {
	chart chartview.Model
}

func (a app) Init() tea.Cmd { return a.chart.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(chartview.ValueChangedMsg); ok {
		return a, bell
	}
	model, cmd := a.chart.Update(msg)
	a.chart = model.(chartview.Model)
	return a, cmd
}

func (a app) View() string { return a.chart.View() }

func bell() tea.Msg {
	fmt.Print("\a")
	return nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataset, fileOpts, err := chartview.LoadData(cfg.Data.Path)
	if err != nil {
		return err
	}

	sizeClass, err := chartview.ParseSizeClass(cfg.UI.SizeClass)
	if err != nil {
		return err
	}

	scheme := chartview.SchemeLight
	if cfg.UI.Scheme == "dark" {
		scheme = chartview.SchemeDark
	}

	opts := chartview.ChartOptions{
		Title:       fileOpts.Title,
		Legend:      fileOpts.Legend,
		Style:       chartview.DefaultLightTheme(),
		SizeClass:   sizeClass,
		DropShadow:  cfg.UI.DropShadow,
		ValueFormat: fileOpts.ValueFormat,
	}
	if opts.Title == "" {
		opts.Title = "ChartView"
	}
	if opts.ValueFormat == "" {
		opts.ValueFormat = cfg.UI.ValueFormat
	}

	chart, err := chartview.New(dataset, opts, scheme)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app{chart: chart}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chartview: %v\n", err)
		os.Exit(1)
	}
}
