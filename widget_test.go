package chartview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestWidget(t *testing.T, class SizeClass) Model {
	t.Helper()
	m, err := New(threePointDataset(), ChartOptions{
		Title:     "Activity",
		Legend:    "per day",
		Style:     DefaultLightTheme(),
		SizeClass: class,
	}, SchemeLight)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return resized.(Model)
}

func mouseAt(x int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 5, Action: action, Button: tea.MouseButtonLeft}
}

func TestWidgetViewShowsTitleAndLegend(t *testing.T) {
	m := newTestWidget(t, SizeMedium)
	view := m.View()
	if !strings.Contains(view, "Activity") {
		t.Error("view should contain the title while inactive")
	}
	if !strings.Contains(view, "per day") {
		t.Error("view should contain the legend while inactive")
	}
	if !strings.Contains(view, "█") {
		t.Error("view should contain full-height bar runes")
	}
}

func TestWidgetMouseDragShowsFloatingLabel(t *testing.T) {
	m := newTestWidget(t, SizeMedium)
	updated, _ := m.Update(mouseAt(24, tea.MouseActionPress))
	m = updated.(Model)

	snap := m.Snapshot()
	if !snap.Active {
		t.Fatal("press should activate the interaction")
	}
	if snap.ResolvedValue != 2 {
		t.Errorf("resolvedValue = %v, want 2 (middle bar)", snap.ResolvedValue)
	}
	view := m.View()
	if !strings.Contains(view, "B 2.0") {
		t.Errorf("view should contain the floating label, got:\n%s", view)
	}
	if !strings.Contains(view, "▼") {
		t.Error("view should contain the overlay arrow")
	}
	if strings.Contains(view, "per day") {
		t.Error("legend should hide during interaction")
	}
}

func TestWidgetLargeShowsInlineValueNotOverlay(t *testing.T) {
	m := newTestWidget(t, SizeLarge)
	updated, _ := m.Update(mouseAt(10, tea.MouseActionPress))
	m = updated.(Model)

	view := m.View()
	if strings.Contains(view, "▼") {
		t.Error("large size class should not show the floating overlay")
	}
	if !strings.Contains(view, "3.0") {
		t.Errorf("headline should show the resolved value, got:\n%s", view)
	}
	if strings.Contains(view, "Activity") {
		t.Error("headline should swap away from the title while active")
	}
}

func TestWidgetReleaseEndsInteraction(t *testing.T) {
	m := newTestWidget(t, SizeMedium)
	updated, _ := m.Update(mouseAt(24, tea.MouseActionPress))
	m = updated.(Model)
	updated, _ = m.Update(mouseAt(24, tea.MouseActionRelease))
	m = updated.(Model)

	if m.Snapshot().Active {
		t.Fatal("release should end the interaction")
	}
	if !strings.Contains(m.View(), "Activity") {
		t.Error("headline should revert to the title")
	}
}

func TestWidgetEmitsValueChanged(t *testing.T) {
	m := newTestWidget(t, SizeMedium)
	updated, cmd := m.Update(mouseAt(2, tea.MouseActionPress))
	m = updated.(Model)
	if cmd != nil {
		t.Fatal("activation should not emit a value-changed command")
	}

	updated, cmd = m.Update(mouseAt(24, tea.MouseActionMotion))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("crossing to another bar should emit a command")
	}
	msg, ok := cmd().(ValueChangedMsg)
	if !ok {
		t.Fatalf("command message = %T, want ValueChangedMsg", cmd())
	}
	if msg.Old != 3 || msg.New != 2 {
		t.Errorf("event = %+v, want Old 3 New 2", msg)
	}

	_, cmd = m.Update(mouseAt(25, tea.MouseActionMotion))
	if cmd != nil {
		t.Error("same-bar motion should not emit")
	}
}

func TestWidgetSchemeToggle(t *testing.T) {
	m := newTestWidget(t, SizeMedium)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(Model)
	if m.Scheme() != SchemeDark {
		t.Fatalf("scheme = %v, want dark after toggle", m.Scheme())
	}
}

func TestWidgetQuitKey(t *testing.T) {
	m := newTestWidget(t, SizeMedium)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("command message = %T, want tea.QuitMsg", cmd())
	}
}

func TestWidgetEmptyDataset(t *testing.T) {
	m, err := New(Dataset{}, ChartOptions{Title: "Empty", SizeClass: SizeMedium}, SchemeLight)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = resized.(Model)

	updated, _ := m.Update(mouseAt(10, tea.MouseActionPress))
	m = updated.(Model)
	if m.Snapshot().Active {
		t.Error("empty dataset should ignore pointer moves")
	}
	if !strings.Contains(m.View(), "(no data)") {
		t.Error("view should note the empty dataset")
	}
}
