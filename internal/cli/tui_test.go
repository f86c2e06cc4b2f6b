package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/levnet/pkg/friends"
	"github.com/matzehuels/levnet/pkg/network"
)

func press(m ExploreModel, keys ...tea.KeyType) ExploreModel {
	for _, k := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: k})
		m = next.(ExploreModel)
	}
	return m
}

func rowWords(m ExploreModel) string {
	words := make([]string, len(m.Rows))
	for i, r := range m.Rows {
		words[i] = r.Word
	}
	return strings.Join(words, ",")
}

func TestExploreModelNavigation(t *testing.T) {
	m := NewExploreModel(network.ComputedSource{Words: scenario}, "word")
	if got := rowWords(m); got != "ward,wore" {
		t.Fatalf("rows = %s", got)
	}
	if m.Rows[1].Friends != 3 {
		t.Errorf("wore has %d friends, want 3", m.Rows[1].Friends)
	}

	m = press(m, tea.KeyDown, tea.KeyEnter)
	if m.Center != "wore" || rowWords(m) != "bore,core,word" {
		t.Fatalf("after visit: center=%s rows=%s", m.Center, rowWords(m))
	}
	if len(m.History) != 1 || m.History[0] != "word" {
		t.Errorf("history = %v", m.History)
	}
	if !strings.Contains(m.View(), "word → wore") {
		t.Errorf("view missing breadcrumb:\n%s", m.View())
	}

	m = press(m, tea.KeyBackspace)
	if m.Center != "word" || len(m.History) != 0 || m.Cursor != 0 {
		t.Errorf("after back: center=%s history=%v cursor=%d", m.Center, m.History, m.Cursor)
	}

	// Back with empty history stays put.
	m = press(m, tea.KeyBackspace)
	if m.Center != "word" {
		t.Errorf("center = %s", m.Center)
	}
}

func TestExploreModelCursorBounds(t *testing.T) {
	m := NewExploreModel(network.ComputedSource{Words: scenario}, "word")
	m = press(m, tea.KeyUp)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.Cursor)
	}
	m = press(m, tea.KeyDown, tea.KeyDown, tea.KeyDown)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}
}

func TestExploreModelView(t *testing.T) {
	m := NewExploreModel(network.ComputedSource{Words: scenario}, "word")
	view := m.View()
	for _, want := range []string{"Friends of word", "ward", "wore", "[1/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	lonely := NewExploreModel(network.ComputedSource{Words: []string{"zzz"}}, "word")
	if !strings.Contains(lonely.View(), "no friends") {
		t.Errorf("view = %s", lonely.View())
	}
	next, _ := lonely.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(ExploreModel).Center != "word" {
		t.Error("enter without rows should not move")
	}
}

func TestExploreModelSourceError(t *testing.T) {
	src := network.CachedSource{Adjacency: friends.BuildAll(scenario)}
	m := NewExploreModel(src, "cord")
	if m.Err == nil {
		t.Fatal("expected error for word outside the map")
	}
	if !strings.Contains(m.View(), "cord") {
		t.Errorf("view does not show the error:\n%s", m.View())
	}
}

func TestExploreModelQuit(t *testing.T) {
	m := NewExploreModel(network.ComputedSource{Words: scenario}, "word")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not return tea.Quit")
	}
}
