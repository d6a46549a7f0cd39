package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"companydir/pkg/client"
	"companydir/pkg/companies"
	"companydir/pkg/testhelpers"
)

type fakeFetcher struct {
	items   []companies.Company
	listErr error
	getErr  error
}

func (f *fakeFetcher) ListCompanies(ctx context.Context) ([]companies.Company, error) {
	return f.items, f.listErr
}

func (f *fakeFetcher) GetCompany(ctx context.Context, id int64) (companies.Company, error) {
	if f.getErr != nil {
		return companies.Company{}, f.getErr
	}
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return companies.Company{}, client.ErrNotFound
}

func update(t *testing.T, m Browser, msg tea.Msg) (Browser, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	b, ok := next.(Browser)
	require.True(t, ok)
	return b, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedBrowser(t *testing.T) (Browser, *fakeFetcher) {
	t.Helper()
	f := &fakeFetcher{items: testhelpers.SampleCompanies()}
	m := NewBrowser(f, 0)
	m, _ = update(t, m, m.Init()())
	return m, f
}

func visibleIDs(m Browser) []int64 {
	out := make([]int64, 0, len(m.Visible()))
	for _, c := range m.Visible() {
		out = append(out, c.ID)
	}
	return out
}

func TestBrowser_LoadsCollection(t *testing.T) {
	m, _ := loadedBrowser(t)

	require.Equal(t, []int64{1, 2, 3}, visibleIDs(m))
	require.Equal(t, []string{"AI/ML", "Bio Health", "Crypto", "Fintech"}, m.industryTags)
	require.Equal(t, []string{"Remote", "San Francisco", "Seattle"}, m.locationTags)
	require.Contains(t, m.View(), "3 of 3 companies")
}

func TestBrowser_LoadFailureShowsMessage(t *testing.T) {
	f := &fakeFetcher{listErr: errors.New("connection refused")}
	m := NewBrowser(f, 0)
	require.Contains(t, m.View(), "Loading companies...")

	m, _ = update(t, m, m.Init()())

	require.Contains(t, m.View(), "Failed to load company data")
	require.Empty(t, m.Visible())
}

func TestBrowser_SearchFiltersAsYouType(t *testing.T) {
	m, _ := loadedBrowser(t)

	m, _ = update(t, m, key("tab"))
	require.Equal(t, FocusSearch, m.Focus())

	m, _ = update(t, m, key("fin"))
	require.Equal(t, "fin", m.Criteria().Search)
	require.Equal(t, []int64{1, 3}, visibleIDs(m))

	// q is text while the search box has focus.
	m, _ = update(t, m, key("q"))
	require.Equal(t, "finq", m.Criteria().Search)
	require.Empty(t, m.Visible())
}

func TestBrowser_ToggleIndustryAndLocationTags(t *testing.T) {
	m, _ := loadedBrowser(t)

	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("tab"))
	require.Equal(t, FocusIndustries, m.Focus())

	// Fintech is the fourth industry tag.
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, key("right"))
	}
	m, _ = update(t, m, key("space"))
	require.Equal(t, []string{"Fintech"}, m.Criteria().Industries)
	require.Equal(t, []int64{1, 3}, visibleIDs(m))

	m, _ = update(t, m, key("tab"))
	require.Equal(t, FocusLocations, m.Focus())
	m, _ = update(t, m, key("space"))
	require.Equal(t, []string{"Remote"}, m.Criteria().Locations)
	require.Equal(t, []int64{3}, visibleIDs(m))

	m, _ = update(t, m, key("space"))
	require.Empty(t, m.Criteria().Locations)
	require.Equal(t, []int64{1, 3}, visibleIDs(m))
}

func TestBrowser_ResetRestoresCollection(t *testing.T) {
	m, _ := loadedBrowser(t)

	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("beta"))
	require.Equal(t, []int64{2}, visibleIDs(m))

	m, _ = update(t, m, key("ctrl+r"))

	require.True(t, m.Criteria().IsZero())
	require.Equal(t, "", m.search.Value())
	require.Equal(t, []int64{1, 2, 3}, visibleIDs(m))
}

func TestBrowser_OpenDetail(t *testing.T) {
	m, _ := loadedBrowser(t)

	m, _ = update(t, m, key("down"))
	m, cmd := update(t, m, key("enter"))
	require.Equal(t, ViewDetail, m.view)
	require.Contains(t, m.View(), "Loading...")
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	require.NotNil(t, m.detail)
	require.Equal(t, int64(2), m.detail.ID)
	require.Contains(t, m.View(), "Beta")

	m, _ = update(t, m, key("esc"))
	require.Equal(t, ViewList, m.view)
	require.Nil(t, m.detail)
}

func TestBrowser_DetailNotFound(t *testing.T) {
	m, f := loadedBrowser(t)
	f.getErr = client.ErrNotFound

	m, cmd := update(t, m, key("enter"))
	m, _ = update(t, m, cmd())

	require.Contains(t, m.View(), "Company not found")
}

func TestBrowser_DropsStaleDetailResponse(t *testing.T) {
	m, _ := loadedBrowser(t)

	m, _ = update(t, m, key("enter"))
	m, _ = update(t, m, key("esc"))
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("enter"))
	require.Equal(t, int64(2), m.detailID)

	stale := companyLoadedMsg{id: 1, company: testhelpers.Acme()}
	m, _ = update(t, m, stale)
	require.Nil(t, m.detail)

	m, _ = update(t, m, companyLoadedMsg{id: 2, company: testhelpers.Beta()})
	require.NotNil(t, m.detail)
	require.Equal(t, int64(2), m.detail.ID)
}

func TestBrowser_Quit(t *testing.T) {
	m, _ := loadedBrowser(t)

	_, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = update(t, m, key("tab"))
	_, cmd = update(t, m, key("ctrl+c"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
