package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"companydir/pkg/client"
	"companydir/pkg/companies"
	"companydir/pkg/filter"
)

// Fetcher is the read side of the directory API the browser needs.
type Fetcher interface {
	ListCompanies(ctx context.Context) ([]companies.Company, error)
	GetCompany(ctx context.Context, id int64) (companies.Company, error)
}

type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
	FocusIndustries
	FocusLocations
	focusCount
)

type View int

const (
	ViewList View = iota
	ViewDetail
)

type companiesLoadedMsg struct {
	items []companies.Company
	err   error
}

// companyLoadedMsg carries the id it was requested for so that late
// responses for a previous selection can be dropped.
type companyLoadedMsg struct {
	id      int64
	company companies.Company
	err     error
}

// Browser is the interactive directory: search box, tag filters, company
// table and the detail view of the selected company.
type Browser struct {
	fetcher Fetcher
	timeout time.Duration
	styles  Styles

	search   textinput.Model
	criteria filter.Criteria

	all          []companies.Company
	visible      []companies.Company
	industryTags []string
	locationTags []string

	focus     Focus
	view      View
	cursor    int
	tagCursor int

	loading bool
	err     error

	detailID  int64
	detail    *companies.Company
	detailErr error
}

func NewBrowser(fetcher Fetcher, timeout time.Duration) Browser {
	si := textinput.New()
	si.Placeholder = "Search by name, industry or location..."
	si.CharLimit = 100
	si.Width = 40
	si.Prompt = "Search: "

	return Browser{
		fetcher: fetcher,
		timeout: timeout,
		styles:  DefaultStyles(),
		search:  si,
		loading: true,
	}
}

func (m Browser) Init() tea.Cmd {
	return m.loadCompanies()
}

func (m Browser) loadCompanies() tea.Cmd {
	fetcher, timeout := m.fetcher, m.timeout
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		items, err := fetcher.ListCompanies(ctx)
		return companiesLoadedMsg{items: items, err: err}
	}
}

func (m Browser) loadCompany(id int64) tea.Cmd {
	fetcher, timeout := m.fetcher, m.timeout
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		c, err := fetcher.GetCompany(ctx, id)
		return companyLoadedMsg{id: id, company: c, err: err}
	}
}

func withTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), d)
}

func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case companiesLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.all = msg.items
			m.industryTags = filter.IndustryTags(m.all)
			m.locationTags = filter.LocationTags(m.all)
			m.refilter()
		}
		return m, nil

	case companyLoadedMsg:
		if m.view != ViewDetail || msg.id != m.detailID {
			return m, nil
		}
		m.detailErr = msg.err
		if msg.err == nil {
			c := msg.company
			m.detail = &c
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view == ViewDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == FocusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Browser) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "left", "h":
		m.view = ViewList
		m.detailID = 0
		m.detail = nil
		m.detailErr = nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Browser) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+r":
		m.search.SetValue("")
		m.criteria = m.criteria.Reset()
		m.refilter()
		return m, nil
	case "esc":
		if m.focus != FocusTable {
			return m.setFocus(FocusTable)
		}
		return m, nil
	}

	switch m.focus {
	case FocusSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.criteria.Search {
			m.criteria.Search = m.search.Value()
			m.refilter()
		}
		return m, cmd

	case FocusTable:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.visible) {
				return m.openDetail(m.visible[m.cursor].ID)
			}
		case "q":
			return m, tea.Quit
		}

	case FocusIndustries, FocusLocations:
		tags := m.focusedTags()
		switch msg.String() {
		case "left", "h":
			if m.tagCursor > 0 {
				m.tagCursor--
			}
		case "right", "l":
			if m.tagCursor < len(tags)-1 {
				m.tagCursor++
			}
		case " ", "space", "enter":
			if m.tagCursor < len(tags) {
				m.toggleTag(tags[m.tagCursor])
			}
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Browser) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.tagCursor = 0
	if f == FocusSearch {
		return m, m.search.Focus()
	}
	m.search.Blur()
	return m, nil
}

func (m Browser) openDetail(id int64) (tea.Model, tea.Cmd) {
	m.view = ViewDetail
	m.detailID = id
	m.detail = nil
	m.detailErr = nil
	return m, m.loadCompany(id)
}

func (m Browser) focusedTags() []string {
	if m.focus == FocusIndustries {
		return m.industryTags
	}
	return m.locationTags
}

func (m *Browser) toggleTag(tag string) {
	if m.focus == FocusIndustries {
		m.criteria.Industries = filter.Toggle(m.criteria.Industries, tag)
	} else {
		m.criteria.Locations = filter.Toggle(m.criteria.Locations, tag)
	}
	m.refilter()
}

func (m *Browser) refilter() {
	m.visible = filter.Apply(m.all, m.criteria)
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// Visible is the currently displayed subset.
func (m Browser) Visible() []companies.Company { return m.visible }

func (m Browser) Criteria() filter.Criteria { return m.criteria }

func (m Browser) Focus() Focus { return m.focus }

func (m Browser) View() string {
	if m.view == ViewDetail {
		return m.detailView()
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Company Directory"))
	sb.WriteString("\n\n")

	if m.loading {
		sb.WriteString(m.styles.Muted.Render("Loading companies..."))
		return sb.String()
	}
	if m.err != nil {
		sb.WriteString(m.styles.Error.Render(client.DisplayError(m.err)))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("q quit"))
		return sb.String()
	}

	sb.WriteString(m.search.View())
	sb.WriteString("\n")
	sb.WriteString(m.tagLine("Industries", FocusIndustries, m.industryTags, m.criteria.Industries))
	sb.WriteString(m.tagLine("Locations", FocusLocations, m.locationTags, m.criteria.Locations))
	sb.WriteString("\n")

	selected := -1
	if m.focus == FocusTable {
		selected = m.cursor
	}
	sb.WriteString(CompanyTable(m.visible, selected, m.styles))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s\n", m.styles.Muted.Render(fmt.Sprintf("%d of %d companies", len(m.visible), len(m.all))))
	sb.WriteString(m.styles.Muted.Render("tab focus • ↑/↓ move • enter details • space toggle tag • ctrl+r reset • q quit"))
	return sb.String()
}

func (m Browser) tagLine(label string, axis Focus, tags, active []string) string {
	labelStyle := m.styles.Label
	if m.focus == axis {
		labelStyle = m.styles.Focused
	}

	parts := make([]string, 0, len(tags))
	for i, tag := range tags {
		style := m.styles.Tag
		for _, a := range active {
			if a == tag {
				style = m.styles.TagActive
				break
			}
		}
		if m.focus == axis && i == m.tagCursor {
			style = style.Inherit(m.styles.TagCursor)
		}
		parts = append(parts, style.Render(tag))
	}
	return labelStyle.Render(label+":") + " " + strings.Join(parts, "  ") + "\n"
}

func (m Browser) detailView() string {
	var body string
	switch {
	case m.detailErr != nil:
		body = m.styles.Error.Render(client.DisplayError(m.detailErr))
	case m.detail == nil:
		body = m.styles.Muted.Render("Loading...")
	default:
		body = Detail(*m.detail, m.styles)
	}
	return body + "\n" + m.styles.Muted.Render("esc back • q quit")
}
