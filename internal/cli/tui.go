package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// DatasetListModel - Interactive dataset selection
// =============================================================================

// DatasetEntry describes one dataset file found in the datasets directory.
type DatasetEntry struct {
	Name     string // dataset name without extension
	Kind     string // "tabular" or "geogrid"
	Size     int64
	Modified time.Time
}

// ListDatasets scans dir for dataset files (*.csv, *.geojson, *.json) and returns
// them sorted by name.
func ListDatasets(dir string) ([]DatasetEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read datasets dir: %w", err)
	}

	var datasets []DatasetEntry
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		var kind string
		switch ext {
		case ".csv":
			kind = "tabular"
		case ".geojson", ".json":
			kind = "geogrid"
		default:
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		datasets = append(datasets, DatasetEntry{
			Name:     strings.TrimSuffix(e.Name(), ext),
			Kind:     kind,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	sort.Slice(datasets, func(i, j int) bool { return datasets[i].Name < datasets[j].Name })
	return datasets, nil
}

// DatasetListModel is the bubbletea model for interactive dataset selection.
type DatasetListModel struct {
	Datasets []DatasetEntry
	Cursor   int
	Selected *DatasetEntry
	Height   int
	Offset   int
}

// NewDatasetListModel creates a new dataset list model.
func NewDatasetListModel(datasets []DatasetEntry) DatasetListModel {
	return DatasetListModel{
		Datasets: datasets,
		Cursor:   0,
		Height:   15,
		Offset:   0,
	}
}

func (m DatasetListModel) Init() tea.Cmd {
	return nil
}

func (m DatasetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Datasets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			ds := m.Datasets[m.Cursor]
			m.Selected = &ds
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DatasetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Dataset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Datasets) {
		end = len(m.Datasets)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		ds := m.Datasets[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			ds.Name,
			ds.Kind,
			formatSize(ds.Size),
			formatRelativeTime(ds.Modified),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Dataset", "Kind", "Size", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Datasets) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col >= 3 {
				base = base.Foreground(colorDim)
			}
			if isCurrent {
				if col < 3 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Datasets))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
