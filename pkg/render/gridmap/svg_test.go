package gridmap

import (
	"strings"
	"testing"

	"github.com/ballotviz/ballotviz/pkg/errors"
	"github.com/ballotviz/ballotviz/pkg/grid"
)

func testCells() []grid.Cell {
	return []grid.Cell{
		{X: 0, Y: 0, Level: 0, Properties: map[string]any{"name": "西區"}},
		{X: 1, Y: 0, Level: 3},
		{X: 0, Y: 1, Level: 5, Flow: &grid.FlowTarget{X: 1, Y: 0}},
		{X: 1, Y: 1, Level: 1},
	}
}

func TestRenderSVGStructure(t *testing.T) {
	out, err := RenderSVG(testCells(), 500, 500)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	svg := string(out)

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`</svg>`,
		`class="cell"`,
		`id="cell-0-0"`,
		`id="cell-1-1"`,
		`fill="#54278F"`,
		`<title>西區</title>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}

	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("got %d cell rects, want 4", got)
	}
}

func TestRenderSVGArrows(t *testing.T) {
	without, err := RenderSVG(testCells(), 500, 500)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if strings.Contains(string(without), `class="flow"`) {
		t.Error("flow arrow rendered without WithArrows()")
	}

	with, err := RenderSVG(testCells(), 500, 500, WithArrows())
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	svg := string(with)
	if got := strings.Count(svg, `class="flow"`); got != 1 {
		t.Errorf("got %d flow arrows, want 1", got)
	}
	if !strings.Contains(svg, `marker-end="url(#flow-arrow)"`) {
		t.Error("flow arrow missing arrowhead marker")
	}
}

func TestRenderSVGUniformCellSize(t *testing.T) {
	out, err := RenderSVG(testCells(), 500, 500, WithPadding(40))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}

	// 2x2 grid in a 420x420 padded area: every rect is 210x210.
	if got := strings.Count(string(out), `width="210.00" height="210.00"`); got != 4 {
		t.Errorf("got %d uniform rects, want 4", got)
	}
}

func TestRenderSVGFailures(t *testing.T) {
	tests := []struct {
		name     string
		cells    []grid.Cell
		width    float64
		wantCode errors.Code
	}{
		{"empty dataset", nil, 500, errors.ErrCodeEmptyDataset},
		{"duplicate cell", []grid.Cell{{X: 0, Y: 0}, {X: 0, Y: 0}}, 500, errors.ErrCodeDuplicateCell},
		{"bad viewport", testCells(), -1, errors.ErrCodeInvalidViewport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderSVG(tt.cells, tt.width, 500)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %q", err, tt.wantCode)
			}
		})
	}
}

func TestLevelColor(t *testing.T) {
	if LevelColor(0) == LevelColor(5) {
		t.Error("level extremes should map to distinct colors")
	}
	if LevelColor(-1) != LevelColor(0) || LevelColor(9) != LevelColor(0) {
		t.Error("out-of-range levels should fall back to level 0")
	}
}
