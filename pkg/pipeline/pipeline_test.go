package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ballotviz/ballotviz/pkg/cache"
	"github.com/ballotviz/ballotviz/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"png", true},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"parliament", false},
		{"gridmap", false},
		{"treemap", false},
		{"bars", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Dataset: "test"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if opts.VizType != VizTypeParliament {
		t.Errorf("VizType = %q, want parliament", opts.VizType)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("dimensions = %gx%g, want %gx%g", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != StyleSimple {
		t.Errorf("Style = %q, want simple", opts.Style)
	}
}

func TestOptionsValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{"empty dataset name", Options{}, errors.ErrCodeInvalidDataset},
		{"traversal in name", Options{Dataset: "../etc/passwd"}, errors.ErrCodeInvalidDataset},
		{"bad viz type", Options{Dataset: "d", VizType: "tower"}, errors.ErrCodeInvalidVizType},
		{"bad format", Options{Dataset: "d", Formats: []string{"png"}}, errors.ErrCodeInvalidFormat},
		{"bad style", Options{Dataset: "d", Style: "handdrawn"}, errors.ErrCodeInvalidStyle},
		{"bad viewport", Options{Dataset: "d", Width: -5}, errors.ErrCodeInvalidViewport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %q", err, tt.wantCode)
			}
		})
	}
}

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

const testCSV = "候選人姓名,推薦政黨,得票數\n" +
	"王小明,民主進步黨,18000\n" +
	"李大同,中國國民黨,22000\n" +
	"張美玲,民主進步黨,15000\n" +
	"陳阿花,無,9000\n"

const testGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"grid_x":0,"grid_y":0,"level":1}},
    {"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"grid_x":1,"grid_y":0,"level":4,"flow_x":0,"flow_y":0}}
  ]
}`

func TestExecuteParliament(t *testing.T) {
	dir := writeDataset(t, "2024-legislative.csv", testCSV)

	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Dir:     dir,
		Dataset: "2024-legislative",
		VizType: VizTypeParliament,
		Formats: []string{FormatSVG, FormatJSON},
		Colors:  map[string]string{"DPP": "#1B9431", "KMT": "#000099"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.RecordCount != 4 {
		t.Errorf("RecordCount = %d, want 4", result.Stats.RecordCount)
	}
	if result.DatasetHash == "" {
		t.Error("DatasetHash should be set")
	}
	if result.Layout.Diagram == nil || len(result.Layout.Diagram.Seats) != 4 {
		t.Fatalf("diagram missing or wrong seat count: %+v", result.Layout.Diagram)
	}

	svg := string(result.Artifacts[FormatSVG])
	for _, want := range []string{`class="seat"`, `data-party="DPP"`, `fill="#000099"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if len(result.Artifacts[FormatJSON]) == 0 {
		t.Error("JSON artifact missing")
	}
}

func TestExecuteGridmap(t *testing.T) {
	dir := writeDataset(t, "turnout.geojson", testGeoJSON)

	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Dir:     dir,
		Dataset: "turnout",
		VizType: VizTypeGridmap,
		Arrows:  true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Layout.Grid == nil || len(result.Layout.Cells) != 2 {
		t.Fatalf("grid layout missing: %+v", result.Layout)
	}
	svg := string(result.Artifacts[FormatSVG])
	if !strings.Contains(svg, `class="cell"`) || !strings.Contains(svg, `class="flow"`) {
		t.Error("gridmap SVG missing cells or flow arrows")
	}
}

func TestExecuteTreemapAndBars(t *testing.T) {
	for _, viz := range []string{VizTypeTreemap, VizTypeBars} {
		t.Run(viz, func(t *testing.T) {
			dir := writeDataset(t, "d.csv", testCSV)

			runner := NewRunner(cache.NewNullCache(), nil, nil)
			defer runner.Close()

			result, err := runner.Execute(context.Background(), Options{
				Dir:     dir,
				Dataset: "d",
				VizType: viz,
			})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if len(result.Artifacts[FormatSVG]) == 0 {
				t.Error("SVG artifact missing")
			}
		})
	}
}

func TestExecuteCaching(t *testing.T) {
	dir := writeDataset(t, "d.csv", testCSV)

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := Options{Dir: dir, Dataset: "d", VizType: VizTypeParliament}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LoadHit || first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss everywhere: %+v", first.CacheInfo)
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LoadHit || !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit everywhere: %+v", second.CacheInfo)
	}

	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}
}

func TestExecuteMissingDataset(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Dir:     t.TempDir(),
		Dataset: "absent",
	})
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestExecuteEmptyGridDataset(t *testing.T) {
	dir := writeDataset(t, "empty.geojson", `{"type":"FeatureCollection","features":[]}`)

	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Dir:     dir,
		Dataset: "empty",
		VizType: VizTypeGridmap,
	})
	if !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Errorf("error = %v, want EMPTY_DATASET", err)
	}
}
