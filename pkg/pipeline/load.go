package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ballotviz/ballotviz/pkg/errors"
	"github.com/ballotviz/ballotviz/pkg/source/geogrid"
	"github.com/ballotviz/ballotviz/pkg/source/tabular"
)

// dataset file extensions by kind.
var kindExtensions = map[string][]string{
	DatasetTabular: {".csv"},
	DatasetGeogrid: {".geojson", ".json"},
}

// DatasetPath resolves the on-disk file for a dataset name and kind,
// trying each known extension. Fails with NOT_FOUND when no candidate
// file exists.
func DatasetPath(dir, name, kind string) (string, error) {
	if err := errors.ValidateDatasetName(name); err != nil {
		return "", err
	}
	for _, ext := range kindExtensions[kind] {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeNotFound,
		"dataset %q (%s) not found in %s", name, kind, dir)
}

// Load reads and parses the dataset file for the configured viz type.
// It returns the parsed dataset along with the raw file bytes, which
// callers hash for cache keys.
func Load(opts Options) (Dataset, []byte, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return Dataset{}, nil, err
	}
	opts.SetLayoutDefaults()

	kind := opts.DatasetKind()
	path, err := DatasetPath(opts.Dir, opts.Dataset, kind)
	if err != nil {
		return Dataset{}, nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, nil, fmt.Errorf("read dataset: %w", err)
	}

	ds := Dataset{Kind: kind}
	switch kind {
	case DatasetGeogrid:
		ds.Cells, err = geogrid.Load(raw)
	default:
		ds.Records, err = tabular.Load(bytes.NewReader(raw))
	}
	if err != nil {
		return Dataset{}, nil, err
	}
	return ds, raw, nil
}
