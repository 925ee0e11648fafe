package chartview

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ---------------------------------------------------------------------------
// Dataset files (TOML-based)
// ---------------------------------------------------------------------------

// pointEntry is one [[point]] block in a dataset file.
type pointEntry struct {
	Label string  `toml:"label"`
	Value float64 `toml:"value"`
}

// dataFile is the top-level TOML structure of a dataset document.
type dataFile struct {
	Title  string       `toml:"title"`
	Legend string       `toml:"legend"`
	Format string       `toml:"format"`
	Point  []pointEntry `toml:"point"`
}

// DefaultDataTOML is the seed document written when no dataset file exists.
const DefaultDataTOML = `# ChartView dataset
# Add [[point]] blocks; labels are optional but enable the floating label.

title = "Weekly activity"
legend = "sessions per day"
format = "%.0f"

[[point]]
label = "Mon"
value = 12

[[point]]
label = "Tue"
value = 9

[[point]]
label = "Wed"
value = 17

[[point]]
label = "Thu"
value = 5

[[point]]
label = "Fri"
value = 14

[[point]]
label = "Sat"
value = 21

[[point]]
label = "Sun"
value = 8
`

// ParseData decodes a TOML dataset document. Labels count as caller-given
// only when every point carries one; a mix falls back to positional labels so
// the floating overlay never shows a defaulted label.
func ParseData(data []byte) (Dataset, ChartOptions, error) {
	var f dataFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Dataset{}, ChartOptions{}, fmt.Errorf("parse dataset: %w", err)
	}

	allLabeled := len(f.Point) > 0
	for _, p := range f.Point {
		if p.Label == "" {
			allLabeled = false
			break
		}
	}

	var ds Dataset
	if allLabeled {
		pairs := make([]Labeled, len(f.Point))
		for i, p := range f.Point {
			pairs[i] = Labeled{Label: p.Label, Value: p.Value}
		}
		ds = NewLabeledDataset(pairs)
	} else {
		values := make([]float64, len(f.Point))
		for i, p := range f.Point {
			values[i] = p.Value
		}
		ds = NewDataset(values)
	}

	opts := ChartOptions{
		Title:       f.Title,
		Legend:      f.Legend,
		ValueFormat: f.Format,
	}
	return ds, opts, nil
}

// LoadData reads and parses the dataset file at path, seeding it with the
// default document first when it does not exist.
func LoadData(path string) (Dataset, ChartOptions, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return Dataset{}, ChartOptions{}, fmt.Errorf("mkdir data dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(DefaultDataTOML), 0o644); err != nil {
			return Dataset{}, ChartOptions{}, fmt.Errorf("seed dataset file: %w", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, ChartOptions{}, fmt.Errorf("read dataset file: %w", err)
	}
	return ParseData(data)
}
