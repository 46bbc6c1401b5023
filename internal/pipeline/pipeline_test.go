package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/kinograph/internal/chart"
	"github.com/san-kum/kinograph/internal/kinematics"
	"github.com/san-kum/kinograph/internal/workbook"
)

type recordingViewer struct {
	shown []*chart.Figure
}

func (r *recordingViewer) Show(ctx context.Context, fig *chart.Figure) error {
	r.shown = append(r.shown, fig)
	return nil
}

func writeTable(t *testing.T, rows int) string {
	t.Helper()
	table := make(kinematics.Table, rows)
	for i := range table {
		x := float64(i)
		table[i] = []float64{x, 2 * x, 3 * x}
	}
	path := filepath.Join(t.TempDir(), workbook.DefaultPath)
	if err := workbook.Write(path, table); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func optionsFor(path string) Options {
	opts := DefaultOptions()
	opts.Path = path
	return opts
}

func TestRun(t *testing.T) {
	path := writeTable(t, 2000)
	v := &recordingViewer{}

	if err := Run(context.Background(), optionsFor(path), v); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(v.shown) != 1 {
		t.Fatalf("expected one figure, got %d", len(v.shown))
	}

	fig := v.shown[0]
	if len(fig.Axis) != 2000 {
		t.Errorf("axis has %d samples, want 2000", len(fig.Axis))
	}
	if fig.Series[kinematics.Velocity][10] != 20 || fig.Series[kinematics.Acceleration][10] != 30 {
		t.Errorf("series not extracted by column: v=%v a=%v",
			fig.Series[kinematics.Velocity][10], fig.Series[kinematics.Acceleration][10])
	}
}

func TestRun_MissingFileHalts(t *testing.T) {
	v := &recordingViewer{}
	err := Run(context.Background(), optionsFor(filepath.Join(t.TempDir(), "missing.xlsx")), v)

	var loadErr *workbook.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.Message() != "Please close the output file and try again." {
		t.Errorf("unexpected message %q", loadErr.Message())
	}
	if len(v.shown) != 0 {
		t.Error("viewer should not run after a load failure")
	}
}

func TestPrepare_Deterministic(t *testing.T) {
	opts := optionsFor(writeTable(t, 2000))

	first, err := Prepare(opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Prepare(opts)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first.Axis, second.Axis) {
		t.Error("time axis differs between runs")
	}
	if !reflect.DeepEqual(first.Series, second.Series) {
		t.Error("series differ between runs")
	}
}

func TestPrepare_TruncatesToShorter(t *testing.T) {
	tests := []struct {
		name string
		rows int
		want int
	}{
		{"fewer rows than samples", 10, 10},
		{"more rows than samples", 2005, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := Prepare(optionsFor(writeTable(t, tt.rows)))
			if err != nil {
				t.Fatal(err)
			}
			if len(fig.Axis) != tt.want {
				t.Errorf("axis length = %d, want %d", len(fig.Axis), tt.want)
			}
			for i, s := range fig.Series {
				if len(s) != tt.want {
					t.Errorf("series %d length = %d, want %d", i, len(s), tt.want)
				}
			}
		})
	}
}
