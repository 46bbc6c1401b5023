package chart

import "fmt"

// Mosaic is the panel grid, top row first: panels 0 and 1 side by side,
// panel 2 spanning the bottom row.
func Mosaic() [][]int {
	return [][]int{
		{0, 1},
		{2, 2},
	}
}

// Rect is a region of the figure in unit coordinates with the origin at the
// top-left corner.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Layout maps each panel index in mosaic to the bounding box of its cells.
func Layout(mosaic [][]int) (map[int]Rect, error) {
	rows := len(mosaic)
	if rows == 0 {
		return nil, fmt.Errorf("chart: empty mosaic")
	}
	cols := len(mosaic[0])
	for i, row := range mosaic {
		if len(row) != cols {
			return nil, fmt.Errorf("chart: mosaic row %d has %d cells, want %d", i, len(row), cols)
		}
	}

	type span struct{ r0, c0, r1, c1 int }
	spans := make(map[int]*span)
	for r, row := range mosaic {
		for c, idx := range row {
			s, ok := spans[idx]
			if !ok {
				spans[idx] = &span{r, c, r, c}
				continue
			}
			s.r0, s.c0 = min(s.r0, r), min(s.c0, c)
			s.r1, s.c1 = max(s.r1, r), max(s.c1, c)
		}
	}

	cw, rh := 1/float64(cols), 1/float64(rows)
	out := make(map[int]Rect, len(spans))
	for idx, s := range spans {
		for r := s.r0; r <= s.r1; r++ {
			for c := s.c0; c <= s.c1; c++ {
				if mosaic[r][c] != idx {
					return nil, fmt.Errorf("chart: panel %d is not rectangular", idx)
				}
			}
		}
		out[idx] = Rect{
			MinX: float64(s.c0) * cw,
			MinY: float64(s.r0) * rh,
			MaxX: float64(s.c1+1) * cw,
			MaxY: float64(s.r1+1) * rh,
		}
	}
	return out, nil
}
