package client

import "errors"

// fakeSurface records draw calls so tests can assert on render output
// without a real canvas.
type fakeSurface struct {
	begins int
	ops    []string
	rects  [][4]float64
	circs  [][3]float64
	lines  [][4]float64
}

func (s *fakeSurface) Begin(panX, panY, scale float64) {
	s.begins++
	s.ops = s.ops[:0]
	s.rects = s.rects[:0]
	s.circs = s.circs[:0]
	s.lines = s.lines[:0]
}

func (s *fakeSurface) StrokeRect(x, y, width, height float64) {
	s.ops = append(s.ops, "rect")
	s.rects = append(s.rects, [4]float64{x, y, width, height})
}

func (s *fakeSurface) StrokeCircle(centerX, centerY, radius float64) {
	s.ops = append(s.ops, "circle")
	s.circs = append(s.circs, [3]float64{centerX, centerY, radius})
}

func (s *fakeSurface) StrokeLine(x1, y1, x2, y2 float64) {
	s.ops = append(s.ops, "line")
	s.lines = append(s.lines, [4]float64{x1, y1, x2, y2})
}

// fakeSocket records outgoing frames.
type fakeSocket struct {
	writes [][]byte
	err    error
}

func (s *fakeSocket) Write(data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.writes = append(s.writes, data)
	return nil
}

var errSocketDown = errors.New("socket down")
