package generate

// scripted replays fixed draws. Once a list runs out its last value repeats.
type scripted struct {
	floats []float64
	ints   []int
	fcalls int
	icalls int
}

func (s *scripted) Float64() float64 {
	v := s.floats[min(s.fcalls, len(s.floats)-1)]
	s.fcalls++
	return v
}

func (s *scripted) IntN(n int) int {
	v := s.ints[min(s.icalls, len(s.ints)-1)]
	s.icalls++
	return v % n
}

// alwaysExpand never draws below any shore weight the island can produce.
func alwaysExpand() *scripted { return &scripted{floats: []float64{0.999999}, ints: []int{0}} }

// alwaysShore draws zero, which fires every non-zero probability.
func alwaysShore() *scripted { return &scripted{floats: []float64{0}, ints: []int{0}} }
