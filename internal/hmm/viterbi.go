package hmm

// Viterbi decodes the most probable state sequence for runes using the
// model's log-space start/transition/emission probabilities. Storage is
// two flat arrays of size stateCount*N, indexed [x + y*N] (position-major
// within a state row), matching cppjieba's HMMSegment::Viterbi layout
// exactly so the recurrence reads the same as the original side by side.
//
// A single-rune span always returns state S, matching the teacher's
// shortcut (and the trained model's own behavior, since a length-1 span
// has no B/M/E-consistent transition to weigh against S).
func (m *Model) Viterbi(runes []rune) []int {
	n := len(runes)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []int{StateS}
	}

	weight := make([]float64, n*stateCount)
	path := make([]int, n*stateCount)

	for y := 0; y < stateCount; y++ {
		weight[y*n] = m.Start[y] + m.EmitProb(y, runes[0])
		path[y*n] = -1
	}

	for x := 1; x < n; x++ {
		for y := 0; y < stateCount; y++ {
			now := x + y*n
			weight[now] = MinLogProb
			path[now] = StateE
			emit := m.EmitProb(y, runes[x])
			for preY := 0; preY < stateCount; preY++ {
				old := (x - 1) + preY*n
				score := weight[old] + m.Trans[preY][y] + emit
				if score > weight[now] {
					weight[now] = score
					path[now] = preY
				}
			}
		}
	}

	endE := weight[(n-1)+StateE*n]
	endS := weight[(n-1)+StateS*n]
	state := StateE
	if endS > endE {
		state = StateS
	}

	states := make([]int, n)
	for x := n - 1; x >= 0; x-- {
		states[x] = state
		state = path[x+state*n]
	}
	return states
}
