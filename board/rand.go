package board

// PseudoRand is a xorshift generator. It is owned by whoever shuffles moves,
// so a fixed seed reproduces the exact same move orderings.
type PseudoRand struct {
	s uint64
}

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

// Seed resets the state. Seeds are run through splitmix64 first since a zero xorshift state never moves.
func (r *PseudoRand) Seed(seed uint64) {
	z := seed + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	r.s = z ^ (z >> 31)
	if r.s == 0 {
		r.s = 0x9E3779B97F4A7C15
	}
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Intn returns a number in [0, n). n must be positive.
func (r *PseudoRand) Intn(n int) int {
	return int(r.Uint64() % uint64(n))
}

// Shuffle permutes the moves in place (Fisher-Yates).
func (r *PseudoRand) Shuffle(mvs []Move) {
	for i := len(mvs) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		mvs[i], mvs[j] = mvs[j], mvs[i]
	}
}
