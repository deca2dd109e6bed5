package edgegen

// VertexStore hands out every ordered (src, dst) pair over vertexes
// 1..n in row-major order.
type VertexStore struct {
	vertexes int
	total    int
	idx      int
}

func NewVertexStore(vertexes int) *VertexStore {
	if vertexes < 0 {
		vertexes = 0
	}

	vs := &VertexStore{
		vertexes: vertexes,
		total:    vertexes * vertexes,
		idx:      0,
	}

	return vs
}

// Take returns at most n pairs, none once the store is drained.
func (vs *VertexStore) Take(n int) [][2]uint64 {
	ret := [][2]uint64{}
	for i := 0; i < n; i++ {
		if vs.idx >= vs.total {
			break
		}

		from := vs.idx/vs.vertexes + 1
		to := vs.idx%vs.vertexes + 1
		ret = append(ret, [2]uint64{uint64(from), uint64(to)})
		vs.idx++
	}

	return ret
}

func (vs *VertexStore) Remaining() int {
	return vs.total - vs.idx
}
