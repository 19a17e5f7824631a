package graph

// LoadWorldGraph parses an edge-list file using the same grammar as an
// update file and applies every record to a fresh WorldGraph, mirroring
// each edge for an undirected graph.
func LoadWorldGraph(path string, directed bool) (*WorldGraph, error) {
	updates, err := ParseUpdateFile(path)
	if err != nil {
		return nil, err
	}
	w := NewWorldGraph()
	for _, u := range updates {
		switch u.Op {
		case OpAdd:
			w.AddEdge(u.Src, u.Dst, u.Weight)
			if !directed {
				w.AddEdge(u.Dst, u.Src, u.Weight)
			}
		case OpDelete:
			w.DelEdge(u.Src, u.Dst)
			if !directed {
				w.DelEdge(u.Dst, u.Src)
			}
		}
	}
	return w, nil
}
