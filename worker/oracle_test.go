package worker_test

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/nbnb9998/SumInc/graph"
)

// randomWeightedGraph builds the same random directed graph twice: once as
// a worker WorldGraph, once as a gonum WeightedDirectedGraph, so a gonum
// Dijkstra run can serve as an independent oracle for the batch phase.
func randomWeightedGraph(seed int64, n int, edgeProb float64) (*graph.WorldGraph, *simple.WeightedDirectedGraph) {
	rng := rand.New(rand.NewSource(seed))
	world := graph.NewWorldGraph()
	gonumG := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		gonumG.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < edgeProb {
				w := 1 + rng.Float64()*9
				world.AddEdge(graph.Gid(i), graph.Gid(j), w)
				gonumG.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: w})
			}
		}
	}
	return world, gonumG
}

// P2 (idempotence of empty update) checked against an independent oracle:
// a plain batch run (no update file) must match gonum's Dijkstra from the
// same source over the same edge set.
func TestBatchMatchesDijkstraOracle(t *testing.T) {
	const n = 14
	world, gonumG := randomWeightedGraph(7, n, 0.25)
	source := graph.Gid(0)

	got := runSSSP(t, world, source, true, "")
	shortest := path.DijkstraFrom(simple.Node(source), gonumG)

	for i := 0; i < n; i++ {
		assertFloat(t, got, graph.Gid(i), shortest.WeightTo(int64(i)))
	}
}

// P1 (incremental equals batch): adjusting a graph incrementally after a
// batch of edge deletions must match a from-scratch batch run over the
// already-adjusted graph.
func TestIncrementalMatchesFromScratchBatch(t *testing.T) {
	const n = 10
	world, _ := randomWeightedGraph(42, n, 0.3)
	source := graph.Gid(0)

	var lines []string
	for i := 0; i < n && len(lines) < 3; i++ {
		for _, e := range world.OutEdges(graph.Gid(i)) {
			if len(lines) >= 3 {
				break
			}
			lines = append(lines, fmt.Sprintf("delete %d %d\n", i, e.Dst))
		}
	}
	if len(lines) == 0 {
		t.Skip("random graph had no edges to delete")
	}
	updateFile := writeUpdateFile(t, strings.Join(lines, ""))

	// Snapshot the pre-update graph before the incremental run mutates
	// world in place, so the from-scratch comparison starts from the
	// same original edges.
	scratch := graph.NewWorldGraph()
	for i := 0; i < n; i++ {
		for _, e := range world.OutEdges(graph.Gid(i)) {
			scratch.AddEdge(graph.Gid(i), e.Dst, e.Weight)
		}
	}
	for _, l := range lines {
		fields := strings.Fields(l)
		src, _ := strconv.ParseUint(fields[1], 10, 32)
		dst, _ := strconv.ParseUint(fields[2], 10, 32)
		scratch.DelEdge(graph.Gid(src), graph.Gid(dst))
	}

	incremental := runSSSP(t, world, source, true, updateFile)
	fromScratch := runSSSP(t, scratch, source, true, "")

	for i := 0; i < n; i++ {
		gid := graph.Gid(i)
		assertFloat(t, incremental, gid, fromScratch[gid])
	}
}
