package worker_test

import (
	"bufio"
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nbnb9998/SumInc/algo/cc"
	"github.com/nbnb9998/SumInc/algo/sssp"
	"github.com/nbnb9998/SumInc/graph"
	"github.com/nbnb9998/SumInc/worker"
)

func writeUpdateFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "update.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func parseFloatOutput(t *testing.T, out []byte) map[graph.Gid]float64 {
	t.Helper()
	got := map[graph.Gid]float64{}
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			t.Fatalf("malformed output line %q", line)
		}
		gid, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			t.Fatal(err)
		}
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			t.Fatal(err)
		}
		got[graph.Gid(gid)] = val
	}
	return got
}

func parseUintOutput(t *testing.T, out []byte) map[graph.Gid]uint32 {
	t.Helper()
	got := map[graph.Gid]uint32{}
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			t.Fatalf("malformed output line %q", line)
		}
		gid, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			t.Fatal(err)
		}
		val, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			t.Fatal(err)
		}
		got[graph.Gid(gid)] = uint32(val)
	}
	return got
}

func runSSSP(t *testing.T, world *graph.WorldGraph, source graph.Gid, directed bool, updateFile string) map[graph.Gid]float64 {
	t.Helper()
	opts := worker.RuntimeOptions{
		Options: worker.Options{
			Threads:    2,
			Directed:   directed,
			UpdateFile: updateFile,
		},
		NumWorkers: 2,
	}
	out, err := worker.RunFleet[float64, sssp.Delta](world, opts, func(int) graph.Kernel[float64, sssp.Delta] {
		return sssp.New(source)
	})
	if err != nil {
		t.Fatal(err)
	}
	return parseFloatOutput(t, out)
}

func runCC(t *testing.T, world *graph.WorldGraph, directed bool, updateFile string) map[graph.Gid]uint32 {
	t.Helper()
	opts := worker.RuntimeOptions{
		Options: worker.Options{
			Threads:    2,
			Directed:   directed,
			UpdateFile: updateFile,
		},
		NumWorkers: 2,
	}
	out, err := worker.RunFleet[uint32, cc.Delta](world, opts, func(int) graph.Kernel[uint32, cc.Delta] {
		return cc.New()
	})
	if err != nil {
		t.Fatal(err)
	}
	return parseUintOutput(t, out)
}

func triangleWorld() *graph.WorldGraph {
	w := graph.NewWorldGraph()
	w.AddEdge(1, 2, 1)
	w.AddEdge(2, 3, 2)
	w.AddEdge(1, 3, 5)
	return w
}

func assertFloat(t *testing.T, got map[graph.Gid]float64, gid graph.Gid, want float64) {
	t.Helper()
	v, ok := got[gid]
	if !ok {
		t.Fatalf("no output for gid %d", gid)
	}
	if math.IsInf(want, 1) {
		if !math.IsInf(v, 1) {
			t.Errorf("gid %d = %v, want +Inf", gid, v)
		}
		return
	}
	if v != want {
		t.Errorf("gid %d = %v, want %v", gid, v, want)
	}
}

// S1: SSSP batch, triangle.
func TestS1SSSPBatchTriangle(t *testing.T) {
	got := runSSSP(t, triangleWorld(), 1, true, "")
	assertFloat(t, got, 1, 0)
	assertFloat(t, got, 2, 1)
	assertFloat(t, got, 3, 3)
}

// S2: SSSP with a non-critical edge deletion; value unchanged.
func TestS2SSSPNonCriticalDeletion(t *testing.T) {
	path := writeUpdateFile(t, "delete 1 3\n")
	got := runSSSP(t, triangleWorld(), 1, true, path)
	assertFloat(t, got, 1, 0)
	assertFloat(t, got, 2, 1)
	assertFloat(t, got, 3, 3)
}

// S3: SSSP with a critical edge deletion; vertex 3 recomputed via the
// surviving path through vertex 1 directly.
func TestS3SSSPCriticalDeletion(t *testing.T) {
	path := writeUpdateFile(t, "delete 2 3\n")
	got := runSSSP(t, triangleWorld(), 1, true, path)
	assertFloat(t, got, 1, 0)
	assertFloat(t, got, 2, 1)
	assertFloat(t, got, 3, 5)
}

// S4: SSSP with an edge addition creating a shortcut.
func TestS4SSSPAdditionShortcut(t *testing.T) {
	path := writeUpdateFile(t, "add 1 3 1\n")
	got := runSSSP(t, triangleWorld(), 1, true, path)
	assertFloat(t, got, 1, 0)
	assertFloat(t, got, 2, 1)
	assertFloat(t, got, 3, 1)
}

// S5: chain invalidation. Deleting 2->3 on a 1->2->3->4->5 path strands
// the downstream tail at identity (infinity).
func TestS5ChainInvalidation(t *testing.T) {
	world := graph.NewWorldGraph()
	world.AddEdge(1, 2, 1)
	world.AddEdge(2, 3, 1)
	world.AddEdge(3, 4, 1)
	world.AddEdge(4, 5, 1)
	path := writeUpdateFile(t, "delete 2 3\n")
	got := runSSSP(t, world, 1, true, path)
	assertFloat(t, got, 1, 0)
	assertFloat(t, got, 2, 1)
	assertFloat(t, got, 3, math.Inf(1))
	assertFloat(t, got, 4, math.Inf(1))
	assertFloat(t, got, 5, math.Inf(1))
}

// S6: two disjoint cliques merged by a bridging edge end up sharing the
// minimum label across the union.
func TestS6ConnectedComponentsMerge(t *testing.T) {
	world := graph.NewWorldGraph()
	clique := func(a, b, c graph.Gid) {
		world.AddEdge(a, b, 1)
		world.AddEdge(b, a, 1)
		world.AddEdge(b, c, 1)
		world.AddEdge(c, b, 1)
		world.AddEdge(a, c, 1)
		world.AddEdge(c, a, 1)
	}
	clique(1, 2, 3)
	clique(4, 5, 6)

	path := writeUpdateFile(t, "add 3 4\n")
	got := runCC(t, world, false, path)
	for _, gid := range []graph.Gid{1, 2, 3, 4, 5, 6} {
		if got[gid] != 1 {
			t.Errorf("gid %d label = %d, want 1", gid, got[gid])
		}
	}
}
