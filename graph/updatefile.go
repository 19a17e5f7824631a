package graph

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EdgeOp is the operation carried by one line of an update file.
type EdgeOp int

const (
	OpAdd EdgeOp = iota
	OpDelete
)

// EdgeUpdate is one parsed line of an update file: "<op> <src> <dst> [weight]".
type EdgeUpdate struct {
	Op     EdgeOp
	Src    Gid
	Dst    Gid
	Weight float64
}

// ParseUpdateFile reads an update file: one record per line, "add <src>
// <dst> [weight]" or "delete <src> <dst> [weight]". Blank lines and
// lines starting with '#' are skipped. A missing weight on an add
// defaults to 1; a delete's trailing weight, if present, is ignored.
func ParseUpdateFile(path string) ([]EdgeUpdate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var updates []EdgeUpdate
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("update file %s:%d: expected '<op> <src> <dst> [weight]', got %q", path, lineNo, line)
		}
		var op EdgeOp
		switch strings.ToLower(fields[0]) {
		case "add", "a":
			op = OpAdd
		case "delete", "del", "d":
			op = OpDelete
		default:
			return nil, fmt.Errorf("update file %s:%d: unknown op %q", path, lineNo, fields[0])
		}
		src, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("update file %s:%d: bad src gid: %w", path, lineNo, err)
		}
		dst, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("update file %s:%d: bad dst gid: %w", path, lineNo, err)
		}
		weight := 1.0
		if len(fields) >= 4 {
			weight, err = strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("update file %s:%d: bad weight: %w", path, lineNo, err)
			}
		}
		updates = append(updates, EdgeUpdate{Op: op, Src: Gid(src), Dst: Gid(dst), Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return updates, nil
}
