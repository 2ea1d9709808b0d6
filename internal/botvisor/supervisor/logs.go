package supervisor

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/ehsaniara/botvisor/pkg/errors"
)

const tailChunk = 64 * 1024

// Tail returns up to lines of the latest stdout output followed by up to lines of the
// latest stderr output, each line prefixed with its stream. It never waits for new output.
func (s *Supervisor) Tail(ctx context.Context, name string, lines int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	p, ok := s.procs[name]
	var outPath, errPath string
	if ok {
		outPath, errPath = p.outPath, p.errPath
	}
	s.mu.Unlock()
	if !ok {
		return nil, errors.NotFound("tail", name)
	}

	lines = NormalizeLines(lines)
	result := make([]string, 0)
	for _, stream := range []struct {
		prefix string
		path   string
	}{
		{"[stdout] ", outPath},
		{"[stderr] ", errPath},
	} {
		tail, err := tailFile(stream.path, lines)
		if err != nil {
			return nil, err
		}
		for _, line := range tail {
			result = append(result, stream.prefix+line)
		}
	}
	return result, nil
}

// tailFile reads backwards from the end of path until it has n complete lines.
// A missing file has no lines.
func tailFile(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return nil, nil
	}

	var buf []byte
	offset := size
	for offset > 0 && bytes.Count(buf, []byte{'\n'}) <= n {
		chunk := int64(tailChunk)
		if chunk > offset {
			chunk = offset
		}
		offset -= chunk
		block := make([]byte, chunk)
		if _, err := f.ReadAt(block, offset); err != nil && err != io.EOF {
			return nil, err
		}
		buf = append(block, buf...)
	}

	buf = bytes.TrimSuffix(buf, []byte{'\n'})
	if len(buf) == 0 {
		return nil, nil
	}
	all := bytes.Split(buf, []byte{'\n'})
	if offset > 0 {
		// first element is a partial line
		all = all[1:]
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}

	out := make([]string, len(all))
	for i, line := range all {
		out[i] = string(bytes.TrimRight(line, "\r"))
	}
	return out, nil
}
