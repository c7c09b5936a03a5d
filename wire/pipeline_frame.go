package wire

import (
	"encoding/binary"
	"io"
)

// readInts fills dst with len(dst) host-byte-order int32 values read
// from r, returning io.EOF if r is already exhausted and ErrShortRead if
// it ends partway through.
func readInts(r io.Reader, dst []int32) error {
	buf := make([]byte, 4*len(dst))
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return ErrShortRead
	}
	for i := range dst {
		dst[i] = int32(binary.NativeEndian.Uint32(buf[4*i : 4*i+4]))
	}
	return nil
}

func writeInts(w io.Writer, vals []int32) error {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.NativeEndian.PutUint32(buf[4*i:4*i+4], uint32(v))
	}
	_, err := w.Write(buf)
	return err
}

// ReadPipelineRequest decodes a pipeline request from r: the fixed
// 3-integer header [seed, max_weight, vertices], a 4-byte edge count,
// then that many (u, v, w) triples. The edge count is an explicit
// length prefix rather than inferred from how many bytes a single read
// happens to return.
func ReadPipelineRequest(r io.Reader) (PipelineRequest, error) {
	var header [3]int32
	if err := readInts(r, header[:]); err != nil {
		return PipelineRequest{}, err
	}
	req := PipelineRequest{Seed: header[0], MaxWeight: header[1], Vertices: header[2]}

	if req.Vertices <= 0 || req.Vertices > MaxVertices {
		return PipelineRequest{}, ErrVertexCount
	}

	var countBuf [1]int32
	if err := readInts(r, countBuf[:]); err != nil {
		return PipelineRequest{}, err
	}
	edgeCount := countBuf[0]
	if edgeCount < 0 || edgeCount > req.Vertices*req.Vertices {
		return PipelineRequest{}, ErrEdgeCount
	}

	flat := make([]int32, 3*edgeCount)
	if err := readInts(r, flat); err != nil {
		return PipelineRequest{}, err
	}

	req.Edges = make([]EdgeTriple, edgeCount)
	for i := range req.Edges {
		u, v, w := flat[3*i], flat[3*i+1], flat[3*i+2]
		if u < 0 || u >= req.Vertices || v < 0 || v >= req.Vertices {
			return PipelineRequest{}, ErrVertexOutOfRange
		}
		if w <= 0 {
			return PipelineRequest{}, ErrBadWeight
		}
		req.Edges[i] = EdgeTriple{U: u, V: v, W: w}
	}

	return req, nil
}

// WritePipelineRequest encodes req in the wire layout ReadPipelineRequest
// consumes, for use by test clients.
func WritePipelineRequest(w io.Writer, req PipelineRequest) error {
	if err := writeInts(w, []int32{req.Seed, req.MaxWeight, req.Vertices}); err != nil {
		return err
	}
	if err := writeInts(w, []int32{int32(len(req.Edges))}); err != nil {
		return err
	}
	flat := make([]int32, 0, 3*len(req.Edges))
	for _, e := range req.Edges {
		flat = append(flat, e.U, e.V, e.W)
	}
	return writeInts(w, flat)
}

// WritePipelineResponse writes report as a raw text blob followed by
// connection close is the caller's responsibility; this just writes
// the bytes.
func WritePipelineResponse(w io.Writer, report string) error {
	_, err := io.WriteString(w, report)
	return err
}
