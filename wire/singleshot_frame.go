package wire

import "io"

// ReadSingleShotRequest decodes one request: the algorithm id, vertex
// count, then either an n*n adjacency matrix (ids 1, 4, 5) or an edge
// count plus that many triples (ids 2, 3).
func ReadSingleShotRequest(r io.Reader) (SingleShotRequest, error) {
	var head [2]int32
	if err := readInts(r, head[:]); err != nil {
		return SingleShotRequest{}, err
	}
	req := SingleShotRequest{AlgorithmID: head[0], Vertices: head[1]}

	if req.AlgorithmID < 1 || req.AlgorithmID > 5 {
		return SingleShotRequest{}, ErrBadAlgorithmID
	}
	if req.Vertices <= 0 || req.Vertices > MaxVertices {
		return SingleShotRequest{}, ErrVertexCount
	}

	if IsWeightedForm(req.AlgorithmID) {
		var countBuf [1]int32
		if err := readInts(r, countBuf[:]); err != nil {
			return SingleShotRequest{}, err
		}
		edgeCount := countBuf[0]
		if edgeCount < 0 || edgeCount > req.Vertices*req.Vertices {
			return SingleShotRequest{}, ErrEdgeCount
		}
		flat := make([]int32, 3*edgeCount)
		if err := readInts(r, flat); err != nil {
			return SingleShotRequest{}, err
		}
		req.Edges = make([]EdgeTriple, edgeCount)
		for i := range req.Edges {
			req.Edges[i] = EdgeTriple{U: flat[3*i], V: flat[3*i+1], W: flat[3*i+2]}
		}
		return req, nil
	}

	matrix := make([]int32, req.Vertices*req.Vertices)
	if err := readInts(r, matrix); err != nil {
		return SingleShotRequest{}, err
	}
	req.AdjacencyMatrix = matrix
	return req, nil
}

// WriteSingleShotRequest encodes req in the layout
// ReadSingleShotRequest consumes, for use by test clients.
func WriteSingleShotRequest(w io.Writer, req SingleShotRequest) error {
	if err := writeInts(w, []int32{req.AlgorithmID, req.Vertices}); err != nil {
		return err
	}
	if IsWeightedForm(req.AlgorithmID) {
		if err := writeInts(w, []int32{int32(len(req.Edges))}); err != nil {
			return err
		}
		flat := make([]int32, 0, 3*len(req.Edges))
		for _, e := range req.Edges {
			flat = append(flat, e.U, e.V, e.W)
		}
		return writeInts(w, flat)
	}
	return writeInts(w, req.AdjacencyMatrix)
}

// WriteSingleShotResponse writes the [status, length] header followed
// by length+1 NUL-terminated bytes of body. status is 1 on success, 0
// on failure; a failure response carries no body.
func WriteSingleShotResponse(w io.Writer, ok bool, body string) error {
	status := int32(0)
	length := int32(0)
	if ok {
		status = 1
		length = int32(len(body))
	}
	if err := writeInts(w, []int32{status, length}); err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if _, err := io.WriteString(w, body); err != nil {
		return err
	}
	_, err := w.Write([]byte{0})
	return err
}

// ReadSingleShotResponse decodes a response written by
// WriteSingleShotResponse, for use by test clients.
func ReadSingleShotResponse(r io.Reader) (ok bool, body string, err error) {
	var head [2]int32
	if err := readInts(r, head[:]); err != nil {
		return false, "", err
	}
	if head[0] == 0 {
		return false, "", nil
	}
	length := head[1]
	buf := make([]byte, length+1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return false, "", ErrShortRead
	}
	return true, string(buf[:length]), nil
}
