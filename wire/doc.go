// Package wire implements the two binary request/response protocols
// described for this system: the pipeline's length-prefixed request
// and fixed-layout text response, and the single-shot dispatcher's
// request/response framing.
//
// All integers are 4-byte, host byte order, matching a C server reading
// raw int writes directly off the wire; encoding/binary with the
// machine's native endianness stands in for that here. The pipeline's
// edge payload is explicitly length-prefixed (edge count before the
// triples) rather than read in a single recv call, since relying on one
// TCP read returning a whole variable-length payload is unreliable.
package wire
