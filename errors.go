package jpeg

import "errors"

// Sentinel errors grouping decode failures into three stable categories.
// The segment parser and the entropy decoder wrap one of these with %w,
// while the underlying fmt.Errorf messages stay descriptive. Errors from
// GetScanLine keep that wrapping, so callers can errors.Is against a
// category; the segment parser's errors are only traced (see Verbose) and
// are not returned by Open.
var (
    // ErrContainer covers a malformed container: missing SOI, an unexpected
    // marker, a length field that does not match its payload, a table ID
    // out of range, or a reference to a table that was never populated.
    ErrContainer = errors.New( "jpeg: invalid container" )

    // ErrUnsupported covers a structurally valid JPEG that uses a feature
    // this decoder does not implement: non-baseline SOF, arithmetic coding,
    // subsampling other than 1:1, CMYK, or an embedded JPEG.
    ErrUnsupported = errors.New( "jpeg: unsupported feature" )

    // ErrBitstream covers entropy-decode failures: a BitReader exhausted
    // mid-MCU, no Huffman code matched within 16 bits, a DC/AC coefficient
    // length out of range, or a zero run that would overflow a block.
    ErrBitstream = errors.New( "jpeg: invalid entropy-coded data" )
)
