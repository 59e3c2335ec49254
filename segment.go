package jpeg

import "fmt"

// Verbose, when set, makes the segment parser print one trace line per
// decode failure it hits, in the spirit of the original mxgui source's
// std::cout tracing. Off by default so a decoder embedded in a GUI redraw
// loop does not spam stdout.
var Verbose = false

func trace( format string, args ...interface{} ) {
    if Verbose {
        fmt.Printf( format, args ... )
    }
}

// segmentParser walks a JPEG byte stream marker by marker, populating a
// header. Grounded on the original mxgui readJPG, with a marker-dispatch
// loop shaped after a Go segment-walking parser rather than the C++
// state-machine original.
type segmentParser struct {
    data []byte
    pos  int
    h    *header
}

func newSegmentParser( data []byte ) *segmentParser {
    return &segmentParser{ data: data, h: &header{ valid: true, orientation: defaultOrientation } }
}

// fail marks the header invalid and returns a wrapped ErrContainer. parse()
// still returns a header in this case; only its valid flag goes false.
func (p *segmentParser) fail( format string, args ...interface{} ) error {
    p.h.valid = false
    err := fmt.Errorf( format + ": %w", append( append( []interface{}{ }, args ... ), ErrContainer ) ... )
    trace( "%v\n", err )
    return err
}

func (p *segmentParser) unsupported( format string, args ...interface{} ) error {
    p.h.valid = false
    err := fmt.Errorf( format + ": %w", append( append( []interface{}{ }, args ... ), ErrUnsupported ) ... )
    trace( "%v\n", err )
    return err
}

// byte_ reads and returns the next byte, or -1 once the stream is exhausted.
func (p *segmentParser) byte_( ) int {
    if p.pos >= len( p.data ) {
        return -1
    }
    b := int( p.data[ p.pos ] )
    p.pos ++
    return b
}

// u16 reads a big-endian 16-bit value, or -1 if either byte is unavailable.
func (p *segmentParser) u16( ) int {
    hi := p.byte_( )
    if hi == -1 {
        return -1
    }
    lo := p.byte_( )
    if lo == -1 {
        return -1
    }
    return ( hi << 8 ) | lo
}

// skip discards n bytes, reporting whether that many were actually
// available.
func (p *segmentParser) skip( n int ) bool {
    if p.pos + n > len( p.data ) {
        p.pos = len( p.data )
        return false
    }
    p.pos += n
    return true
}

// parse runs the full header parse: SOI, then the marker loop up to and
// including SOS, then entropy-payload extraction up to EOI. It always
// returns a non-nil header; callers must check header.valid.
func parse( data []byte ) *header {
    p := newSegmentParser( data )

    if p.byte_( ) != 0xFF || p.byte_( ) != markerSOI {
        p.fail( "parse: missing SOI" )
        return p.h
    }

    for p.h.valid {
        marker, ok := p.nextMarker( )
        if ! ok {
            p.fail( "parse: file ended before SOS" )
            return p.h
        }

        switch {
        case marker == markerSOF0:
            p.h.frameType = markerSOF0
            if p.readStartOfFrame( ) != nil {
                return p.h
            }

        case marker == markerDQT:
            p.readQuantizationTables( )

        case marker == markerDHT:
            p.readHuffmanTables( )

        case marker == markerSOS:
            p.readStartOfScan( )
            if p.h.valid {
                p.extractEntropyData( )
            }
            return p.finish( )

        case marker == markerDRI:
            p.readRestartInterval( )

        case marker >= markerAPP0 && marker <= markerAPP15:
            p.readApplicationSegment( byte( marker ) )

        case marker == markerCOM:
            p.readComment( )

        case marker == markerJPG,
            marker >= markerJPG0 && marker <= markerJPG13,
            marker == markerDNL, marker == markerDHP, marker == markerEXP:
            p.skipLengthPrefixed( )

        case marker == markerTEM:
            // no payload

        case marker == markerSOI:
            p.unsupported( "parse: embedded JPEGs are not supported" )
            return p.h

        case marker == markerEOI:
            p.fail( "parse: EOI before SOS" )
            return p.h

        case marker == markerDAC:
            p.unsupported( "parse: arithmetic coding is not supported" )
            return p.h

        case isSOFMarker( marker ) :
            p.unsupported( "parse: SOF marker %#02x is not baseline", marker )
            return p.h

        case marker >= markerRST0 && marker <= markerRST7:
            p.fail( "parse: RST marker before SOS" )
            return p.h

        default:
            p.fail( "parse: unknown marker %#02x", marker )
            return p.h
        }
    }
    return p.h
}

// isSOFMarker reports whether marker is one of the non-baseline SOFn frame
// markers this decoder rejects.
func isSOFMarker( marker int ) bool {
    switch marker {
    case markerSOF1, markerSOF2, markerSOF3, markerSOF5, markerSOF6, markerSOF7,
        markerSOF9, markerSOF10, markerSOF11, markerSOF13, markerSOF14, markerSOF15:
        return true
    }
    return false
}

// nextMarker consumes a 0xFF fill-byte run and returns the marker byte that
// follows, or ok=false if the stream ran out first. Every marker in a JPEG
// container is preceded by at least one 0xFF, with further 0xFF bytes
// tolerated as fill.
func (p *segmentParser) nextMarker( ) ( int, bool ) {
    b := p.byte_( )
    if b != 0xFF {
        return 0, false
    }
    for b == 0xFF {
        b = p.byte_( )
        if b == -1 {
            return 0, false
        }
    }
    return b, true
}

// finish runs the post-parse validity checks that require the complete
// header: component count, every referenced table actually populated, and
// generates the canonical Huffman codes for every populated table.
func (p *segmentParser) finish( ) *header {
    h := p.h
    if ! h.valid {
        return h
    }
    if h.numComponents != 1 && h.numComponents != 3 {
        p.fail( "finish: %d color components (1 or 3 required)", h.numComponents )
        return h
    }
    for i := 0; i < h.numComponents; i ++ {
        c := h.components[ i ]
        if ! h.quantTables[ c.quantTableID ].set {
            p.fail( "finish: component %d uses an unpopulated quantization table", i )
            return h
        }
        if ! h.huffmanDC[ c.huffmanDCTableID ].set {
            p.fail( "finish: component %d uses an unpopulated DC Huffman table", i )
            return h
        }
        if ! h.huffmanAC[ c.huffmanACTableID ].set {
            p.fail( "finish: component %d uses an unpopulated AC Huffman table", i )
            return h
        }
    }
    for i := 0; i < 4; i ++ {
        if h.huffmanDC[ i ].set {
            generateCodes( &h.huffmanDC[ i ] )
        }
        if h.huffmanAC[ i ].set {
            generateCodes( &h.huffmanAC[ i ] )
        }
    }
    return h
}

// readStartOfFrame parses SOF0 (baseline DCT). Grounded on the original
// mxgui readStartOfFrame.
func (p *segmentParser) readStartOfFrame( ) error {
    if p.h.numComponents != 0 {
        return p.fail( "readStartOfFrame: multiple SOF markers" )
    }

    length := p.u16( )
    if length == -1 {
        return p.fail( "readStartOfFrame: truncated segment" )
    }

    precision := p.byte_( )
    if precision != 8 {
        return p.fail( "readStartOfFrame: unsupported precision %d", precision )
    }

    height, width := p.u16( ), p.u16( )
    if height <= 0 || width <= 0 {
        return p.fail( "readStartOfFrame: invalid dimensions %dx%d", width, height )
    }
    p.h.height, p.h.width = height, width

    n := p.byte_( )
    switch {
    case n == 4:
        return p.unsupported( "readStartOfFrame: CMYK is not supported" )
    case n != 1 && n != 3:
        return p.fail( "readStartOfFrame: invalid component count %d", n )
    }
    p.h.numComponents = n

    for i := 0; i < n; i ++ {
        id := p.byte_( )
        if id < 0 {
            return p.fail( "readStartOfFrame: truncated component" )
        }
        componentID := byte( id )
        if componentID == 0 {
            p.h.zeroBased = true
        }
        if p.h.zeroBased {
            componentID ++
        }
        if componentID == 4 || componentID == 5 {
            return p.unsupported( "readStartOfFrame: YIQ is not supported" )
        }
        if componentID == 0 || int( componentID ) > 3 {
            return p.fail( "readStartOfFrame: invalid component id %d", componentID )
        }

        c := &p.h.components[ componentID - 1 ]
        if c.used {
            return p.fail( "readStartOfFrame: duplicate component id %d", componentID )
        }
        c.id = componentID
        c.used = true

        sampling := p.byte_( )
        c.horizontalSampling = byte( sampling >> 4 )
        c.verticalSampling = byte( sampling & 0x0F )
        if c.horizontalSampling != 1 || c.verticalSampling != 1 {
            return p.unsupported( "readStartOfFrame: sampling factors other than 1x1 are not supported" )
        }

        qid := p.byte_( )
        if qid < 0 || qid > 3 {
            return p.fail( "readStartOfFrame: invalid quantization table id %d", qid )
        }
        c.quantTableID = byte( qid )
    }

    if length != 8 + 3 * n {
        return p.fail( "readStartOfFrame: length mismatch" )
    }
    return nil
}

// readQuantizationTables parses one or more DQT tables, reordering each
// from zig-zag into natural order as it is read. Grounded on the original
// mxgui readQuantizationTable.
func (p *segmentParser) readQuantizationTables( ) {
    length := p.u16( )
    if length == -1 {
        p.fail( "readQuantizationTables: truncated segment" )
        return
    }
    remaining := length - 2

    for remaining > 0 {
        info := p.byte_( )
        if info == -1 {
            p.fail( "readQuantizationTables: truncated table" )
            return
        }
        remaining --
        id := info & 0x0F
        if id > 3 {
            p.fail( "readQuantizationTables: invalid table id %d", id )
            return
        }
        q := &p.h.quantTables[ id ]
        q.set = true

        if info >> 4 != 0 { // 16-bit entries
            for i := 0; i < 64; i ++ {
                v := p.u16( )
                if v == -1 {
                    p.fail( "readQuantizationTables: truncated entries" )
                    return
                }
                q.values[ zigZag[ i ] ] = uint16( v )
            }
            remaining -= 128
        } else { // 8-bit entries
            for i := 0; i < 64; i ++ {
                v := p.byte_( )
                if v == -1 {
                    p.fail( "readQuantizationTables: truncated entries" )
                    return
                }
                q.values[ zigZag[ i ] ] = uint16( v )
            }
            remaining -= 64
        }
    }
    if remaining != 0 {
        p.fail( "readQuantizationTables: length mismatch" )
    }
}

// readHuffmanTables parses one or more DHT tables. Grounded on the original
// mxgui readHuffmanTable.
func (p *segmentParser) readHuffmanTables( ) {
    length := p.u16( )
    if length == -1 {
        p.fail( "readHuffmanTables: truncated segment" )
        return
    }
    remaining := length - 2

    for remaining > 0 {
        info := p.byte_( )
        if info == -1 {
            p.fail( "readHuffmanTables: truncated table" )
            return
        }
        remaining --
        id := info & 0x0F
        isAC := info >> 4 != 0
        if id > 3 {
            p.fail( "readHuffmanTables: invalid table id %d", id )
            return
        }

        var t *huffmanTable
        if isAC {
            t = &p.h.huffmanAC[ id ]
        } else {
            t = &p.h.huffmanDC[ id ]
        }
        t.set = true
        t.offset[ 0 ] = 0

        total := 0
        for i := 1; i <= 16; i ++ {
            c := p.byte_( )
            if c == -1 {
                p.fail( "readHuffmanTables: truncated length counts" )
                return
            }
            total += c
            t.offset[ i ] = total
        }
        remaining -= 16
        if total > maxHuffmanSymbols {
            p.fail( "readHuffmanTables: %d symbols exceeds the maximum of %d", total, maxHuffmanSymbols )
            return
        }
        for i := 0; i < total; i ++ {
            s := p.byte_( )
            if s == -1 {
                p.fail( "readHuffmanTables: truncated symbols" )
                return
            }
            t.symbols[ i ] = byte( s )
        }
        t.nSymbols = total
        remaining -= total
    }
    if remaining != 0 {
        p.fail( "readHuffmanTables: length mismatch" )
    }
}

// readStartOfScan parses SOS. Grounded on the original mxgui
// readStartOfScan, with two fixes: the AC Huffman table ID is bounds-checked
// independently of the DC ID (the original checked huffmanDCTableID twice
// and never checked the AC one), and component.used is actually assigned
// (the original left it as a bare, side-effect-free expression statement).
func (p *segmentParser) readStartOfScan( ) {
    if p.h.numComponents == 0 {
        p.fail( "readStartOfScan: SOS before SOF" )
        return
    }

    if p.u16( ) == -1 { // length, unused beyond framing
        p.fail( "readStartOfScan: truncated segment" )
        return
    }

    for i := 0; i < p.h.numComponents; i ++ {
        p.h.components[ i ].used = false
    }

    n := p.byte_( )
    if n == -1 {
        p.fail( "readStartOfScan: truncated segment" )
        return
    }
    for i := 0; i < n; i ++ {
        id := p.byte_( )
        if id == -1 {
            p.fail( "readStartOfScan: truncated component selector" )
            return
        }
        componentID := byte( id )
        if p.h.zeroBased {
            componentID ++
        }
        c := p.h.componentByID( componentID )
        if c == nil {
            p.fail( "readStartOfScan: invalid component id %d", componentID )
            return
        }
        if c.used {
            p.fail( "readStartOfScan: duplicate component id %d", componentID )
            return
        }
        c.used = true

        tableIDs := p.byte_( )
        if tableIDs == -1 {
            p.fail( "readStartOfScan: truncated table selectors" )
            return
        }
        c.huffmanDCTableID = byte( tableIDs >> 4 )
        c.huffmanACTableID = byte( tableIDs & 0x0F )
        if c.huffmanDCTableID > 3 {
            p.fail( "readStartOfScan: invalid DC Huffman table id %d", c.huffmanDCTableID )
            return
        }
        if c.huffmanACTableID > 3 {
            p.fail( "readStartOfScan: invalid AC Huffman table id %d", c.huffmanACTableID )
            return
        }
    }

    ss, se, approx := p.byte_( ), p.byte_( ), p.byte_( )
    if ss == -1 || se == -1 || approx == -1 {
        p.fail( "readStartOfScan: truncated spectral-selection bytes" )
        return
    }
    p.h.startOfSelection = byte( ss )
    p.h.endOfSelection = byte( se )
    p.h.successiveApproximationHigh = byte( approx >> 4 )
    p.h.successiveApproximationLow = byte( approx & 0x0F )
}

// readRestartInterval parses DRI.
func (p *segmentParser) readRestartInterval( ) {
    length := p.u16( )
    interval := p.u16( )
    if length != 4 || interval == -1 {
        p.fail( "readRestartInterval: invalid segment" )
        return
    }
    p.h.restartInterval = interval
}

// readApplicationSegment reads an APPn segment. APP1 payloads beginning
// with the EXIF signature are handed to parseExifOrientation (metadata.go);
// everything else is skipped.
func (p *segmentParser) readApplicationSegment( marker byte ) {
    length := p.u16( )
    if length == -1 || length < 2 {
        p.fail( "readApplicationSegment: invalid length" )
        return
    }
    payloadLen := length - 2
    if p.pos + payloadLen > len( p.data ) {
        p.fail( "readApplicationSegment: truncated payload" )
        return
    }
    payload := p.data[ p.pos : p.pos + payloadLen ]
    p.pos += payloadLen

    if marker == markerAPP1 && len( payload ) >= len( exifSignature ) &&
        string( payload[ :len( exifSignature ) ] ) == string( exifSignature ) {
        p.h.orientation = parseExifOrientation( payload )
    }
}

// readComment collects a COM segment's text into header.comment (last one
// wins if more than one is present), supplementing the original's
// print-and-discard behavior.
func (p *segmentParser) readComment( ) {
    length := p.u16( )
    if length == -1 || length < 2 {
        p.fail( "readComment: invalid length" )
        return
    }
    payloadLen := length - 2
    if p.pos + payloadLen > len( p.data ) {
        p.fail( "readComment: truncated payload" )
        return
    }
    p.h.comment = string( p.data[ p.pos : p.pos + payloadLen ] )
    p.pos += payloadLen
}

// skipLengthPrefixed discards a marker segment of the form length(u16)
// followed by length-2 payload bytes, used for markers this decoder does
// not interpret (JPGn, DNL, DHP, EXP).
func (p *segmentParser) skipLengthPrefixed( ) {
    length := p.u16( )
    if length == -1 || length < 2 {
        p.fail( "skipLengthPrefixed: invalid length" )
        return
    }
    if ! p.skip( length - 2 ) {
        p.fail( "skipLengthPrefixed: truncated payload" )
    }
}

// extractEntropyData reads the entropy-coded segment bytes following SOS up
// to EOI, removing byte-stuffing (0xFF 0x00 -> 0xFF) and dropping restart
// markers (0xFF RSTn; the scanline view tracks restarts by MCU index, not
// by marker position, so they carry no information once removed from the
// byte stream). Grounded on the original mxgui post-SOS loop in readJPG.
func (p *segmentParser) extractEntropyData( ) {
    h := p.h
    buf := make( []byte, 0, len( p.data ) - p.pos )

    for {
        b := p.byte_( )
        if b == -1 {
            p.fail( "extractEntropyData: file ended before EOI" )
            return
        }
        if b != 0xFF {
            buf = append( buf, byte( b ) )
            continue
        }

        next := p.byte_( )
        switch {
        case next == -1:
            p.fail( "extractEntropyData: file ended before EOI" )
            return
        case next == markerEOI:
            h.entropyData = buf
            return
        case next == 0x00:
            buf = append( buf, 0xFF )
        case next >= markerRST0 && next <= markerRST7:
            // dropped: restarts are tracked by MCU index, see scanline.go
        case next == 0xFF:
            p.pos --    // re-examine this 0xFF as the start of the next marker
        default:
            p.fail( "extractEntropyData: unexpected marker %#02x in entropy data", next )
            return
        }
    }
}
