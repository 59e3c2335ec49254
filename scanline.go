package jpeg

import "fmt"

// scanlineView is the row-pull facade over a decoded header's entropy data.
// It owns all the mutable per-scan state — DC predictors, bit cursor,
// MCU-row cache, row counter — so a header is not changed once parsed,
// except that a decode failure clears its valid flag. Grounded on the original mxgui getScanLine/reset, generalized from
// a fixed static cache to an instance-owned one (the original used function-
// local statics, which only work for a single image at a time).
type scanlineView struct {
    h *header

    mcuWidth int
    cache    []mcu
    loaded   []bool
    lastMcuRow int

    prev     [3]int32
    mcuIndex int

    b *bitReader

    firstLine  bool
    rowsEmitted int
}

// lastMcuRowNone is the sentinel meaning "no MCU row has been decoded yet",
// distinct from any real zero-based row index.
const lastMcuRowNone = -1

// newScanlineView builds a view over h. h must be valid.
func newScanlineView( h *header ) *scanlineView {
    mcuWidth := ( h.width + 7 ) / 8
    s := &scanlineView{
        h:          h,
        mcuWidth:   mcuWidth,
        cache:      make( []mcu, mcuWidth ),
        loaded:     make( []bool, mcuWidth ),
        lastMcuRow: lastMcuRowNone,
        b:          newBitReader( nil ),
        firstLine:  true,
    }
    return s
}

// reset rewinds all per-scan state to the top of the image, mirroring the
// original JpegImage::reset.
func (s *scanlineView) reset( ) {
    s.prev[ 0 ], s.prev[ 1 ], s.prev[ 2 ] = 0, 0, 0
    s.mcuIndex = 0
    s.lastMcuRow = lastMcuRowNone
    for i := range s.loaded {
        s.loaded[ i ] = false
    }
    s.b.reset( )
    s.firstLine = true
    s.rowsEmitted = 0
}

// decodeMCU runs one MCU through entropy decode, dequantize, IDCT and color
// conversion, honoring restart-interval DC-predictor resets along the way.
// Grounded on the original mxgui decodeHuffmanData/processOneMCU.
func (s *scanlineView) decodeMCU( index int ) ( mcu, error ) {
    if s.h.restartInterval != 0 && index % s.h.restartInterval == 0 {
        s.prev[ 0 ], s.prev[ 1 ], s.prev[ 2 ] = 0, 0, 0
        s.b.align( )
    }

    var m mcu
    for j := 0; j < s.h.numComponents; j ++ {
        c := s.h.components[ j ]
        err := decodeBlock( s.b, m.block( j ), &s.prev[ j ], &s.h.huffmanDC[ c.huffmanDCTableID ], &s.h.huffmanAC[ c.huffmanACTableID ] )
        if err != nil {
            return m, fmt.Errorf( "decodeMCU: mcu %d component %d: %w", index, j, err )
        }
        dequantize( m.block( j ), &s.h.quantTables[ c.quantTableID ] )
        inverseDCT( m.block( j ) )
    }
    colorConvert( &m )
    return m, nil
}

// getScanLine fills out[0:length] with RGB565 samples from row y starting
// at column x0. The entropy stream is strictly sequential, so every column
// of the MCU row is decoded on first touch regardless of x0/length — a
// partial-width request must not leave the bit cursor mid-row, or the next
// row's decode would desynchronize. Grounded on the original mxgui
// getScanLine, which likewise always decodes the full row before indexing
// into it.
func (s *scanlineView) getScanLine( x0, y int, out []uint16 ) error {
    if ! s.h.valid {
        return fmt.Errorf( "getScanLine: invalid image: %w", ErrContainer )
    }
    if y < 0 || y >= s.h.height {
        return fmt.Errorf( "getScanLine: row %d out of range [0,%d)", y, s.h.height )
    }
    length := len( out )
    if x0 < 0 || x0 + length > s.h.width {
        return fmt.Errorf( "getScanLine: columns [%d,%d) out of range [0,%d)", x0, x0 + length, s.h.width )
    }

    if s.firstLine {
        s.b.setData( s.h.entropyData )
        s.firstLine = false
    }

    mcuRow := y / 8
    pixelRow := y % 8

    if mcuRow != s.lastMcuRow {
        for i := range s.loaded {
            s.loaded[ i ] = false
        }
        s.lastMcuRow = mcuRow
    }

    for col := 0; col < s.mcuWidth; col ++ {
        if s.loaded[ col ] {
            continue
        }
        index := mcuRow * s.mcuWidth + col
        m, err := s.decodeMCU( index )
        if err != nil {
            s.h.valid = false
            return err
        }
        s.cache[ col ] = m
        s.loaded[ col ] = true
        s.mcuIndex = index + 1
    }

    for i := 0; i < length; i ++ {
        x := x0 + i
        col := x / 8
        pix := pixelRow * 8 + ( x % 8 )
        m := &s.cache[ col ]
        out[ i ] = packRGB565( m[ componentR ][ pix ], m[ componentG ][ pix ], m[ componentB ][ pix ] )
    }

    s.rowsEmitted ++
    if s.rowsEmitted == s.h.height {
        s.reset( )
    }
    return nil
}
