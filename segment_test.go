package jpeg

import "testing"

// minimalFrame builds a tiny, well-formed single-component (grayscale)
// baseline JPEG: one 8x8 block, flat DC, no AC, no restart markers.
func minimalFrame( ) []byte {
    buf := []byte{ 0xFF, markerSOI }

    // DQT: table 0, 8-bit, all entries 1 (identity).
    dqt := []byte{ 0xFF, markerDQT, 0x00, 67, 0x00 }
    for i := 0; i < 64; i ++ {
        dqt = append( dqt, 1 )
    }
    buf = append( buf, dqt ... )

    // SOF0: 8x8, 1 component id 1, sampling 1x1, quant table 0.
    buf = append( buf, 0xFF, markerSOF0,
        0x00, 11, // length
        8,        // precision
        0x00, 8, 0x00, 8, // height, width
        1,        // components
        1, 0x11, 0,
    )

    // DHT: DC table 0 with a single 2-bit symbol 0 (value "00").
    dcLengths := make( []byte, 16 )
    dcLengths[ 1 ] = 1 // one code of length 2
    dht := append( []byte{ 0xFF, markerDHT, 0x00, byte( 2 + 1 + 16 + 1 ), 0x00 }, dcLengths ... )
    dht = append( dht, 0x00 ) // symbol: 0 extra bits, DC value 0
    buf = append( buf, dht ... )

    // DHT: AC table 0 with a single 2-bit symbol 0x00 (EOB).
    acLengths := make( []byte, 16 )
    acLengths[ 1 ] = 1
    dhtAC := append( []byte{ 0xFF, markerDHT, 0x00, byte( 2 + 1 + 16 + 1 ), 0x10 }, acLengths ... )
    dhtAC = append( dhtAC, 0x00 ) // EOB symbol
    buf = append( buf, dhtAC ... )

    // SOS: 1 component, table selectors 0/0.
    buf = append( buf, 0xFF, markerSOS,
        0x00, 8,
        1,
        1, 0x00,
        0, 63, 0x00,
    )

    // Entropy data: DC code "00" (symbol 0, no extra bits -> DC diff 0),
    // AC code "00" (EOB), then pad to a byte boundary with 1 bits.
    buf = append( buf, 0x0F )
    buf = append( buf, 0xFF, markerEOI )
    return buf
}

func TestParseMinimalFrame( t *testing.T ) {
    h := parse( minimalFrame( ) )
    if ! h.valid {
        t.Fatalf( "expected a valid header" )
    }
    if h.width != 8 || h.height != 8 {
        t.Fatalf( "dimensions = %dx%d, want 8x8", h.width, h.height )
    }
    if h.numComponents != 1 {
        t.Fatalf( "numComponents = %d, want 1", h.numComponents )
    }
    if len( h.entropyData ) == 0 {
        t.Fatalf( "expected non-empty entropy data" )
    }
}

func TestParseMissingSOI( t *testing.T ) {
    h := parse( []byte{ 0x00, 0x00 } )
    if h.valid {
        t.Fatalf( "expected invalid header for a missing SOI" )
    }
}

func TestParseRejectsProgressive( t *testing.T ) {
    buf := []byte{ 0xFF, markerSOI, 0xFF, markerSOF2, 0x00, 11, 8, 0x00, 8, 0x00, 8, 1, 1, 0x11, 0 }
    h := parse( buf )
    if h.valid {
        t.Fatalf( "expected invalid header for a progressive SOF2 frame" )
    }
}

func TestParseRejectsArithmeticCoding( t *testing.T ) {
    buf := []byte{ 0xFF, markerSOI, 0xFF, markerDAC, 0x00, 4, 0x00, 0x00 }
    h := parse( buf )
    if h.valid {
        t.Fatalf( "expected invalid header for DAC" )
    }
}

func TestParseRejectsTruncatedSOF( t *testing.T ) {
    buf := []byte{ 0xFF, markerSOI, 0xFF, markerSOF0, 0x00, 11, 8 }
    h := parse( buf )
    if h.valid {
        t.Fatalf( "expected invalid header for a truncated SOF0 segment" )
    }
}

func TestParseRejectsDuplicateSOF( t *testing.T ) {
    one := []byte{ 0xFF, markerSOF0, 0x00, 11, 8, 0x00, 8, 0x00, 8, 1, 1, 0x11, 0 }
    buf := append( []byte{ 0xFF, markerSOI }, one ... )
    buf = append( buf, one ... )
    h := parse( buf )
    if h.valid {
        t.Fatalf( "expected invalid header for duplicate SOF0 markers" )
    }
}

func TestParseRejectsSubsampling( t *testing.T ) {
    buf := []byte{
        0xFF, markerSOI,
        0xFF, markerSOF0, 0x00, 11, 8, 0x00, 8, 0x00, 8, 1, 1, 0x22, 0,
    }
    h := parse( buf )
    if h.valid {
        t.Fatalf( "expected invalid header for 2x2 sampling" )
    }
}

func TestParseRestartInterval( t *testing.T ) {
    buf := minimalFrame( )
    // splice a DRI segment in right after SOI.
    dri := []byte{ 0xFF, markerDRI, 0x00, 4, 0x00, 2 }
    buf = append( buf[ :2 ], append( dri, buf[ 2: ] ... ) ... )
    h := parse( buf )
    if ! h.valid {
        t.Fatalf( "expected a valid header with a restart interval" )
    }
    if h.restartInterval != 2 {
        t.Fatalf( "restartInterval = %d, want 2", h.restartInterval )
    }
}

func TestParseComment( t *testing.T ) {
    buf := minimalFrame( )
    com := []byte{ 0xFF, markerCOM, 0x00, 6, 'h', 'e', 'l', 'l' }
    buf = append( buf[ :2 ], append( com, buf[ 2: ] ... ) ... )
    h := parse( buf )
    if ! h.valid {
        t.Fatalf( "expected a valid header with a comment segment" )
    }
    if h.comment != "hell" {
        t.Fatalf( "comment = %q, want %q", h.comment, "hell" )
    }
}

func TestExtractEntropyDataUnstuffsFF00( t *testing.T ) {
    p := newSegmentParser( []byte{ 0xFF, 0x00, 0x01, 0xFF, markerEOI } )
    p.h.valid = true
    p.extractEntropyData( )
    if ! p.h.valid {
        t.Fatalf( "expected extraction to succeed" )
    }
    want := []byte{ 0xFF, 0x01 }
    if len( p.h.entropyData ) != len( want ) || p.h.entropyData[ 0 ] != want[ 0 ] || p.h.entropyData[ 1 ] != want[ 1 ] {
        t.Fatalf( "entropyData = %v, want %v", p.h.entropyData, want )
    }
}

func TestExtractEntropyDataDropsRestartMarkers( t *testing.T ) {
    p := newSegmentParser( []byte{ 0x01, 0xFF, markerRST0, 0x02, 0xFF, markerEOI } )
    p.h.valid = true
    p.extractEntropyData( )
    if ! p.h.valid {
        t.Fatalf( "expected extraction to succeed" )
    }
    want := []byte{ 0x01, 0x02 }
    if len( p.h.entropyData ) != len( want ) || p.h.entropyData[ 0 ] != want[ 0 ] || p.h.entropyData[ 1 ] != want[ 1 ] {
        t.Fatalf( "entropyData = %v, want %v", p.h.entropyData, want )
    }
}

func TestExtractEntropyDataRejectsMissingEOI( t *testing.T ) {
    p := newSegmentParser( []byte{ 0x01, 0x02 } )
    p.h.valid = true
    p.extractEntropyData( )
    if p.h.valid {
        t.Fatalf( "expected extraction to fail without an EOI" )
    }
}
