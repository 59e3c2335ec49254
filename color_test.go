package jpeg

import "testing"

func TestColorConvertGray128( t *testing.T ) {
    var m mcu
    for i := 0; i < 64; i ++ {
        m[ componentY ][ i ] = 0
        m[ componentCb ][ i ] = 0
        m[ componentCr ][ i ] = 0
    }
    colorConvert( &m )
    for i := 0; i < 64; i ++ {
        r, g, b := m[ componentR ][ i ], m[ componentG ][ i ], m[ componentB ][ i ]
        if r != 128 || g != 128 || b != 128 {
            t.Fatalf( "pixel %d = (%d,%d,%d), want (128,128,128)", i, r, g, b )
        }
        if packRGB565( r, g, b ) != 0x8410 {
            t.Fatalf( "pixel %d packed = %#04x, want 0x8410", i, packRGB565( r, g, b ) )
        }
    }
}

func TestColorConvertBlackAndWhite( t *testing.T ) {
    // IDCT output is centered on 0: a true black sample (Y=0, Cb=Cr=128)
    // decodes to Y=-128, Cb=Cr=0 at this stage.
    var black mcu
    for i := 0; i < 64; i ++ {
        black[ componentY ][ i ] = -128
    }
    colorConvert( &black )
    for i := 0; i < 64; i ++ {
        if packRGB565( black[ componentR ][ i ], black[ componentG ][ i ], black[ componentB ][ i ] ) != 0x0000 {
            t.Fatalf( "expected black, got non-zero pixel %d", i )
        }
    }

    // A true white sample (Y=255, Cb=Cr=128) decodes to Y=127, Cb=Cr=0.
    var white mcu
    for i := 0; i < 64; i ++ {
        white[ componentY ][ i ] = 127
    }
    colorConvert( &white )
    for i := 0; i < 64; i ++ {
        if packRGB565( white[ componentR ][ i ], white[ componentG ][ i ], white[ componentB ][ i ] ) != 0xFFFF {
            t.Fatalf( "expected white, got %#04x at pixel %d",
                packRGB565( white[ componentR ][ i ], white[ componentG ][ i ], white[ componentB ][ i ] ), i )
        }
    }
}

func TestColorConvertRedStripe( t *testing.T ) {
    // Pure red (R=255,G=0,B=0) has true Y≈76, Cb≈84, Cr≈255; centered on 0
    // as the IDCT leaves them, that's roughly Y=-52, Cb=-44, Cr=127.
    var m mcu
    for i := 0; i < 64; i ++ {
        m[ componentY ][ i ] = -52
        m[ componentCb ][ i ] = -44
        m[ componentCr ][ i ] = 127
    }
    colorConvert( &m )
    for i := 0; i < 64; i ++ {
        packed := packRGB565( m[ componentR ][ i ], m[ componentG ][ i ], m[ componentB ][ i ] )
        if packed != 0xF800 {
            t.Fatalf( "pixel %d packed = %#04x, want 0xF800 (pure red)", i, packed )
        }
    }
}

func TestClamp255( t *testing.T ) {
    cases := []struct{ in, want int32 }{
        { -10, 0 }, { 0, 0 }, { 255, 255 }, { 300, 255 }, { 128, 128 },
    }
    for _, c := range cases {
        if got := clamp255( c.in ); got != c.want {
            t.Fatalf( "clamp255(%d) = %d, want %d", c.in, got, c.want )
        }
    }
}
