package jpeg

// clamp255 restricts v to [0,255]. The original mxgui YCbCrToRGBMCU clamped
// the red and blue channels against 225 instead of 255; this implementation
// uses 255 for every channel.
func clamp255( v int32 ) int32 {
    if v < 0 {
        return 0
    }
    if v > 255 {
        return 255
    }
    return v
}

// colorConvert transforms an mcu from the YCbCr phase to the RGB phase in
// place: m[componentY] becomes R, m[componentCb] becomes G, m[componentCr]
// becomes B. Grounded on the original mxgui YCbCrToRGBMCU.
func colorConvert( m *mcu ) {
    y, cb, cr := &m[ componentY ], &m[ componentCb ], &m[ componentCr ]
    for i := 0; i < 64; i ++ {
        yi, cbi, cri := float32( y[ i ] ), float32( cb[ i ] ), float32( cr[ i ] )

        r := int32( yi + 1.40 * cri + 128 )
        g := int32( yi - 0.344 * cbi - 0.714 * cri + 128 )
        b := int32( yi + 1.722 * cbi + 128 )

        y[ i ]  = clamp255( r )
        cb[ i ] = clamp255( g )
        cr[ i ] = clamp255( b )
    }
}

// packRGB565 packs an (r,g,b) triple, each already clamped to [0,255], into
// 16-bit RGB565: 5 bits red, 6 bits green, 5 bits blue.
func packRGB565( r, g, b int32 ) uint16 {
    return uint16( ( ( r & 0xF8 ) << 8 ) | ( ( g & 0xFC ) << 3 ) | ( b >> 3 ) )
}
