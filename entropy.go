package jpeg

import "fmt"

// extend applies the JPEG sign-extension rule to a coefficient v decoded
// from a length-bit field: values in the lower half of the length-bit range
// represent negative numbers. length 0 always yields 0.
func extend( v, length int ) int {
    if length != 0 && v < ( 1 << uint( length - 1 ) ) {
        v -= ( 1 << uint( length ) ) - 1
    }
    return v
}

// decodeBlock decodes one component's DC and AC coefficients for a single
// 8x8 block out of b, using dcTable/acTable, and writes them in natural
// (un-zig-zagged) order into block. previousDC is both read (as the DC
// predictor) and updated with the block's reconstructed DC value. Grounded
// on the original mxgui decodeMCUComponents.
func decodeBlock( b *bitReader, block *[64]int32, previousDC *int32, dcTable, acTable *huffmanTable ) error {
    length, err := nextSymbol( b, dcTable )
    if err != nil {
        return fmt.Errorf( "decodeBlock: DC symbol: %w", err )
    }
    if length > 11 {
        return fmt.Errorf( "decodeBlock: DC coefficient length %d exceeds 11: %w", length, ErrBitstream )
    }

    v := 0
    if length > 0 {
        v = b.readBits( uint( length ) )
        if v == -1 {
            return fmt.Errorf( "decodeBlock: DC coefficient bits exhausted: %w", ErrBitstream )
        }
    }
    v = extend( v, int( length ) )

    dc := int32( v ) + *previousDC
    block[ 0 ] = dc
    *previousDC = dc

    i := 1
    for i < 64 {
        symbol, err := nextSymbol( b, acTable )
        if err != nil {
            return fmt.Errorf( "decodeBlock: AC symbol: %w", err )
        }

        if symbol == 0x00 { // EOB: remaining positions are zero
            for ; i < 64; i ++ {
                block[ zigZag[ i ] ] = 0
            }
            return nil
        }

        run := int( symbol >> 4 )
        size := int( symbol & 0x0F )
        if symbol == 0xF0 { // ZRL: skip 16 zeros, no coefficient follows
            run = 16
        }

        if i + run >= 64 {
            return fmt.Errorf( "decodeBlock: zero run of %d at position %d overflows block: %w", run, i, ErrBitstream )
        }
        for j := 0; j < run; j, i = j + 1, i + 1 {
            block[ zigZag[ i ] ] = 0
        }

        if size > 10 {
            return fmt.Errorf( "decodeBlock: AC coefficient length %d exceeds 10: %w", size, ErrBitstream )
        }
        if size != 0 {
            coeff := b.readBits( uint( size ) )
            if coeff == -1 {
                return fmt.Errorf( "decodeBlock: AC coefficient bits exhausted: %w", ErrBitstream )
            }
            coeff = extend( coeff, size )
            block[ zigZag[ i ] ] = int32( coeff )
            i ++
        }
    }
    return nil
}
