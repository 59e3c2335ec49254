package jpeg

// dequantize multiplies each of a block's 64 natural-order coefficients by
// the matching entry of q, in place. Grounded on the original mxgui
// dequantizeMCUComponent.
func dequantize( block *[64]int32, q *quantTable ) {
    for i := 0; i < 64; i ++ {
        block[ i ] *= int32( q.values[ i ] )
    }
}
