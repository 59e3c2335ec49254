package jpeg

import "testing"

func TestDequantize( t *testing.T ) {
    var block [64]int32
    for i := range block {
        block[ i ] = 2
    }
    var q quantTable
    q.set = true
    for i := range q.values {
        q.values[ i ] = uint16( i )
    }
    dequantize( &block, &q )
    for i, v := range block {
        want := int32( 2 * i )
        if v != want {
            t.Fatalf( "block[%d] = %d, want %d", i, v, want )
        }
    }
}
