package jpeg

import "math"

// AAN (Arai-Agui-Nakajima) scaling factors for the 1-D 8-point inverse DCT,
// derived once at package init time from the same cosine identities as the
// original mxgui implementation, so they are computed once per process
// rather than recomputed per block.
var (
    idctS0, idctS1, idctS2, idctS3, idctS4, idctS5, idctS6, idctS7 float32
    idctM1, idctM2, idctM3, idctM4, idctM5                         float32
)

func init( ) {
    idctS0 = float32( math.Cos( 0.0 / 16.0 * math.Pi ) / math.Sqrt( 8 ) )
    idctS1 = float32( math.Cos( 1.0 / 16.0 * math.Pi ) / 2.0 )
    idctS2 = float32( math.Cos( 2.0 / 16.0 * math.Pi ) / 2.0 )
    idctS3 = float32( math.Cos( 3.0 / 16.0 * math.Pi ) / 2.0 )
    idctS4 = float32( math.Cos( 4.0 / 16.0 * math.Pi ) / 2.0 )
    idctS5 = float32( math.Cos( 5.0 / 16.0 * math.Pi ) / 2.0 )
    idctS6 = float32( math.Cos( 6.0 / 16.0 * math.Pi ) / 2.0 )
    idctS7 = float32( math.Cos( 7.0 / 16.0 * math.Pi ) / 2.0 )

    m0 := float32( 2.0 * math.Cos( 1.0 / 16.0 * 2.0 * math.Pi ) )
    m1 := float32( 2.0 * math.Cos( 2.0 / 16.0 * 2.0 * math.Pi ) )
    m5 := float32( 2.0 * math.Cos( 3.0 / 16.0 * 2.0 * math.Pi ) )

    idctM1 = m1
    idctM2 = m0 - m5
    idctM3 = m1
    idctM4 = m0 + m5
    idctM5 = m5
}

// idctColumns runs the first (column) pass of the separable 2-D AAN inverse
// DCT over block, writing float intermediate results back into out.
func idctColumns( block *[64]int32, out *[64]float32 ) {
    for i := 0; i < 8; i ++ {
        g0 := float32( block[ 0 * 8 + i ] ) * idctS0
        g1 := float32( block[ 4 * 8 + i ] ) * idctS4
        g2 := float32( block[ 2 * 8 + i ] ) * idctS2
        g3 := float32( block[ 6 * 8 + i ] ) * idctS6
        g4 := float32( block[ 5 * 8 + i ] ) * idctS5
        g5 := float32( block[ 1 * 8 + i ] ) * idctS1
        g6 := float32( block[ 7 * 8 + i ] ) * idctS7
        g7 := float32( block[ 3 * 8 + i ] ) * idctS3

        f0, f1, f2, f3 := g0, g1, g2, g3
        f4 := g4 - g7
        f5 := g5 + g6
        f6 := g5 - g6
        f7 := g4 + g7

        e0, e1 := f0, f1
        e2 := f2 - f3
        e3 := f2 + f3
        e4 := f4
        e5 := f5 - f7
        e6 := f6
        e7 := f5 + f7
        e8 := f4 + f6

        d0, d1 := e0, e1
        d2 := e2 * idctM1
        d3 := e3
        d4 := e4 * idctM2
        d5 := e5 * idctM3
        d6 := e6 * idctM4
        d7 := e7
        d8 := e8 * idctM5

        c0 := d0 + d1
        c1 := d0 - d1
        c2 := d2 - d3
        c3 := d3
        c4 := d4 + d8
        c5 := d5 + d7
        c6 := d6 - d8
        c7 := d7
        c8 := c5 - c6

        b0 := c0 + c3
        b1 := c1 + c2
        b2 := c1 - c2
        b3 := c0 - c3
        b4 := c4 - c8
        b5 := c8
        b6 := c6 - c7
        b7 := c7

        out[ 0 * 8 + i ] = b0 + b7
        out[ 1 * 8 + i ] = b1 + b6
        out[ 2 * 8 + i ] = b2 + b5
        out[ 3 * 8 + i ] = b3 + b4
        out[ 4 * 8 + i ] = b3 - b4
        out[ 5 * 8 + i ] = b2 - b5
        out[ 6 * 8 + i ] = b1 - b6
        out[ 7 * 8 + i ] = b0 - b7
    }
}

// idctRows runs the second (row) pass, reading the column-pass intermediate
// results and writing the final spatial-domain samples back into block,
// rounded (with a +0.5 bias) and truncated to int.
func idctRows( mid *[64]float32, block *[64]int32 ) {
    for i := 0; i < 8; i ++ {
        row := i * 8
        g0 := mid[ row + 0 ] * idctS0
        g1 := mid[ row + 4 ] * idctS4
        g2 := mid[ row + 2 ] * idctS2
        g3 := mid[ row + 6 ] * idctS6
        g4 := mid[ row + 5 ] * idctS5
        g5 := mid[ row + 1 ] * idctS1
        g6 := mid[ row + 7 ] * idctS7
        g7 := mid[ row + 3 ] * idctS3

        f0, f1, f2, f3 := g0, g1, g2, g3
        f4 := g4 - g7
        f5 := g5 + g6
        f6 := g5 - g6
        f7 := g4 + g7

        e0, e1 := f0, f1
        e2 := f2 - f3
        e3 := f2 + f3
        e4 := f4
        e5 := f5 - f7
        e6 := f6
        e7 := f5 + f7
        e8 := f4 + f6

        d0, d1 := e0, e1
        d2 := e2 * idctM1
        d3 := e3
        d4 := e4 * idctM2
        d5 := e5 * idctM3
        d6 := e6 * idctM4
        d7 := e7
        d8 := e8 * idctM5

        c0 := d0 + d1
        c1 := d0 - d1
        c2 := d2 - d3
        c3 := d3
        c4 := d4 + d8
        c5 := d5 + d7
        c6 := d6 - d8
        c7 := d7
        c8 := c5 - c6

        b0 := c0 + c3
        b1 := c1 + c2
        b2 := c1 - c2
        b3 := c0 - c3
        b4 := c4 - c8
        b5 := c8
        b6 := c6 - c7
        b7 := c7

        block[ row + 0 ] = int32( b0 + b7 + 0.5 )
        block[ row + 1 ] = int32( b1 + b6 + 0.5 )
        block[ row + 2 ] = int32( b2 + b5 + 0.5 )
        block[ row + 3 ] = int32( b3 + b4 + 0.5 )
        block[ row + 4 ] = int32( b3 - b4 + 0.5 )
        block[ row + 5 ] = int32( b2 - b5 + 0.5 )
        block[ row + 6 ] = int32( b1 - b6 + 0.5 )
        block[ row + 7 ] = int32( b0 - b7 + 0.5 )
    }
}

// inverseDCT performs the 2-D separable AAN inverse DCT on block in place.
// Output samples are centered around 0 (roughly [-128,127]); colorConvert
// adds the +128 bias. Grounded on the original mxgui inverseDCTComponent.
func inverseDCT( block *[64]int32 ) {
    var mid [64]float32
    idctColumns( block, &mid )
    idctRows( &mid, block )
}
