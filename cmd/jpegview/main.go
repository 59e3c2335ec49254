// Command jpegview decodes a baseline JPEG file scanline by scanline and
// writes it out as a binary PPM (P6), for visual inspection of the decoder
// without pulling in a GUI toolkit.
package main

import (
    "bufio"
    "flag"
    "fmt"
    "os"

    "github.com/mxgui-embedded/jpeg"
)

func main( ) {
    var in string
    var out string
    var verbose bool
    flag.StringVar( &in, "i", "", "Input JPEG file path" )
    flag.StringVar( &out, "o", "", "Output PPM file path" )
    flag.BoolVar( &verbose, "v", false, "Trace header parse failures to stdout" )
    flag.Parse( )

    if in == "" || out == "" {
        fmt.Fprintln( os.Stderr, "jpegview: -i and -o are both required" )
        os.Exit( 1 )
    }
    jpeg.Verbose = verbose

    img, err := jpeg.Open( in )
    if err != nil {
        fmt.Fprintf( os.Stderr, "jpegview: cannot open %s: %v\n", in, err )
        os.Exit( 1 )
    }
    defer img.Close( )

    width, height := img.Width( ), img.Height( )
    fmt.Printf( "jpegview: %s is %dx%d, orientation %d\n", in, width, height, img.Orientation( ) )
    if comment := img.Comment( ); comment != "" {
        fmt.Printf( "jpegview: comment: %s\n", comment )
    }

    outFile, err := os.Create( out )
    if err != nil {
        fmt.Fprintf( os.Stderr, "jpegview: cannot create %s: %v\n", out, err )
        os.Exit( 1 )
    }
    defer outFile.Close( )

    w := bufio.NewWriter( outFile )
    fmt.Fprintf( w, "P6\n%d %d\n255\n", width, height )

    row := make( []uint16, width )
    pixel := make( []byte, 3 )
    for y := 0; y < height; y ++ {
        if err := img.GetScanLine( 0, y, row ); err != nil {
            fmt.Fprintf( os.Stderr, "jpegview: row %d: %v\n", y, err )
            os.Exit( 1 )
        }
        for x := 0; x < width; x ++ {
            unpackRGB565( row[ x ], pixel )
            w.Write( pixel )
        }
    }
    if err := w.Flush( ); err != nil {
        fmt.Fprintf( os.Stderr, "jpegview: cannot write %s: %v\n", out, err )
        os.Exit( 1 )
    }
}

// unpackRGB565 expands a packed RGB565 sample into 8-bit RGB, replicating
// the high bits into the low bits of each channel so full black and full
// white map exactly to 0x00 and 0xFF.
func unpackRGB565( v uint16, rgb []byte ) {
    r5 := byte( v >> 11 & 0x1F )
    g6 := byte( v >> 5 & 0x3F )
    b5 := byte( v & 0x1F )
    rgb[ 0 ] = ( r5 << 3 ) | ( r5 >> 2 )
    rgb[ 1 ] = ( g6 << 2 ) | ( g6 >> 4 )
    rgb[ 2 ] = ( b5 << 3 ) | ( b5 >> 2 )
}
