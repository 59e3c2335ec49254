package jpeg

import (
    "bytes"

    "github.com/jrm-1535/exif"
)

// exifSignature is the fixed 6-byte prefix that identifies an APP1 payload
// as EXIF data (as opposed to XMP or another APP1 use), per the Exif
// specification.
var exifSignature = []byte( "Exif\x00\x00" )

// defaultOrientation is the TIFF/EXIF orientation code meaning "no
// transform needed" (row 0 is top, column 0 is left).
const defaultOrientation uint16 = 1

const tiffOrientationTag = 0x112

// parseExifOrientation extracts the TIFF orientation tag (0x112) from an
// APP1 payload, returning defaultOrientation if the payload is not EXIF, is
// malformed, or carries no orientation tag. Grounded on
// exifApplication/setTiffOrientation in github.com/jrm-1535/jpeg, trimmed
// to the single tag this
// decoder exposes: the full IFD tree (thumbnails, GPS, maker notes) is out
// of scope for an embedded scanline decoder.
func parseExifOrientation( payload []byte ) uint16 {
    if len( payload ) <= len( exifSignature ) || ! bytes.Equal( payload[ :len( exifSignature ) ], exifSignature ) {
        return defaultOrientation
    }

    ctrl := exif.Control{ Unknown: exif.KeepTag, Warn: false }
    d, err := exif.Parse( payload, uint( len( exifSignature ) ), uint( len( payload ) - len( exifSignature ) ), &ctrl )
    if err != nil {
        return defaultOrientation
    }

    status, v, err := d.GetIfdTagValue( exif.PRIMARY, tiffOrientationTag )
    if err != nil || status != exif.U16Slice {
        return defaultOrientation
    }
    values, ok := v.( []uint16 )
    if ! ok || len( values ) != 1 {
        return defaultOrientation
    }

    code := values[ 0 ]
    if code < 1 || code > 8 {
        return defaultOrientation
    }
    return code
}
