package jpeg

import (
    "fmt"
    "os"
)

// Image is the public decoder facade: open a baseline JPEG file, then pull
// RGB565 scanlines from it one row (or row fragment) at a time. Grounded on
// the original mxgui JpegImage's open/close/isOpen/getScanLine lifecycle,
// adapted to Go's explicit-error idiom in place of a silent isValid flag.
type Image struct {
    path string
    h    *header
    view *scanlineView
}

// Open parses path as a baseline JPEG and buffers its entropy-coded data.
// If the file cannot be read, Open returns a nil *Image and the read error.
// Otherwise it returns a non-nil *Image. When the file is not a decodable
// baseline JPEG (a malformed container or an unsupported feature), err is
// non-nil as well; IsOpen then reports false, and Width, Height and
// GetScanLine report failure rather than panicking. That error names the
// path only: it does not wrap ErrContainer or ErrUnsupported.
func Open( path string ) ( *Image, error ) {
    data, err := os.ReadFile( path )
    if err != nil {
        return nil, fmt.Errorf( "Open: %w", err )
    }

    h := parse( data )
    img := &Image{ path: path, h: h }
    if h.valid {
        img.view = newScanlineView( h )
    }
    if ! h.valid {
        return img, fmt.Errorf( "Open: %s is not a decodable baseline JPEG", path )
    }
    return img, nil
}

// Close releases the decoded state. Safe to call on an Image that was never
// successfully opened, or twice.
func (img *Image) Close( ) {
    img.h = nil
    img.view = nil
}

// IsOpen reports whether the image currently holds a valid, decodable
// header.
func (img *Image) IsOpen( ) bool {
    return img.h != nil && img.h.valid
}

// Width returns the image width in pixels, or 0 if the image is not open.
func (img *Image) Width( ) int {
    if ! img.IsOpen( ) {
        return 0
    }
    return img.h.width
}

// Height returns the image height in pixels, or 0 if the image is not open.
func (img *Image) Height( ) int {
    if ! img.IsOpen( ) {
        return 0
    }
    return img.h.height
}

// Orientation returns the TIFF/EXIF orientation code (1..8) found in the
// file's APP1 segment, or defaultOrientation if none was present or the
// image is not open.
func (img *Image) Orientation( ) uint16 {
    if ! img.IsOpen( ) {
        return defaultOrientation
    }
    return img.h.orientation
}

// Comment returns the last COM segment's text, or the empty string if none
// was present.
func (img *Image) Comment( ) string {
    if img.h == nil {
        return ""
    }
    return img.h.comment
}

// GetScanLine fills out with RGB565 samples from row y, starting at column
// x0. len(out) must not extend past the image width. Returns an error if
// the image is not open, the row or columns are out of range, or the
// entropy-coded data is malformed partway through decoding (in which case
// the image is marked invalid and further calls also fail).
func (img *Image) GetScanLine( x0, y int, out []uint16 ) error {
    if ! img.IsOpen( ) {
        return fmt.Errorf( "GetScanLine: image not open: %w", ErrContainer )
    }
    return img.view.getScanLine( x0, y, out )
}

// Reopen re-parses the same file from scratch, following the original's
// "copying an image means opening the same file afresh" semantics (there is
// no shared-state copy constructor in this decoder).
func (img *Image) Reopen( ) error {
    reopened, err := Open( img.path )
    if reopened == nil {
        img.Close( )
        return err
    }
    *img = *reopened
    return err
}
