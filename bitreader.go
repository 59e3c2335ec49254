package jpeg

// A bitReader walks a byte slice MSB-first, one bit at a time. It has no
// notion of markers or byte-stuffing — that has already been removed by the
// segment parser before the bytes reach here.
type bitReader struct {
    data     []byte
    nextByte int
    nextBit  int
}

// newBitReader binds a reader to data without copying it.
func newBitReader( data []byte ) *bitReader {
    return &bitReader{ data: data }
}

// setData rebinds the reader to a new (or the same) backing slice and resets
// the cursor, mirroring the original BitReader::setData + implicit rewind.
func (b *bitReader) setData( data []byte ) {
    b.data = data
    b.nextByte = 0
    b.nextBit = 0
}

// readBit returns 0 or 1, or -1 once the backing slice is exhausted.
func (b *bitReader) readBit( ) int {
    if b.data == nil || b.nextByte >= len( b.data ) {
        return -1
    }
    bit := int( (b.data[ b.nextByte ] >> ( 7 - b.nextBit )) & 1 )
    b.nextBit ++
    if b.nextBit == 8 {
        b.nextBit = 0
        b.nextByte ++
    }
    return bit
}

// readBits concatenates n bits MSB-first into an int, or returns -1 if the
// stream runs out before n bits have been read.
func (b *bitReader) readBits( n uint ) int {
    v := 0
    for i := uint(0); i < n; i ++ {
        bit := b.readBit( )
        if bit == -1 {
            return -1
        }
        v = ( v << 1 ) | bit
    }
    return v
}

// align advances to the start of the next byte if the cursor is not already
// byte-aligned. A no-op at end of stream.
func (b *bitReader) align( ) {
    if b.data == nil || b.nextByte >= len( b.data ) {
        return
    }
    if b.nextBit != 0 {
        b.nextBit = 0
        b.nextByte ++
    }
}

// reset rewinds the cursor to the start of the currently bound data.
func (b *bitReader) reset( ) {
    b.nextByte = 0
    b.nextBit = 0
}

// exhausted reports whether every bit of the bound data has been read, i.e.
// no bits remain. A reader with no bound data is always exhausted.
func (b *bitReader) exhausted( ) bool {
    if b.data == nil {
        return true
    }
    remaining := ( len( b.data ) - b.nextByte ) * 8 - b.nextBit
    return remaining <= 0
}
