package jpeg

// componentY, componentCb, componentCr name the three mcu planes while they
// hold luma/chroma samples; componentR, componentG, componentB name the same
// storage once colorConvert has overwritten it in place. Both sets index the
// same three slots — see mcu below.
const (
    componentY  = 0
    componentCb = 1
    componentCr = 2

    componentR = 0
    componentG = 1
    componentB = 2
)

// mcu holds one minimum-coded-unit's three 8x8 blocks, in natural (row-
// major, not zig-zag) order: a plain, semantically-renamed 3x64 buffer
// rather than a C union of aliased arrays. The same plane is read as YCbCr
// before colorConvert and as RGB after, so callers must track which phase a
// given mcu value is in (entropy decode / dequantize / IDCT all operate in
// the YCbCr phase; colorConvert transitions it to the RGB phase in place).
type mcu [3][64]int32

// block returns the plane for the given component index (0,1,2), valid in
// either phase.
func (m *mcu) block( component int ) *[64]int32 {
    return &m[ component ]
}
