package jpeg

// zigZag maps a zig-zag scan position (as produced by the entropy decoder,
// 0..63) to the natural row-major position in an 8x8 block. It is the same
// permutation as the original mxgui zigZagMap.
var zigZag = [64]int{
    0,  1,  8,  16, 9,  2,  3,  10,
    17, 24, 32, 25, 18, 11, 4,  5,
    12, 19, 26, 33, 40, 48, 41, 34,
    27, 20, 13, 6,  7,  14, 21, 28,
    35, 42, 49, 56, 57, 50, 43, 36,
    29, 22, 15, 23, 30, 37, 44, 51,
    58, 59, 52, 45, 38, 31, 39, 46,
    53, 60, 61, 54, 47, 55, 62, 63,
}

// quantTable holds the 64 coefficients of one quantization table, already
// reordered from zig-zag into natural (row-major) order at parse time.
type quantTable struct {
    values [64]uint16
    set    bool
}

// maxHuffmanSymbols is the largest number of symbols a single Huffman table
// may define: the 162 distinct baseline AC symbols (16 zero-run lengths
// times 10 coefficient sizes, plus EOB and ZRL).
const maxHuffmanSymbols = 162

// huffmanTable is a canonical Huffman codebook as produced by DHT: offset[L]
// is the prefix-sum count of symbols with code length <= L, symbols holds
// the decoded alphabet in code order, and codes holds the synthesized
// canonical code for each symbol (same indexing as symbols).
type huffmanTable struct {
    offset  [17]int
    symbols [maxHuffmanSymbols]byte
    codes   [maxHuffmanSymbols]uint16
    nSymbols int
    set     bool
}
