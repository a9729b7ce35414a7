package Maths

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
)

const (
	// pad is the width given to each number. It's odd, so a number's left and right gaps are equal.
	pad = 7
	// stepWidth is how much each row is shifted left of the one below it.
	stepWidth = pad/2 + 1
)

type NegativeCountError struct {
	N int
}

func (e *NegativeCountError) Error() string {
	return fmt.Sprintf("count %d is negative", e.N)
}

// OverflowError is returned when C(Row, Col) doesn't fit in uint64. Rows up to 67 fit.
type OverflowError struct {
	Row, Col int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("C(%d, %d) overflows uint64", e.Row, e.Col)
}

// PascalRow returns row n of Pascal's triangle, C(n, 0) to C(n, n), each computed from the previous
// one as C(n, k) = C(n, k-1)*(n-k+1)/k.
func PascalRow(n int) ([]uint64, error) {
	if n < 0 {
		return nil, &NegativeCountError{n}
	}
	row := make([]uint64, n+1)
	row[0] = 1
	for k := 1; k <= n; k++ {
		hi, lo := bits.Mul64(row[k-1], uint64(n-k+1))
		if hi >= uint64(k) {
			return nil, &OverflowError{n, k}
		}
		row[k], _ = bits.Div64(hi, lo, uint64(k))
	}
	return row, nil
}

// PrintPascalTriangle writes the first num rows of Pascal's triangle to w, one row per line. Rows
// are indented and the numbers padded so that in a monospaced font they form a triangle, as long
// as no number has more than pad digits. num==0 writes nothing.
// If the last row overflows, the OverflowError is returned and nothing is written: every row's
// coefficients are bounded by the next row's, so checking the last row covers all of them.
func PrintPascalTriangle(w io.Writer, num int) error {
	if num < 0 {
		return &NegativeCountError{num}
	}
	if num > 0 {
		if _, err := PascalRow(num - 1); err != nil {
			return err
		}
	}
	bw := bufio.NewWriter(w)
	for n, spaces := 0, (num-1)*stepWidth; n < num; n, spaces = n+1, spaces-stepWidth {
		row, err := PascalRow(n)
		if err != nil {
			return err
		}
		bw.WriteString(strings.Repeat(" ", spaces))
		for _, c := range row {
			s := strconv.FormatUint(c, 10)
			bw.WriteString(s)
			if digits := len(s) - 1; digits < pad {
				bw.WriteString(strings.Repeat(" ", pad-digits))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
