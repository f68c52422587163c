package pointio

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/kpfaulkner/quickhull-go/util"
)

// WritePoints writes the count followed by one "x y" line per point.
func WritePoints(w io.Writer, points []util.Point) error {
	bw := bufio.NewWriter(w)

	buf := make([]byte, 0, 32)
	buf = strconv.AppendInt(buf, int64(len(points)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	for _, p := range points {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(p.X), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(p.Y), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func WritePointsToFile(filename string, points []util.Point) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := WritePoints(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
