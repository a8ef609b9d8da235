// Package vecio writes value sequences to disk for offline analysis
// and plotting of precision experiments.
package vecio

import (
	"bufio"
	"encoding/csv"
	"os"
	"strconv"

	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"
)

// Error is the class of all vecio errors.
var Error = errs.Class("vecio")

// WriteColumn writes values to path, one per line, in the shortest
// decimal form that round-trips.
func WriteColumn(path string, values []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return Error.Wrap(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = Error.Wrap(cerr)
		}
	}()
	w := bufio.NewWriter(f)
	for _, v := range values {
		if _, err := w.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return Error.Wrap(err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return Error.Wrap(err)
		}
	}
	return Error.Wrap(w.Flush())
}

// WriteCSV writes named columns of equal length to path, header first.
func WriteCSV(path string, header []string, cols [][]float64) (err error) {
	if len(header) != len(cols) {
		return Error.New("have %d names for %d columns", len(header), len(cols))
	}
	if len(cols) == 0 {
		return Error.New("no columns")
	}
	n := len(cols[0])
	for i, c := range cols {
		if len(c) != n {
			return Error.New("column %q has %d values, want %d", header[i], len(c), n)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return Error.Wrap(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = Error.Wrap(cerr)
		}
	}()
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return Error.Wrap(err)
	}
	row := make([]string, len(cols))
	for i := 0; i < n; i++ {
		for j, c := range cols {
			row[j] = strconv.FormatFloat(c[i], 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return Error.Wrap(err)
		}
	}
	w.Flush()
	return Error.Wrap(w.Error())
}

// WriteAll writes every named sequence to its own file concurrently.
// The first failure wins; the remaining writes still run to completion.
func WriteAll(files map[string][]float64) error {
	var g errgroup.Group
	for path, values := range files {
		g.Go(func() error {
			return WriteColumn(path, values)
		})
	}
	return g.Wait()
}
