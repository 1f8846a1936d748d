package m

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func dot(m, n mat.Matrix) mat.Matrix {
	r, _ := m.Dims()
	_, c := n.Dims()
	o := mat.NewDense(r, c, nil)
	o.Product(m, n)
	return o
}

func apply(fn func(i, j int, v float64) float64, m mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Apply(fn, m)
	return o
}

func scale(s float64, m mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Scale(s, m)
	return o
}

func multiply(m, n mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.MulElem(m, n)
	return o
}

func add(m, n mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Add(m, n)
	return o
}

func subtract(m, n mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Sub(m, n)
	return o
}

// randomArray draws size independent values from dist.
func randomArray(size int, dist distuv.Uniform) []float64 {
	data := make([]float64, size)
	for i := 0; i < size; i++ {
		data[i] = dist.Rand()
	}
	return data
}

// rows copies m into a row-major [][]float64.
func rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	o := make([][]float64, r)
	for i := range o {
		o[i] = mat.Row(nil, i, m)
	}
	return o
}

// fromRows builds an r×c matrix, reporting ragged or mis-sized input.
func fromRows(what string, data [][]float64, r, c int) (*mat.Dense, error) {
	if len(data) != r {
		return nil, shapeError(what+" rows", r, len(data))
	}
	o := mat.NewDense(r, c, nil)
	for i, row := range data {
		if len(row) != c {
			return nil, shapeError(what+" columns", c, len(row))
		}
		o.SetRow(i, row)
	}
	return o, nil
}
