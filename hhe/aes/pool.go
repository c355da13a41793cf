package aes

import (
	"FHEAES/fhe"
)

// workers lends evaluators to independent tasks. Every evaluator is held by
// at most one task at a time.
type workers[B, C any] struct {
	evals chan fhe.Evaluator[B, C]
	size  int
}

func newWorkers[B, C any](eval fhe.Evaluator[B, C], n int) *workers[B, C] {
	if n < 1 {
		n = 1
	}
	w := &workers[B, C]{
		evals: make(chan fhe.Evaluator[B, C], n),
		size:  n,
	}
	w.evals <- eval
	for i := 1; i < n; i++ {
		w.evals <- eval.ShallowCopy()
	}
	return w
}

// run calls task for every i in [0, n) and waits for all of them. It returns
// the first error met, tasks already started still run to completion.
func (w *workers[B, C]) run(n int, task func(i int, eval fhe.Evaluator[B, C]) error) error {
	if w.size == 1 || n == 1 {
		eval := <-w.evals
		defer func() { w.evals <- eval }()
		for i := 0; i < n; i++ {
			if err := task(i, eval); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			eval := <-w.evals
			defer func() { w.evals <- eval }()
			errs <- task(i, eval)
		}(i)
	}
	var first error
	for i := 0; i < n; i++ {
		if err := <-errs; err != nil && first == nil {
			first = err
		}
	}
	return first
}
