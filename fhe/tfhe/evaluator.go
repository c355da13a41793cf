package tfhe

import (
	"errors"
	"sync/atomic"

	tfhego "github.com/sp301415/tfhe-go/tfhe"
)

// ErrNoEvaluationKey is returned by gates that need a bootstrap on an
// evaluator built without evaluation key
var ErrNoEvaluationKey = errors.New("tfhe: evaluator has no evaluation key")

// Evaluator evaluates boolean gates by bootstrapping. It is not safe for
// concurrent use, ShallowCopy returns an evaluator for another goroutine.
type Evaluator struct {
	params     Parameters
	be         *tfhego.BinaryEvaluator
	bootstraps *atomic.Uint64
}

// NewEvaluator returns an evaluator for params. With a nil evk only NOT and the
// gates folded against public bits can be evaluated.
func NewEvaluator(params Parameters, evk *EvaluationKey) *Evaluator {
	eval := &Evaluator{
		params:     params,
		bootstraps: new(atomic.Uint64),
	}
	if evk != nil {
		eval.be = tfhego.NewBinaryEvaluator(params.params, evk.evk)
	}
	return eval
}

func (eval *Evaluator) shallowCopy() *Evaluator {
	cp := &Evaluator{
		params:     eval.params,
		bootstraps: eval.bootstraps,
	}
	if eval.be != nil {
		cp.be = eval.be.ShallowCopy()
	}
	return cp
}

// Bootstraps returns the number of bootstrapped gates issued by the evaluator
// and its copies
func (eval *Evaluator) Bootstraps() uint64 {
	return eval.bootstraps.Load()
}

func (eval *Evaluator) bootstrap(gate func(be *tfhego.BinaryEvaluator) lwe) (Bit, error) {
	if eval.be == nil {
		return Bit{}, ErrNoEvaluationKey
	}
	eval.bootstraps.Add(1)
	return Bit{ct: gate(eval.be)}, nil
}

// NOT negates the sample, no bootstrap
func (eval *Evaluator) NOT(a Bit) Bit {
	if a.IsPublic() {
		return Constant(!a.value)
	}
	out := lwe{Value: make([]uint32, len(a.ct.Value))}
	for i := range out.Value {
		out.Value[i] = -a.ct.Value[i]
	}
	return Bit{ct: out}
}

func (eval *Evaluator) AND(a, b Bit) (Bit, error) {
	if a.IsPublic() {
		a, b = b, a
	}
	if b.IsPublic() {
		if !b.value {
			return Constant(false), nil
		}
		return a, nil
	}
	return eval.bootstrap(func(be *tfhego.BinaryEvaluator) lwe {
		return be.AND(a.ct, b.ct)
	})
}

func (eval *Evaluator) OR(a, b Bit) (Bit, error) {
	if a.IsPublic() {
		a, b = b, a
	}
	if b.IsPublic() {
		if b.value {
			return Constant(true), nil
		}
		return a, nil
	}
	return eval.bootstrap(func(be *tfhego.BinaryEvaluator) lwe {
		return be.OR(a.ct, b.ct)
	})
}

func (eval *Evaluator) XOR(a, b Bit) (Bit, error) {
	if a.IsPublic() {
		a, b = b, a
	}
	if b.IsPublic() {
		if b.value {
			return eval.NOT(a), nil
		}
		return a, nil
	}
	return eval.bootstrap(func(be *tfhego.BinaryEvaluator) lwe {
		return be.XOR(a.ct, b.ct)
	})
}

func (eval *Evaluator) XNOR(a, b Bit) (Bit, error) {
	if a.IsPublic() || b.IsPublic() {
		x, err := eval.XOR(a, b)
		if err != nil {
			return Bit{}, err
		}
		return eval.NOT(x), nil
	}
	return eval.bootstrap(func(be *tfhego.BinaryEvaluator) lwe {
		return be.XNOR(a.ct, b.ct)
	})
}

// MUX returns a if s holds true, b otherwise
func (eval *Evaluator) MUX(s, a, b Bit) (Bit, error) {
	switch {
	case s.IsPublic():
		if s.value {
			return a, nil
		}
		return b, nil
	case a.IsPublic() && b.IsPublic():
		switch {
		case a.value == b.value:
			return a, nil
		case a.value:
			return s, nil
		default:
			return eval.NOT(s), nil
		}
	case a.IsPublic():
		if a.value {
			return eval.OR(s, b)
		}
		return eval.AND(eval.NOT(s), b)
	case b.IsPublic():
		if b.value {
			return eval.OR(eval.NOT(s), a)
		}
		return eval.AND(s, a)
	}
	sa, err := eval.AND(s, a)
	if err != nil {
		return Bit{}, err
	}
	nsb, err := eval.AND(eval.NOT(s), b)
	if err != nil {
		return Bit{}, err
	}
	return eval.OR(sa, nsb)
}
