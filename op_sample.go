package gosample

import (
	"fmt"
	"hash"
	"runtime"
	"sync"

	"github.com/chewxy/hm"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gosample/sampler"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// multiSampleOp draws samples concurrently from a batch of
// distributions of a single family. Each element of the parameter
// tensors describes one distribution, and each distribution produces
// an extra-shaped block of draws in the output.
type multiSampleOp struct {
	kind     sampler.Kind
	dt       tensor.Dtype // parameter dtype
	outDt    tensor.Dtype
	shape    tensor.Shape // parameter shape
	outShape tensor.Shape
	extra    tensor.Shape
	resource sampler.Resource
}

func newMultiSampleOp(kind sampler.Kind, resource sampler.Resource,
	shape tensor.Shape, dt tensor.Dtype,
	extra ...int) (*multiSampleOp, error) {
	if resource == nil {
		return nil, fmt.Errorf("newMultiSampleOp: nil random resource")
	}

	shapes := make([]tensor.Shape, kind.Arity())
	dtypes := make([]tensor.Dtype, kind.Arity())
	for i := range shapes {
		shapes[i] = shape
		dtypes[i] = dt
	}

	outShape, outDt, err := Resolve(kind, shapes, dtypes, extra)
	if err != nil {
		return nil, errors.Wrap(err, "newMultiSampleOp")
	}

	return &multiSampleOp{
		kind:     kind,
		dt:       dt,
		outDt:    outDt,
		shape:    shape.Clone(),
		outShape: outShape,
		extra:    tensor.Shape(extra),
		resource: resource,
	}, nil
}

func (o *multiSampleOp) Arity() int { return o.kind.Arity() }

func (o *multiSampleOp) Type() hm.Type {
	in := G.TensorType{
		Dims: o.shape.Dims(),
		Of:   o.dt,
	}
	out := G.TensorType{
		Dims: o.outShape.Dims(),
		Of:   o.outDt,
	}

	if o.Arity() == 1 {
		return hm.NewFnType(in, out)
	}
	return hm.NewFnType(in, in, out)
}

func (o *multiSampleOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	if err := CheckArity(o, len(inputs)); err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	shape := inputs[0].(tensor.Shape).Clone()
	return append(shape, o.extra...), nil
}

func (o *multiSampleOp) ReturnsPtr() bool { return false }

func (o *multiSampleOp) CallsExtern() bool { return false }

func (o *multiSampleOp) OverwritesInput() int { return -1 }

func (o *multiSampleOp) String() string {
	return fmt.Sprintf("Sample%v{shape=%v}()", o.kind, o.extra)
}

func (o *multiSampleOp) WriteHash(h hash.Hash) { fmt.Fprint(h, o.String()) }

func (o *multiSampleOp) Hashcode() uint32 { return SimpleHash(o) }

func (o *multiSampleOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := o.checkInputs(inputs...); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	// The resource advances once per invocation; every lane's seed is
	// derived from this single base.
	base, err := o.resource.Base()
	if err != nil {
		return nil, errors.Wrap(err, "do: could not acquire seed material")
	}

	p1, err := paramFloats(inputs[0].(tensor.Tensor))
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}
	var p2 []float64
	if o.Arity() == 2 {
		if p2, err = paramFloats(inputs[1].(tensor.Tensor)); err != nil {
			return nil, fmt.Errorf("do: %v", err)
		}
	}

	n := len(p1)
	m := 1
	if len(o.extra) > 0 {
		m = tensor.ProdInts([]int(o.extra))
	}

	switch o.outDt {
	case tensor.Float64:
		backing := make([]float64, n*m)
		o.sampleLanes(base, p1, p2, m, func(idx int, v float64) {
			backing[idx] = v
		})
		return tensor.New(
			tensor.WithShape(o.outShape.Clone()...),
			tensor.WithBacking(backing),
		), nil

	case tensor.Float32:
		backing := make([]float32, n*m)
		o.sampleLanes(base, p1, p2, m, func(idx int, v float64) {
			backing[idx] = float32(v)
		})
		return tensor.New(
			tensor.WithShape(o.outShape.Clone()...),
			tensor.WithBacking(backing),
		), nil

	case tensor.Int:
		backing := make([]int, n*m)
		o.sampleLanes(base, p1, p2, m, func(idx int, v float64) {
			backing[idx] = int(v)
		})
		return tensor.New(
			tensor.WithShape(o.outShape.Clone()...),
			tensor.WithBacking(backing),
		), nil

	default:
		return nil, fmt.Errorf("do: cannot sample to dtype %v", o.outDt)
	}
}

// sampleLanes constructs one generator per lane and writes that
// lane's m draws through write at contiguous indices [lane*m,
// (lane+1)*m). Lanes are partitioned across workers; each lane's
// draws depend only on its parameters and derived seed, so the
// partitioning never changes the result.
func (o *multiSampleOp) sampleLanes(base uint64, p1, p2 []float64, m int,
	write func(idx int, v float64)) {
	n := len(p1)

	fill := func(start, end int) {
		for i := start; i < end; i++ {
			var second float64
			if p2 != nil {
				second = p2[i]
			}

			gen := o.laneGenerator(p1[i], second, sampler.LaneSeed(base, i))
			for j := 0; j < m; j++ {
				write(i*m+j, gen.Draw())
			}
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fill(0, n)
		return
	}

	per := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += per {
		end := start + per
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fill(start, end)
		}(start, end)
	}
	wg.Wait()
}

// laneGenerator constructs the generator for a single lane
func (o *multiSampleOp) laneGenerator(p1, p2 float64,
	seed uint64) sampler.Generator {
	if o.kind == sampler.Uniform && o.outDt == tensor.Int {
		return sampler.NewUniformInt(int64(p1), int64(p2), seed)
	}

	return sampler.New(o.kind, p1, p2, seed)
}

// checkInputs returns an error if the inputs to this Op are invalid
func (o *multiSampleOp) checkInputs(inputs ...G.Value) error {
	if err := CheckArity(o, len(inputs)); err != nil {
		return err
	}

	for i, input := range inputs {
		t, ok := input.(tensor.Tensor)
		if !ok {
			return fmt.Errorf("expected parameter %d to be a tensor, got %T",
				i, input)
		} else if t == nil {
			return fmt.Errorf("cannot sample from nil parameter %d", i)
		} else if t.Size() == 0 {
			return fmt.Errorf("cannot sample from empty parameter %d", i)
		} else if !t.Shape().Eq(o.shape) {
			return fmt.Errorf("expected parameter %d to have shape %v but "+
				"got %v", i, o.shape, t.Shape())
		} else if !t.Dtype().Eq(o.dt) {
			return fmt.Errorf("expected parameter %d to have dtype %v but "+
				"got %v", i, o.dt, t.Dtype())
		}
	}

	return nil
}

// paramFloats reads a parameter tensor's elements as float64
func paramFloats(t tensor.Tensor) ([]float64, error) {
	switch data := t.Data().(type) {
	case []float64:
		return data, nil

	case []float32:
		out := make([]float64, len(data))
		for i, v := range data {
			out[i] = float64(v)
		}
		return out, nil

	case []int:
		out := make([]float64, len(data))
		for i, v := range data {
			out[i] = float64(v)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("cannot read parameters of type %T", data)
	}
}
