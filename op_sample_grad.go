package gosample

import (
	"fmt"
	"hash"

	"github.com/chewxy/hm"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Sampling is a constant source of randomness with respect to the
// distribution parameters, so every input receives a zero gradient.

func (o *multiSampleOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	if err := CheckArity(o, len(inputs)); err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	nodes := make(G.Nodes, len(inputs))
	for i, input := range inputs {
		var err error
		nodes[i], err = G.ApplyOp(&sampleDiffOp{}, input)
		if err != nil {
			return nil, fmt.Errorf("symDiff: %v", err)
		}
	}

	return nodes, nil
}

func (o *multiSampleOp) DiffWRT(inputs int) []bool {
	if inputs != o.Arity() {
		panic(fmt.Sprintf("%v operator supports %d inputs, got %d instead",
			o.kind, o.Arity(), inputs))
	}

	diff := make([]bool, inputs)
	for i := range diff {
		diff[i] = true
	}
	return diff
}

// sampleDiffOp emits a zero tensor shaped like its input
type sampleDiffOp struct{}

func (s *sampleDiffOp) Arity() int { return 1 }

func (s *sampleDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a)
}

func (s *sampleDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	if err := CheckArity(s, len(inputs)); err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (s *sampleDiffOp) ReturnsPtr() bool { return false }

func (s *sampleDiffOp) CallsExtern() bool { return false }

func (s *sampleDiffOp) OverwritesInput() int { return -1 }

func (s *sampleDiffOp) String() string { return "SampleZeroGrad()" }

func (s *sampleDiffOp) WriteHash(h hash.Hash) { fmt.Fprint(h, s.String()) }

func (s *sampleDiffOp) Hashcode() uint32 { return SimpleHash(s) }

func (s *sampleDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := s.checkInputs(inputs...); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	in := inputs[0].(tensor.Tensor)

	return tensor.New(
		tensor.WithShape(in.Shape().Clone()...),
		tensor.Of(in.Dtype()),
	), nil
}

// checkInputs returns an error if the input to this Op is invalid
func (s *sampleDiffOp) checkInputs(inputs ...G.Value) error {
	if err := CheckArity(s, len(inputs)); err != nil {
		return err
	}

	t, ok := inputs[0].(tensor.Tensor)
	if !ok {
		return fmt.Errorf("expected input to be a tensor, got %T", inputs[0])
	} else if t == nil {
		return fmt.Errorf("cannot take the gradient of a nil tensor")
	}

	return nil
}
