package gosample

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gosample/sampler"
	"gorgonia.org/tensor"
)

var (
	// ErrShapeMismatch is returned when the parameter arrays of a
	// sampling operation disagree in shape or dtype
	ErrShapeMismatch = errors.New("parameter shapes or dtypes disagree")

	// ErrUnsupportedDtype is returned when a parameter array has a
	// dtype that cannot be sampled to
	ErrUnsupportedDtype = errors.New("unsupported dtype")
)

// Resolve infers the output shape and dtype of a sampling operation
// from the shapes and dtypes of its parameter arrays and the extra
// sample shape. It is a pure function of its arguments and may be
// called before any output storage exists.
//
// All parameter arrays must share one shape and one dtype, and the
// extra sample shape must not contain negative extents. The output
// shape is the parameter shape with extra appended. Continuous
// families keep the parameter dtype; count-valued families sample to
// a floating point dtype regardless of the parameter dtype.
func Resolve(kind sampler.Kind, shapes []tensor.Shape, dtypes []tensor.Dtype,
	extra tensor.Shape) (tensor.Shape, tensor.Dtype, error) {
	if len(shapes) == 0 || len(shapes) != len(dtypes) {
		return nil, tensor.Dtype{}, errors.Wrapf(ErrShapeMismatch,
			"got %d shapes and %d dtypes", len(shapes), len(dtypes))
	}

	for i := 1; i < len(shapes); i++ {
		if !shapes[i].Eq(shapes[0]) {
			return nil, tensor.Dtype{}, errors.Wrapf(ErrShapeMismatch,
				"parameter %d has shape %v but parameter 0 has shape %v",
				i, shapes[i], shapes[0])
		}
		if dtypes[i] != dtypes[0] {
			return nil, tensor.Dtype{}, errors.Wrapf(ErrShapeMismatch,
				"parameter %d has dtype %v but parameter 0 has dtype %v",
				i, dtypes[i], dtypes[0])
		}
	}

	for _, d := range extra {
		if d < 0 {
			return nil, tensor.Dtype{}, errors.Wrapf(ErrShapeMismatch,
				"extra sample shape %v has negative extent %d", extra, d)
		}
	}

	dt, err := outputDtype(kind, dtypes[0])
	if err != nil {
		return nil, tensor.Dtype{}, err
	}

	outShape := shapes[0].Clone()
	outShape = append(outShape, extra...)

	return outShape, dt, nil
}

// outputDtype resolves the element type the family samples to when
// parameterized by arrays of dtype dt
func outputDtype(kind sampler.Kind, dt tensor.Dtype) (tensor.Dtype, error) {
	switch dt {
	case tensor.Float64, tensor.Float32:
		return dt, nil

	case tensor.Int:
		if kind.Discrete() {
			// Counts must remain numerically exact, which integral
			// storage cannot guarantee across the family's support
			return tensor.Float64, nil
		}
		return dt, nil

	default:
		return tensor.Dtype{}, errors.Wrapf(ErrUnsupportedDtype,
			"cannot sample %v to dtype %v", kind, dt)
	}
}
