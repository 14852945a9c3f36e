package classify

import "context"

// Prediction is the per-fragment output of an external heading model
type Prediction struct {
	// Label is one of "title", "section-title" or "other"
	Label string `json:"label"`

	// Order disambiguates heading levels; lower means higher in the
	// hierarchy
	Order int `json:"order"`

	// Confidence is the model confidence in [0, 1]
	Confidence float64 `json:"confidence"`
}

// Predictor is the capability interface for an external heading
// classifier. Implementations receive fragment texts in document order
// and must return exactly one prediction per text, in the same order.
//
// Model loading and lifecycle are the implementation's concern; the
// pipeline only consumes this interface.
type Predictor interface {
	Predict(ctx context.Context, texts []string) ([]Prediction, error)
}

// PredictorFunc adapts a function to the Predictor interface
type PredictorFunc func(ctx context.Context, texts []string) ([]Prediction, error)

// Predict calls the wrapped function
func (f PredictorFunc) Predict(ctx context.Context, texts []string) ([]Prediction, error) {
	return f(ctx, texts)
}
