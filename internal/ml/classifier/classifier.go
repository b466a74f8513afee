// Package classifier wraps the two pre-trained profile classifiers. Both
// share the same 3-feature input schema and are treated as opaque
// predict-to-code functions over their trained weights.
package classifier

import (
	"fintrack/internal/labels"
	"fintrack/internal/ml"
	"fintrack/pkg/errors"
)

// Features is the shared input schema of both classifiers
type Features struct {
	RiskCode         int
	HorizonCode      int
	InvestmentAmount float64
}

// Vector converts the features to the model input vector.
// Order must match the training script feature order.
func (f Features) Vector() []float64 {
	return []float64{
		float64(f.RiskCode),
		float64(f.HorizonCode),
		f.InvestmentAmount,
	}
}

// Pair holds the stock-category and mutual-fund-category classifiers
type Pair struct {
	stock *ml.ONNXModel
	fund  *ml.ONNXModel
}

// Load loads both classifier artifacts. The encoder supplies the trained
// class counts so each model's output shape can be validated. Fails fast
// with a ModelLoadError naming the broken artifact.
func Load(stockPath, fundPath string, enc *labels.Encoder) (*Pair, error) {
	stock, err := ml.LoadONNXModel(stockPath, enc.NumClasses(labels.FieldStock))
	if err != nil {
		return nil, err
	}

	fund, err := ml.LoadONNXModel(fundPath, enc.NumClasses(labels.FieldFund))
	if err != nil {
		stock.Destroy()
		return nil, err
	}

	return &Pair{stock: stock, fund: fund}, nil
}

// PredictStockCategory returns the predicted stock category code
func (p *Pair) PredictStockCategory(f Features) (int, error) {
	code, _, err := p.stock.Predict(f.Vector())
	if err != nil {
		return 0, &errors.PredictionError{Model: "stock", Err: err}
	}
	return code, nil
}

// PredictFundCategory returns the predicted mutual fund category code
func (p *Pair) PredictFundCategory(f Features) (int, error) {
	code, _, err := p.fund.Predict(f.Vector())
	if err != nil {
		return 0, &errors.PredictionError{Model: "mf", Err: err}
	}
	return code, nil
}

// Loaded reports whether both model sessions are available
func (p *Pair) Loaded() bool {
	return p != nil && p.stock != nil && p.fund != nil
}

// Close releases both model sessions
func (p *Pair) Close() {
	if p.stock != nil {
		p.stock.Destroy()
		p.stock = nil
	}
	if p.fund != nil {
		p.fund.Destroy()
		p.fund = nil
	}
}
