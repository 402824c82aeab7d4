package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Shibu778/iisc-ml-school/core/model"
	"github.com/Shibu778/iisc-ml-school/core/parallel"
	"github.com/Shibu778/iisc-ml-school/metrics"
	"github.com/Shibu778/iisc-ml-school/pkg/errors"
)

// predictParallelThreshold is the sample count below which prediction runs
// sequentially.
const predictParallelThreshold = 256

// GradientBoostingRegressor predicts with an additive ensemble of regression
// trees: init score plus the sum of every tree's shrunken output.
type GradientBoostingRegressor struct {
	model.BaseEstimator

	Trees       []Tree
	InitScore   float64
	NumFeatures int
}

// NewGradientBoostingRegressor builds a ready-to-predict regressor from
// loaded trees.
func NewGradientBoostingRegressor(trees []Tree, initScore float64, numFeatures int) *GradientBoostingRegressor {
	r := &GradientBoostingRegressor{
		Trees:       trees,
		InitScore:   initScore,
		NumFeatures: numFeatures,
	}
	r.SetFitted()
	return r
}

// NumTrees returns the ensemble size.
func (g *GradientBoostingRegressor) NumTrees() int {
	return len(g.Trees)
}

// PredictSingle returns the prediction for one sample.
func (g *GradientBoostingRegressor) PredictSingle(features []float64) float64 {
	pred := g.InitScore
	for i := range g.Trees {
		pred += g.Trees[i].Predict(features)
	}
	return pred
}

// Predict returns an n x 1 matrix of predictions for the rows of X.
func (g *GradientBoostingRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !g.IsFitted() {
		return nil, errors.NewNotFittedError("GradientBoostingRegressor", "Predict")
	}

	r, c := X.Dims()
	if c != g.NumFeatures {
		return nil, errors.NewDimensionError("GradientBoostingRegressor.Predict", g.NumFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)

	parallel.ParallelizeWithThreshold(r, predictParallelThreshold, func(start, end int) {
		features := make([]float64, c)
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				features[j] = X.At(i, j)
			}
			predictions.Set(i, 0, g.PredictSingle(features))
		}
	})

	return predictions, nil
}

// Score computes the coefficient of determination R² on (X, y).
func (g *GradientBoostingRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !g.IsFitted() {
		return 0, errors.NewNotFittedError("GradientBoostingRegressor", "Score")
	}

	yPred, err := g.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.R2ScoreMatrix(y, yPred)
}

// GetParams returns the ensemble's hyperparameters.
func (g *GradientBoostingRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_estimators": len(g.Trees),
		"init_score":   g.InitScore,
		"n_features":   g.NumFeatures,
	}
}

// DecisionTreeRegressor predicts with a single regression tree. It is a
// one-tree ensemble without init score, kept as its own type because the
// course treats the single tree as a model in its own right.
type DecisionTreeRegressor struct {
	model.BaseEstimator

	Tree        Tree
	NumFeatures int
}

// NewDecisionTreeRegressor builds a ready-to-predict regressor from a
// loaded tree.
func NewDecisionTreeRegressor(tree Tree, numFeatures int) *DecisionTreeRegressor {
	r := &DecisionTreeRegressor{
		Tree:        tree,
		NumFeatures: numFeatures,
	}
	r.SetFitted()
	return r
}

// Predict returns an n x 1 matrix of predictions for the rows of X.
func (d *DecisionTreeRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !d.IsFitted() {
		return nil, errors.NewNotFittedError("DecisionTreeRegressor", "Predict")
	}

	r, c := X.Dims()
	if c != d.NumFeatures {
		return nil, errors.NewDimensionError("DecisionTreeRegressor.Predict", d.NumFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	features := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			features[j] = X.At(i, j)
		}
		predictions.Set(i, 0, d.Tree.Predict(features))
	}

	return predictions, nil
}

// Score computes the coefficient of determination R² on (X, y).
func (d *DecisionTreeRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !d.IsFitted() {
		return 0, errors.NewNotFittedError("DecisionTreeRegressor", "Score")
	}

	yPred, err := d.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.R2ScoreMatrix(y, yPred)
}
