// Package ensemble provides inference for decision-tree and gradient-boosted
// regression models trained elsewhere, typically in the Python sessions of
// the course and exported as JSON.
//
// Training is deliberately out of scope: split search and boosting loss
// optimization belong to the external library. This package loads a model
// and predicts, the same shape as serving-only decision forest ports.
//
//	reg, err := ensemble.LoadGradientBoostingRegressor("model.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pred, err := reg.Predict(X)
package ensemble
