package metrics

import (
	"github.com/Shibu778/iisc-ml-school/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Accuracy は正解率を計算する
// ラベルはfloat64として格納されたクラス値で、完全一致で比較される
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	// 一致した数を数える
	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// ConfusionBinary は二値分類の混同行列（TP, FP, TN, FN）を計算する
// 正例ラベルはpositiveで指定する
func ConfusionBinary(yTrue, yPred *mat.VecDense, positive float64) (tp, fp, tn, fn int, err error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, 0, 0, 0, errors.NewValueError("ConfusionBinary", "empty vector")
	}

	if yPred.Len() != n {
		return 0, 0, 0, 0, errors.NewDimensionError("ConfusionBinary", n, yPred.Len(), 0)
	}

	for i := 0; i < n; i++ {
		truePos := yTrue.AtVec(i) == positive
		predPos := yPred.AtVec(i) == positive

		switch {
		case truePos && predPos:
			tp++
		case !truePos && predPos:
			fp++
		case !truePos && !predPos:
			tn++
		default:
			fn++
		}
	}

	return tp, fp, tn, fn, nil
}
