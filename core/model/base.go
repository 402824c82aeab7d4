package model

// EstimatorState は推定器の学習状態
type EstimatorState int

const (
	// NotFitted は未学習（Fit 前）の状態
	NotFitted EstimatorState = iota
	// Fitted は学習済みの状態
	Fitted
)

// String は状態名を返す
func (s EstimatorState) String() string {
	switch s {
	case Fitted:
		return "fitted"
	default:
		return "not fitted"
	}
}

// BaseEstimator は学習状態の管理を提供する埋め込み用の基底構造体。
// ゼロ値は未学習状態として扱える。
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted は Fit が完了しているかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は推定器を学習済み状態にする。Fit の成功時にのみ呼ぶこと。
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset は推定器を未学習状態に戻す
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
