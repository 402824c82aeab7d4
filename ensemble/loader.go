package ensemble

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shibu778/iisc-ml-school/pkg/errors"
)

// jsonModel is the top-level structure of an exported tree-ensemble model.
type jsonModel struct {
	Name        string     `json:"name"`
	NumFeatures int        `json:"num_features"`
	InitScore   float64    `json:"init_score"`
	Trees       []jsonTree `json:"trees"`
}

// jsonTree holds one tree of the ensemble.
type jsonTree struct {
	Shrinkage     float64      `json:"shrinkage"`
	TreeStructure jsonTreeNode `json:"tree_structure"`
}

// jsonTreeNode is a recursively nested node. Internal nodes carry split
// fields and both children; leaves carry only leaf_value.
type jsonTreeNode struct {
	SplitFeature int           `json:"split_feature,omitempty"`
	Threshold    float64       `json:"threshold,omitempty"`
	DefaultLeft  bool          `json:"default_left,omitempty"`
	LeftChild    *jsonTreeNode `json:"left_child,omitempty"`
	RightChild   *jsonTreeNode `json:"right_child,omitempty"`

	LeafValue float64 `json:"leaf_value,omitempty"`
}

func (n *jsonTreeNode) isLeaf() bool {
	return n.LeftChild == nil && n.RightChild == nil
}

// LoadGradientBoostingRegressor loads an exported ensemble model from a
// JSON file.
func LoadGradientBoostingRegressor(filePath string) (*GradientBoostingRegressor, error) {
	cleanPath := filepath.Clean(filePath)
	if strings.Contains(cleanPath, "..") {
		return nil, errors.Newf("path traversal detected in file path: %s", filePath)
	}

	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open model file")
	}
	defer f.Close()

	return LoadGradientBoostingRegressorFromReader(f)
}

// LoadGradientBoostingRegressorFromReader loads an exported ensemble model
// from JSON data.
func LoadGradientBoostingRegressorFromReader(r io.Reader) (*GradientBoostingRegressor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read model data")
	}

	var jm jsonModel
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, errors.Wrap(err, "failed to parse model JSON")
	}

	if jm.NumFeatures < 1 {
		return nil, errors.NewValidationError("num_features", "must be >= 1", jm.NumFeatures)
	}
	if len(jm.Trees) == 0 {
		return nil, errors.NewValidationError("trees", "model has no trees", 0)
	}

	trees := make([]Tree, 0, len(jm.Trees))
	for i := range jm.Trees {
		tree, err := convertJSONTree(&jm.Trees[i])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to convert tree %d", i)
		}
		trees = append(trees, tree)
	}

	return NewGradientBoostingRegressor(trees, jm.InitScore, jm.NumFeatures), nil
}

// LoadDecisionTreeRegressor loads a single-tree model from a JSON file.
// The file uses the same format as the ensemble; only the first tree is
// taken and its shrinkage is ignored.
func LoadDecisionTreeRegressor(filePath string) (*DecisionTreeRegressor, error) {
	gbr, err := LoadGradientBoostingRegressor(filePath)
	if err != nil {
		return nil, err
	}

	tree := gbr.Trees[0]
	tree.Shrinkage = 0
	return NewDecisionTreeRegressor(tree, gbr.NumFeatures), nil
}

// convertJSONTree flattens the nested JSON node structure into the
// index-linked Node slice the predictor traverses.
func convertJSONTree(jt *jsonTree) (Tree, error) {
	tree := Tree{Shrinkage: jt.Shrinkage}

	var flatten func(n *jsonTreeNode) (int, error)
	flatten = func(n *jsonTreeNode) (int, error) {
		idx := len(tree.Nodes)
		tree.Nodes = append(tree.Nodes, Node{LeftChild: -1, RightChild: -1})

		if n.isLeaf() {
			tree.Nodes[idx].NodeType = LeafNode
			tree.Nodes[idx].LeafValue = n.LeafValue
			return idx, nil
		}

		if n.LeftChild == nil || n.RightChild == nil {
			return 0, errors.Newf("internal node has a missing child")
		}

		tree.Nodes[idx].NodeType = NumericalNode
		tree.Nodes[idx].SplitFeature = n.SplitFeature
		tree.Nodes[idx].Threshold = n.Threshold
		tree.Nodes[idx].DefaultLeft = n.DefaultLeft

		left, err := flatten(n.LeftChild)
		if err != nil {
			return 0, err
		}
		right, err := flatten(n.RightChild)
		if err != nil {
			return 0, err
		}

		tree.Nodes[idx].LeftChild = left
		tree.Nodes[idx].RightChild = right
		return idx, nil
	}

	if _, err := flatten(&jt.TreeStructure); err != nil {
		return Tree{}, err
	}
	return tree, nil
}
