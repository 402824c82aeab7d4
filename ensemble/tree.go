package ensemble

import "math"

// NodeType represents the type of a tree node
type NodeType int

const (
	// LeafNode represents a terminal node with a value
	LeafNode NodeType = iota
	// NumericalNode represents a node with a numerical split
	NumericalNode
)

// Node represents a single node in a decision tree
type Node struct {
	NodeType   NodeType
	LeftChild  int // Left child node index (-1 if leaf)
	RightChild int // Right child node index (-1 if leaf)

	// Split information (for non-leaf nodes)
	SplitFeature int     // Feature index used for splitting
	Threshold    float64 // Threshold value for numerical splits
	DefaultLeft  bool    // Default direction for missing values

	// Leaf information (for leaf nodes)
	LeafValue float64
}

// IsLeaf returns true if the node is a leaf node
func (n *Node) IsLeaf() bool {
	return n.NodeType == LeafNode
}

// Tree represents a single regression tree
type Tree struct {
	Nodes     []Node  // All nodes, root at index 0
	Shrinkage float64 // Learning rate applied to this tree's output
}

// Predict traverses the tree for a single sample and returns the shrunken
// leaf value. Samples route left when feature <= threshold; missing values
// (NaN) follow the node's default direction.
func (t *Tree) Predict(features []float64) float64 {
	if len(t.Nodes) == 0 {
		return 0.0
	}

	nodeIdx := 0
	for {
		if nodeIdx < 0 || nodeIdx >= len(t.Nodes) {
			return 0.0
		}

		node := &t.Nodes[nodeIdx]
		if node.IsLeaf() {
			if t.Shrinkage > 0 {
				return node.LeafValue * t.Shrinkage
			}
			return node.LeafValue
		}

		// Out-of-range feature indices are treated as missing.
		var featureValue float64
		if node.SplitFeature < len(features) {
			featureValue = features[node.SplitFeature]
		} else {
			featureValue = math.NaN()
		}

		if math.IsNaN(featureValue) {
			if node.DefaultLeft {
				nodeIdx = node.LeftChild
			} else {
				nodeIdx = node.RightChild
			}
			continue
		}

		if featureValue <= node.Threshold {
			nodeIdx = node.LeftChild
		} else {
			nodeIdx = node.RightChild
		}
	}
}

// NumLeaves returns the number of leaf nodes in the tree.
func (t *Tree) NumLeaves() int {
	n := 0
	for i := range t.Nodes {
		if t.Nodes[i].IsLeaf() {
			n++
		}
	}
	return n
}
