package engine

import "github.com/daystram/checkers/board"

const noNode = -1

// searchNode is one decision point of the side searching for its turn.
// next links to the decision point continuing the same capture chain.
type searchNode struct {
	mv      board.Move
	hasMove bool
	next    int
}

// searchTree is an append-only arena of decision points, one tree per candidate first move,
// all referenced by index. Node 0 is the root.
type searchTree struct {
	nodes []searchNode
}

func (t *searchTree) reset() {
	t.nodes = t.nodes[:0]
}

func (t *searchTree) push() int {
	t.nodes = append(t.nodes, searchNode{next: noNode})
	return len(t.nodes) - 1
}

func (t *searchTree) len() int {
	return len(t.nodes)
}

func (t *searchTree) set(id int, mv board.Move, next int) {
	t.nodes[id] = searchNode{mv: mv, hasMove: true, next: next}
}

func (t *searchTree) hasMove(id int) bool {
	return t.nodes[id].hasMove
}

// chain follows the successor links from the root.
func (t *searchTree) chain() board.Chain {
	var chain board.Chain
	for id := 0; id != noNode && id < len(t.nodes) && t.nodes[id].hasMove; id = t.nodes[id].next {
		chain = append(chain, t.nodes[id].mv)
	}
	return chain
}
