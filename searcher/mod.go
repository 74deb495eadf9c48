package searcher

import (
	"errors"

	"painters/game"
)

// ErrNoRetainedSuccessor signals a non-terminal state whose successors were all pruned.
var ErrNoRetainedSuccessor = errors.New("non-terminal state has no retained successor")

// better reports whether v improves on best for the player to move.
// A maximizes the score, B minimizes it.
func better(mover game.Player, v, best int) bool {
	if mover == game.PlayerA {
		return v > best
	}
	return v < best
}
