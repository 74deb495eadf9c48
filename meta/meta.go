// meta/meta.go
package meta

// MIN_SIDES is the smallest board side length.
const MIN_SIDES = 1

// MAX_SIDES bounds the board to 36 cells so exhaustive search stays tractable.
const MAX_SIDES = 6

// MAX_BLOCKED_RATIO caps the share of pre-blocked cells in generated boards.
const MAX_BLOCKED_RATIO = 0.9
