package dice

// Roller is the dice source for scoring. Results are sorted ascending.
type Roller interface {
	// Roll rolls count dice with the given number of sides
	Roll(count, sides int) ([]int, error)

	// Reroll replaces the dice at indices with fresh rolls and returns the
	// new, sorted hand. The input is not modified.
	Reroll(dice []int, indices []int, sides int) ([]int, error)
}
