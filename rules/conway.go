package rules

/*
Apply applies Conway's Game of Life rules to determine the next state of a cell.

The full rule table (death by underpopulation, death by overpopulation,
survival, life by reproduction) collapses to a single expression:
(alive && neighbors == 2) || neighbors == 3
*/
func Apply(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
