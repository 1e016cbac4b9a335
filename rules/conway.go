package rules

/*
ApplyConwayRules returns the next state of a cell from its current state and
the number of live cells around it.

A dead cell with exactly three live neighbors is born. A live cell survives
with two or three live neighbors and dies otherwise.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
