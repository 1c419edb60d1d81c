package game

// Observer is told when the controller changed something worth redrawing.
// It carries no data; observers read what they need through the getters.
type Observer interface {
	ControllerUpdated()
}
