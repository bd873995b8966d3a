package component

// ReloadRequest is a marker the game loop looks for between ticks. Any system
// may create a short-lived entity with it to rebuild the world from prefabs.
type ReloadRequest struct {
	Reason string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
