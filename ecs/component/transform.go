package component

// Transform is the world-space position of an entity. For bodies it is the
// center of the collider.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
