package component

type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewHandle[Transform]()
