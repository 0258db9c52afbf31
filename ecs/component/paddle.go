package component

type Paddle struct {
	Width  float64
	Height float64
	Speed  float64
}

var PaddleComponent = NewComponent[Paddle]()
