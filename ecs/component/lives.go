package component

type Lives struct {
	Remaining int
}

var LivesComponent = NewComponent[Lives]()
