package calendar

type Container struct {
	Handler *Handler
}

func NewContainer(tasks TaskSource, cycles CycleSource, leave PTOSource) *Container {
	return &Container{Handler: NewHandler(NewService(tasks, cycles, leave))}
}
