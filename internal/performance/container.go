package performance

type Container struct {
	Handler *Handler
}

func NewContainer(tasks TaskSource, hours HoursSource, goals GoalSource, ratings RatingSource) *Container {
	return &Container{Handler: NewHandler(NewService(tasks, hours, goals, ratings))}
}
