package appraisal

type CycleStatus string

const (
	CycleUpcoming CycleStatus = "UPCOMING"
	CycleActive   CycleStatus = "ACTIVE"
	CycleClosed   CycleStatus = "CLOSED"
)

type ReviewStatus string

const (
	ReviewDraft      ReviewStatus = "DRAFT"
	ReviewInProgress ReviewStatus = "IN_PROGRESS"
	ReviewCompleted  ReviewStatus = "COMPLETED"
)
