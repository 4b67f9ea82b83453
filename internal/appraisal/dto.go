package appraisal

type SaveDraftDTO struct {
	SelfReview *string `json:"self_review" validate:"omitempty,max=10000"`
	Rating     *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

type AppraisalStats struct {
	Total              int     `json:"total"`
	Completed          int     `json:"completed"`
	Pending            int     `json:"pending"`
	AverageFinalRating float64 `json:"average_final_rating"`
}

// RatingSummary feeds performance metrics.
type RatingSummary struct {
	Average float64
	Latest  *float64
}
