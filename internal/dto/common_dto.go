package dto

// IDUri binds a numeric path parameter.
type IDUri struct {
	ID uint `uri:"id" binding:"required"`
}

// CountByLabel is the row shape of every aggregation result
// (events per month, members per group).
type CountByLabel struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}
