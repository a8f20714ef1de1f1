package request_models

type CreateReviewRequest struct {
	Author  string `json:"author"`
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}
