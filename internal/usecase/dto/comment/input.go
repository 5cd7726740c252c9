package commentdto

type CreateCommentInput struct {
	RefType  string `json:"refType"`
	RefID    string `json:"refId"`
	Body     string `json:"body" validate:"min=4"`
	UserID   string `json:"-"`
	ClientIP string `json:"-"`
}

type ModerateCommentInput struct {
	CommentID string `json:"-" validate:"required"`
	Status    string `json:"status" validate:"oneof=PENDING APPROVED REJECTED"`
}
