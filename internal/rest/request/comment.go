package request

type Comment struct {
	Text string `json:"text" binding:"required"`
}
