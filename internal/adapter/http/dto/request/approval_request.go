package request

type ServiceActionRequest struct {
	ServiceLineID string `json:"service_line_id" binding:"required"`
	Action        string `json:"action" binding:"required"`
}

type NewServiceLineRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

type ApprovalDecisionRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Note    string `json:"note"`
}
