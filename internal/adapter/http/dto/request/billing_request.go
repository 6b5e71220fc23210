package request

import "time"

type PaymentCreateRequest struct {
	Amount    float64    `json:"amount" binding:"required"`
	Method    string     `json:"method" binding:"required"`
	Reference string     `json:"reference"`
	PaidAt    *time.Time `json:"paid_at"`
}

func (r PaymentCreateRequest) ResolvePaidAt() time.Time {
	if r.PaidAt == nil {
		return time.Time{}
	}
	return *r.PaidAt
}

type PaymentAdjustRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// DiscountRequest carries an explicit discount. Zero is a valid value, hence
// the pointer.
type DiscountRequest struct {
	Discount *float64 `json:"discount" binding:"required"`
}

type RefundRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}
