package request

import "time"

type ExitPermitRequest struct {
	CollectedByName   string     `json:"collected_by_name" binding:"required"`
	CollectedByMobile string     `json:"collected_by_mobile"`
	NextServiceDate   *time.Time `json:"next_service_date"`
}
