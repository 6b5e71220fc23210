package entities

import "time"

// ExitPermit authorizes vehicle release. At most one per JobOrder; once
// created the order is permanently ineligible for a second permit.
//
// NextServiceDate is optional only when the order was cancelled.
type ExitPermit struct {
	PermitID          string     `json:"permit_id"`
	CollectedByName   string     `json:"collected_by_name"`
	CollectedByMobile string     `json:"collected_by_mobile,omitempty"`
	NextServiceDate   *time.Time `json:"next_service_date,omitempty"`
	IssuedBy          string     `json:"issued_by,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
