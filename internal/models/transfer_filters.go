package models

import "time"

// TransferFilters contains filter criteria for transfer queries
type TransferFilters struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}
