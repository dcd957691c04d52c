package kea

import (
	"decanter/internal/core/migrate"
	"decanter/internal/core/subnet"
)

type WriterHandler interface {
	Render(reservations []migrate.ReservationRecord, matcher subnet.SubnetMatcherHandler) ([]byte, error)
	RenderYaml(reservations []migrate.ReservationRecord) ([]byte, error)
	WriteFile(path string, data []byte) error
}
