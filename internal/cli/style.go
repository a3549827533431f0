package cli

import (
	"github.com/fatih/color"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/notify"
)

var reservationColors = map[domain.ReservationStatus]*color.Color{
	domain.ReservationStatusPendingPayment: color.New(color.FgYellow),
	domain.ReservationStatusConfirmed:      color.New(color.FgBlue),
	domain.ReservationStatusInProgress:     color.New(color.FgGreen),
	domain.ReservationStatusFinished:       color.New(color.FgHiBlack),
	domain.ReservationStatusCanceled:       color.New(color.FgRed),
}

var vehicleColors = map[domain.VehicleStatus]*color.Color{
	domain.VehicleStatusAvailable:   color.New(color.FgGreen),
	domain.VehicleStatusRented:      color.New(color.FgBlue),
	domain.VehicleStatusReserved:    color.New(color.FgCyan),
	domain.VehicleStatusMaintenance: color.New(color.FgYellow),
	domain.VehicleStatusOutOfArea:   color.New(color.FgRed),
	domain.VehicleStatusInUse:       color.New(color.FgMagenta),
}

func reservationStatus(s domain.ReservationStatus) string {
	label := notify.StatusLabel(s)
	if c, ok := reservationColors[s]; ok {
		return c.Sprint(label)
	}
	return label
}

func vehicleStatus(s domain.VehicleStatus) string {
	if c, ok := vehicleColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func okMark() string { return color.New(color.FgGreen).Sprint("✓") }
func warnMark() string { return color.New(color.FgYellow).Sprint("!") }
