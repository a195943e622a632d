package appointment

import "github.com/ClinicaExecutivas/studio-scheduler/internal/models"

// ===============================
// Domain Actions
// ===============================

// Confirm transiciona para confirmado e anexa o código de indicação
// do cliente ao agendamento.
func Confirm(ap *models.Appointment, referralCode string) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ReferralCode = referralCode
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

func Complete(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	return nil
}
