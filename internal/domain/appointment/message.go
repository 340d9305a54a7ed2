package appointment

import "fmt"

const (
	approvedMessage = "Appointment Approved please bring your vehicle at our shop to start the process, Thank you!"
	rejectedMessage = "Sorry we are not available on that schedule, please reschedule your appointment, Thank you!"
	canceledMessage = "Appointment canceled by user."
	completedFormat = "Good day %s your vehicle is ready to drive again, you can now come to our shop again to pick-up this, prepare the exact amount of payment for our services. thank you for trusting our shop!."
)

// StatusMessage derives the note stored alongside a status. Only Completed is templated.
func StatusMessage(status Status, displayName string) *string {
	var msg string
	switch status {
	case StatusApproved:
		msg = approvedMessage
	case StatusRejected:
		msg = rejectedMessage
	case StatusCompleted:
		msg = fmt.Sprintf(completedFormat, displayName)
	default:
		return nil
	}
	return &msg
}

// CancelMessage is stored when the owning customer cancels.
func CancelMessage() *string {
	msg := canceledMessage
	return &msg
}
