package ledger

// TransferInput is the validated transfer request. The caller identity is
// passed separately: it comes from the verified token, never from the
// request body.
type TransferInput struct {
	ReceiverUID string `json:"receiver_uid"`
	Amount      int64  `json:"amount"`
	// Display-name hints used only when the stored account has no name.
	SenderName   string `json:"sender_name,omitempty"`
	ReceiverName string `json:"receiver_name,omitempty"`
}

// TransferResult reports a committed transfer back to the caller.
type TransferResult struct {
	Reference     string `json:"reference"`
	NewBalance    int64  `json:"new_balance"`
	PointsAwarded int64  `json:"points_awarded"`
	Message       string `json:"message"`
}

// Point award rates: the sender earns 3% of the transferred amount, the
// receiver 0.5%, both rounded down. Business policy, preserve exactly.
const (
	senderPointNum   = 3
	senderPointDen   = 100
	receiverPointNum = 5
	receiverPointDen = 1000
)

// SenderPoints returns the loyalty points awarded to the sender of a
// transfer: floor(amount * 0.03).
func SenderPoints(amount int64) int64 {
	return amount * senderPointNum / senderPointDen
}

// ReceiverPoints returns the loyalty points awarded to the receiver:
// floor(amount * 0.005).
func ReceiverPoints(amount int64) int64 {
	return amount * receiverPointNum / receiverPointDen
}
