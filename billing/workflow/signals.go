package workflow

import "transfers.app/billing/model"

const (
	StatusChangedSignalName = "bill-status-changed"
	BillDeletedSignalName   = "bill-deleted"
)

// StatusChangedSignal is sent after a successful status update.
type StatusChangedSignal struct {
	Status model.BillStatus `json:"status"`
}

type BillDeletedSignal struct {
	Reason string `json:"reason"`
}
