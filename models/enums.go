package models

type TransactionKind string

const (
	TransactionKindSell TransactionKind = "Sell"
	TransactionKindBuy  TransactionKind = "Buy"
)

func (e TransactionKind) IsValid() bool {
	switch e {
	case TransactionKindSell, TransactionKindBuy:
		return true
	}
	return false
}

func (e TransactionKind) String() string {
	return string(e)
}

type TransactionStatus string

const (
	TransactionStatusDraft     TransactionStatus = "Draft"
	TransactionStatusReserved  TransactionStatus = "Reserved"
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusCanceled  TransactionStatus = "Canceled"
)

func (e TransactionStatus) IsValid() bool {
	switch e {
	case TransactionStatusDraft, TransactionStatusReserved, TransactionStatusCompleted, TransactionStatusCanceled:
		return true
	}
	return false
}

func (e TransactionStatus) String() string {
	return string(e)
}

type LossStatus string

const (
	LossStatusPending  LossStatus = "Pending"
	LossStatusFinished LossStatus = "Finished"
	LossStatusCanceled LossStatus = "Canceled"
)

func (e LossStatus) IsValid() bool {
	switch e {
	case LossStatusPending, LossStatusFinished, LossStatusCanceled:
		return true
	}
	return false
}

func (e LossStatus) String() string {
	return string(e)
}

type WholesaleResourceType string

const (
	WholesaleResourceTypeLoss        WholesaleResourceType = "Loss"
	WholesaleResourceTypeTransaction WholesaleResourceType = "Transaction"
	WholesaleResourceTypeAdjustment  WholesaleResourceType = "Adjustment"
)

func (e WholesaleResourceType) IsValid() bool {
	switch e {
	case WholesaleResourceTypeLoss, WholesaleResourceTypeTransaction, WholesaleResourceTypeAdjustment:
		return true
	}
	return false
}

func (e WholesaleResourceType) String() string {
	return string(e)
}
