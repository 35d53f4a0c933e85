package consts

// TrxType is the Payflow transaction type code sent as TRXTYPE.
//
// Values are taken from the Payflow Pro developer guide.
type TrxType string

const (
	TrxTypeSale           TrxType = "S"
	TrxTypeAuthorization  TrxType = "A"
	TrxTypeDelayedCapture TrxType = "D"
	TrxTypeCredit         TrxType = "C"
	TrxTypeVoid           TrxType = "V"
	TrxTypeInquiry        TrxType = "I"
)

// Tender is the payment method code sent as TENDER.
type Tender string

const (
	TenderCreditCard Tender = "C"
)
