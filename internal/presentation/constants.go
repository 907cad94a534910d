package presentation

const (
	IDParam      = "id"
	VariantParam = "variant"
	TypeKey      = "Content-Type"
	ReasonTag    = "X-Reason"
)
