package consts

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"

	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Endpoints.
const (
	TestEndpointURL = "https://pilot-payflowpro.paypal.com/" // sandbox
	LiveEndpointURL = "https://payflowpro.paypal.com/"       // prod
)

// Request parameter names.
const (
	ParamPartner           = "PARTNER"
	ParamVendor            = "VENDOR"
	ParamUser              = "USER"
	ParamPassword          = "PWD"
	ParamTrxType           = "TRXTYPE"
	ParamTender            = "TENDER"
	ParamAmount            = "AMT"
	ParamOrigID            = "ORIGID"
	ParamCreateSecureToken = "CREATESECURETOKEN"
	ParamSecureTokenID     = "SECURETOKENID"
	ParamAcct              = "ACCT"
	ParamCVV2              = "CVV2"
	ParamExpDate           = "EXPDATE"
)

// Response field names.
const (
	FieldResult      = "RESULT"
	FieldRespMsg     = "RESPMSG"
	FieldPNRef       = "PNREF"
	FieldSecureToken = "SECURETOKEN"
	FieldAuthCode    = "AUTHCODE"
)

// ResultApproved is the RESULT value of an approved transaction.
const ResultApproved = "0"
