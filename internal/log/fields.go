package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldPerson      = "person"
	FieldAmountUnits = "amount_units"
	FieldMemo        = "memo"
	FieldTxType      = "tx_type"
	FieldCommandKind = "command_kind"
	FieldChannel     = "channel"
	FieldUserID      = "user_id"
	FieldRowRef      = "row_ref"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentService = "service"
	ComponentSlack   = "slack"
	ComponentQueue   = "queue"
	ComponentWorker  = "worker"
	ComponentStorage = "storage"
)
