package constant

const (
	ZoneUTC        = "UTC"
	DefaultKeyword = "default"
	UTCDesignator  = "Z"
)

const (
	DisplayLayout = "2006-01-02 15:04:05 MST"
	InputLayout   = "YYYY-MM-DDTHH:mm:ssZ"
)

const (
	ExitCodeOK           = 0
	ExitCodeFailure      = 1
	ExitCodeInvalidInput = 2
	ExitCodeInterrupted  = 130
)

const (
	MaxSelectionAttempts = 3
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelModeAttributeKey = "conversion.mode"
	OtelZoneAttributeKey = "conversion.zone"
	OtelDirAttributeKey  = "catalog.dir"
)

const (
	LogFieldRunID = "run_id"
	LogFieldZone  = "zone"
	LogFieldDir   = "dir"
)

const (
	Empty = ""
)
