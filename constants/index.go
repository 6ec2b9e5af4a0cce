package constants

const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read validated input"
	ERROR_CREATE               = "Could not create record"
	ERROR_EDIT                 = "Could not update record"
	ERROR_DELETE               = "Could not delete record"
	ERROR_UPLOAD               = "Could not store uploaded file"
	INVALID_IDENTIFIER         = "Invalid identifier"
	NOT_FOUND_RECORDS          = "Item not found"
	MISSING_LOGIN_INPUT        = "Email and password are required"
	INVALID_CREDENTIALS        = "Invalid email or password"
	CAN_NOT_HASH_PASSWORD      = "Could not hash password"
	MISSING_FILE               = "File is required"
)

// Actor kinds returned by login.
const (
	LOGIN_USER  = "User"
	LOGIN_HOTEL = "Hotel"
)

const (
	HOTEL_STATUS_PENDING  = "pending"
	HOTEL_STATUS_APPROVED = "approved"
	HOTEL_STATUS_REJECTED = "rejected"
)

const COMPLAINT_STATUS_PENDING = "pending"

// Locals keys shared by validate and handler.
const (
	LOCALS_INPUT    = "input"
	LOCALS_INPUT_ID = "inputId"
	LOCALS_FILES    = "inputFiles"
)

const UPLOAD_PREFIX = "/uploads"
