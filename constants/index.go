package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_USER  = "USER"
)

const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Could not create record"
	ERROR_EDIT                 = "Could not update record"
	ERROR_DELETE               = "Could not delete record"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read validated input"
	NOT_FOUND_RECORDS          = "Records not found"
	NOT_ADMIN                  = "Admin role required"
	MISSING_LOGIN_INPUT        = "Email and password are required"
	CAN_NOT_HASH_PASSWORD      = "Could not hash password"
	ACCOUNT_NOT_ACTIVE         = "Account is deactivated"

	// Account messages kept verbatim from the storefront UI.
	WRONG_CREDENTIALS    = "Wrong Credentials. Please try again"
	EMAIL_ALREADY_IN_USE = "This email is already in use!"
)

const (
	DATA_INPUT_IS_NOT_NUMBER = "Input is not a number"
)
