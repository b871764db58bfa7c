package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientNotAuthorized                 = "unauthorized access"
	ErrClientForbiddenAccess               = "forbidden access"
	ErrClientUserNotFound                  = "user not found"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevAuthTokenMissing           = "authorization header missing"
	ErrDevAuthTokenInvalidOrExpired  = "token invalid or expired"
	ErrDevAuthSigningMethod          = "unexpected token signing method"
	ErrDevAuthGenerateToken          = "failed to sign token"
	ErrDevAuthEmailClaimMissing      = "email claim missing from token"
	ErrDevPatientDoesNotMatchToken   = "patient query param does not match token email"
	ErrDevRequesterNotAdmin          = "requester account does not hold the admin role"
	ErrDevUserNotExists              = "no user document for the given email"
	ErrDevDBFailedToFindDocument     = "failed to find document(s) on database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document on database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database cursor"
)
