package constvars

type ContextKey string

const (
	ContextRequestIDKey         ContextKey = "request_id"
	ContextEmailKey             ContextKey = "email"
	ContextIsClientRequestIDKey ContextKey = "is_client_request_id"
)

const (
	MongoCollectionServices = "services"
	MongoCollectionBookings = "bookings"
	MongoCollectionUsers    = "users"
)

const (
	RoleAdmin = "admin"
)

const (
	RequestIDPrefix = "DCTRS_PRTL_"
)

const (
	GreetingMessage = "Doctors portal service is up"
)
