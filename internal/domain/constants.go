package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultMaxBookingsPerSlot  = 3
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinRating              = 1
	MaxRating              = 5
	MaxNotesLength         = 500
	MaxCommentLength       = 1000
	SalesSeriesDays        = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Виды документов в хранилище
const (
	KindBusinessHours = "business_hours"
	KindSlot          = "slot"
	KindAppointment   = "appointment"
	KindService       = "service"
	KindPayment       = "payment"
	KindFeedback      = "feedback"
	KindInventory     = "inventory"
)

// Роли пользователей
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleClient = "client"
)
