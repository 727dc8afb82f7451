package domain

import "time"

// Lead is a website form submission.
type Lead struct {
	ID              string    `json:"_id"             db:"id"`
	Slug            string    `json:"slug"            db:"slug"`
	FullName        string    `json:"fullName"        db:"full_name"`
	Email           string    `json:"email"           db:"email"`
	Phone           string    `json:"phone"           db:"phone"`
	City            string    `json:"city"            db:"city"`
	Message         string    `json:"message"         db:"message"`
	FormType        string    `json:"formType"        db:"form_type"`
	MarketCenter    string    `json:"marketCenter"    db:"market_center"`
	Purpose         string    `json:"purpose"         db:"purpose"`
	AppointmentDate string    `json:"appointmentDate" db:"appointment_date"`
	AppointmentTime string    `json:"appointmentTime" db:"appointment_time"`
	TermsAccepted   bool      `json:"termsAccepted"   db:"terms_accepted"`
	Notes           string    `json:"notes"           db:"notes"`
	CreatedAt       time.Time `json:"createdAt"       db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt"       db:"updated_at"`
}

// Lead form types with special handling.
const (
	FormTypeContactUs   = "contact-us"
	FormTypeAppointment = "appointment"
	FormTypeJasmin      = "jasmin"
	FormTypeJeddah      = "jeddah"
)

// LeadRange limits a lead listing to a trailing window.
type LeadRange string

// Supported lead ranges.
const (
	LeadRangeAll   LeadRange = ""
	LeadRangeToday LeadRange = "today"
	LeadRangeWeek  LeadRange = "week"
	LeadRangeMonth LeadRange = "month"
	LeadRangeYear  LeadRange = "year"
)

// Since returns the lower bound of the range relative to now, and false
// when the range is unbounded.
func (r LeadRange) Since(now time.Time) (time.Time, bool) {
	day := 24 * time.Hour
	switch r {
	case LeadRangeToday:
		return now.Add(-day), true
	case LeadRangeWeek:
		return now.Add(-7 * day), true
	case LeadRangeMonth:
		return now.Add(-30 * day), true
	case LeadRangeYear:
		return now.Add(-365 * day), true
	}
	return time.Time{}, false
}

// LeadPatch carries optional updates for a lead.
type LeadPatch struct {
	FullName     *string `json:"fullName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	City         *string `json:"city"`
	Message      *string `json:"message"`
	MarketCenter *string `json:"marketCenter"`
	Notes        *string `json:"notes"`
}
