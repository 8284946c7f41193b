package models

// RegistrationForm is the signup payload sent to POST /auth/signup.
// The id is generated client-side ("user-" + uuid). DocumentType is one of
// CC, TI or CE; Role defaults to USER.
type RegistrationForm struct {
	ID             string `json:"id"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phoneNumber"`
	City           string `json:"city"`
	Password       string `json:"password" validate:"required"`
	DocumentType   string `json:"documentType" validate:"oneof=CC TI CE"`
	DocumentNumber string `json:"documentNumber" validate:"required"`
	Profile        string `json:"profile"`
	Role           string `json:"role"`
}

// Profile is the locally edited user profile. It never leaves the device in
// the current product; edits are persisted in the local store only.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
}

// Application is a past job application shown on the profile screen.
// The backend does not expose applications yet; the client ships a static
// sample list.
type Application struct {
	ID       string `json:"id"`
	JobTitle string `json:"jobTitle"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}
