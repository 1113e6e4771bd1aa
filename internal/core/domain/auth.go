package domain

// LoginRequest carries credentials for POST /auth/login. Transient: built,
// validated, sent, never persisted.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterTouristRequest is the payload for POST /auth/register/tourist.
type RegisterTouristRequest struct {
	Username    string `json:"username"    validate:"required"`
	Password    string `json:"password"    validate:"required,min=6"`
	Role        Role   `json:"role"        validate:"required,oneof=tourist"`
	Nationality string `json:"nationality" validate:"required"`
}

// EmployeeDetails is the employment block required when registering an
// employee account.
type EmployeeDetails struct {
	EmployeeID    string `json:"employeeId"    validate:"required"`
	Department    string `json:"department"    validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required,phone"`
}

// RegisterEmployeeRequest is the payload for POST /auth/register/employee.
type RegisterEmployeeRequest struct {
	Username        string          `json:"username"        validate:"required"`
	Password        string          `json:"password"        validate:"required,min=6"`
	Role            Role            `json:"role"            validate:"required,oneof=employee"`
	Nationality     string          `json:"nationality"     validate:"required"`
	EmployeeDetails EmployeeDetails `json:"employeeDetails" validate:"required"`
}

// AuthResponse is what POST /auth/login returns: an opaque bearer token
// paired with the authenticated user.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
