package models

// UserTypeEmployee is the only user type allowed on the employee pages
const UserTypeEmployee = "Employee"

// Session is the signed-in user, decoded from the session token
type Session struct {
	Type  string `json:"type"`
	Email string `json:"email"`
	Token string `json:"-"`
}

// IsEmployee reports whether the session belongs to an employee
func (s *Session) IsEmployee() bool {
	return s != nil && s.Type == UserTypeEmployee
}
