package models

// User is an account as listed by the admin endpoint. Passwords are never
// returned by the backend.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	JobRole  string `json:"job_role"`
	IsAdmin  bool   `json:"is_admin"`
}

// FullName joins name and surname the way the user table shows them.
func (u User) FullName() string {
	return u.Name + " " + u.Surname
}

// NewUser is the registration payload. Password is write-only.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	JobRole  string `json:"job_role"`
}

// RequiredFields lists the registration fields in form order, paired with
// their current values. Every one of them must be non-empty.
func (u NewUser) RequiredFields() []Field {
	return []Field{
		{Name: "username", Label: "Username", Value: u.Username},
		{Name: "password", Label: "Password", Value: u.Password},
		{Name: "name", Label: "Name", Value: u.Name},
		{Name: "surname", Label: "Surname", Value: u.Surname},
		{Name: "email", Label: "Email", Value: u.Email},
		{Name: "job_role", Label: "Job role", Value: u.JobRole},
	}
}
