package auth

import "github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

func (r *AdminLoginRequest) Validate() error {
	if validator.IsEmpty(r.Password) {
		return validator.ValidationErrors{{
			Field:   "password",
			Message: "password is required",
		}}
	}
	return nil
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
	Role                 Role   `json:"role"`
	EmployeeID           string `json:"employee_id,omitempty"`
	EmployeeName         string `json:"employee_name,omitempty"`
}
