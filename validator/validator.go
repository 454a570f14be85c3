package validator

import (
	"regexp"
	"strings"
	"time"

	"clinichr/constants"
	"clinichr/dto"
	"clinichr/errors"

	validate "github.com/go-playground/validator/v10"
)

var v = validate.New()

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10,11}$`)
	return phoneRegex.MatchString(phone)
}

// isStrongPassword kiểm tra mật khẩu đủ mạnh: ít nhất 8 ký tự,
// có chữ hoa, chữ thường, chữ số và ký tự đặc biệt
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		case strings.ContainsRune("@$!%*?&", ch):
			hasSpecial = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSpecial
}

// ValidateCreateEmployee validate request tạo nhân viên
func ValidateCreateEmployee(req *dto.CreateEmployeeRequest) error {
	if err := v.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Các trường bắt buộc không được để trống", err)
	}

	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if !isValidPhone(req.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if !isStrongPassword(req.Password) {
		return errors.NewAppError(errors.ErrCodeWeakPassword,
			"Mật khẩu phải có ít nhất 8 ký tự, gồm chữ hoa, chữ thường, chữ số và ký tự đặc biệt", nil)
	}

	if req.Status != "" && req.Status != constants.EmployeeStatusActive && req.Status != constants.EmployeeStatusInactive {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái nhân viên không hợp lệ", nil)
	}

	return nil
}

// ValidateLeaveRequest validate request xin nghỉ phép
func ValidateLeaveRequest(req *dto.CreateLeaveRequest) error {
	if err := v.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Các trường bắt buộc không được để trống", err)
	}

	switch req.LeaveType {
	case constants.LeaveTypeSick, constants.LeaveTypeCasual, constants.LeaveTypeAnnual:
	default:
		return errors.NewAppError(errors.ErrCodeInvalidLeaveType, "Loại nghỉ phép không hợp lệ", nil)
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}
	if end.Before(start) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	return nil
}

// ValidateSalaryPayment validate request thanh toán lương
func ValidateSalaryPayment(req *dto.GiveSalaryRequest) error {
	if err := v.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "centerId, employeeId và amount là bắt buộc", err)
	}

	if req.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}

	if req.Email != "" && !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	return nil
}
