package validator_test

import (
	"testing"

	"clinichr/constants"
	"clinichr/dto"
	errs "clinichr/errors"
	"clinichr/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmployeeRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		CenterID:     1,
		Name:         "Nguyễn Văn An",
		Email:        "an.nguyen@clinic.vn",
		Password:     "MatKhau1!",
		Phone:        "0901234567",
		Position:     "Kỹ thuật viên",
		Salary:       900,
		ProfileImage: "https://example.com/an.jpg",
	}
}

func TestValidateCreateEmployee(t *testing.T) {
	req := validEmployeeRequest()
	require.NoError(t, validator.ValidateCreateEmployee(&req))
}

func TestValidateCreateEmployeeMissingFields(t *testing.T) {
	req := validEmployeeRequest()
	req.Name = ""
	err := validator.ValidateCreateEmployee(&req)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeRequiredField))
}

func TestValidateCreateEmployeeBadEmail(t *testing.T) {
	req := validEmployeeRequest()
	req.Email = "khong-phai-email"
	err := validator.ValidateCreateEmployee(&req)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidEmail))
}

func TestValidateCreateEmployeeBadPhone(t *testing.T) {
	req := validEmployeeRequest()
	req.Phone = "12345"
	err := validator.ValidateCreateEmployee(&req)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidPhone))
}

func TestValidateCreateEmployeeWeakPassword(t *testing.T) {
	cases := []string{"ngan", "toanchuthuong1!", "KHONGCOSO!!", "ThieuKyTuDacBiet1"}
	for _, password := range cases {
		req := validEmployeeRequest()
		req.Password = password
		err := validator.ValidateCreateEmployee(&req)
		require.Error(t, err, "password %q phải bị từ chối", password)
		assert.True(t, errs.HasCode(err, errs.ErrCodeWeakPassword))
	}
}

func TestValidateCreateEmployeeBadStatus(t *testing.T) {
	req := validEmployeeRequest()
	req.Status = "nghi-viec"
	err := validator.ValidateCreateEmployee(&req)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidStatus))
}

func validLeaveRequest() dto.CreateLeaveRequest {
	return dto.CreateLeaveRequest{
		EmployeeID: 1,
		CenterID:   1,
		LeaveType:  constants.LeaveTypeSick,
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-12",
		Reason:     "Bị cảm",
	}
}

func TestValidateLeaveRequest(t *testing.T) {
	req := validLeaveRequest()
	require.NoError(t, validator.ValidateLeaveRequest(&req))
}

func TestValidateLeaveRequestBadType(t *testing.T) {
	req := validLeaveRequest()
	req.LeaveType = "Vacation"
	err := validator.ValidateLeaveRequest(&req)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidLeaveType))
}

func TestValidateLeaveRequestBadDates(t *testing.T) {
	req := validLeaveRequest()
	req.StartDate = "10/03/2025"
	err := validator.ValidateLeaveRequest(&req)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidFormat))

	req = validLeaveRequest()
	req.EndDate = "2025-03-09"
	err = validator.ValidateLeaveRequest(&req)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeValidation))
}

func TestValidateSalaryPayment(t *testing.T) {
	req := dto.GiveSalaryRequest{EmployeeID: 1, CenterID: 1, Amount: 500}
	require.NoError(t, validator.ValidateSalaryPayment(&req))
}

func TestValidateSalaryPaymentBadAmount(t *testing.T) {
	req := dto.GiveSalaryRequest{EmployeeID: 1, CenterID: 1, Amount: -5}
	err := validator.ValidateSalaryPayment(&req)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidAmount))
}

func TestValidateSalaryPaymentBadEmail(t *testing.T) {
	req := dto.GiveSalaryRequest{EmployeeID: 1, CenterID: 1, Amount: 500, Email: "khong-hop-le"}
	err := validator.ValidateSalaryPayment(&req)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidEmail))
}
