package constants

// Vai trò người dùng
const (
	RoleSuperAdmin = 1
	RoleDiagnostic = 2
	RoleEmployee   = 3
)

// Trạng thái nhân viên
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Trạng thái đơn nghỉ phép
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Loại nghỉ phép
const (
	LeaveTypeSick   = "Sick Leave"
	LeaveTypeCasual = "Casual Leave"
	LeaveTypeAnnual = "Annual Leave"
)

// Trạng thái thanh toán lương
const (
	PaymentStatusUnpaid  = "Unpaid"
	PaymentStatusPartial = "Partial"
	PaymentStatusPaid    = "Paid"
)
