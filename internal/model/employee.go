package model

import "time"

// EmploymentStatus enumerates the lifecycle states of an employee record.
type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "ACTIVE"
	StatusInactive   EmploymentStatus = "INACTIVE"
	StatusOnLeave    EmploymentStatus = "ON_LEAVE"
	StatusTerminated EmploymentStatus = "TERMINATED"
)

// ValidEmploymentStatus reports whether s is a member of the closed set.
func ValidEmploymentStatus(s EmploymentStatus) bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

// ContractType enumerates employment contract kinds.
type ContractType string

const (
	ContractFullTime ContractType = "FULL_TIME"
	ContractPartTime ContractType = "PART_TIME"
	ContractContract ContractType = "CONTRACT"
	ContractIntern   ContractType = "INTERN"
)

// ValidContractType reports whether c is a member of the closed set.
func ValidContractType(c ContractType) bool {
	switch c {
	case ContractFullTime, ContractPartTime, ContractContract, ContractIntern:
		return true
	}
	return false
}

// Employee is the core directory record. EmpID is the human-assigned badge
// number, distinct from the surrogate ID.
type Employee struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	EmpID         string           `json:"emp_id"`
	JoiningDate   *time.Time       `json:"joining_date,omitempty"`
	ContractType  ContractType     `json:"contract_type"`
	Status        EmploymentStatus `json:"status"`
	DepartmentID  *string          `json:"department_id,omitempty"`
	DesignationID *string          `json:"designation_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
