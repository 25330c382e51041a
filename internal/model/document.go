package model

import (
	"strings"
	"time"
)

// Logical document slots attached to an employee record.
const (
	DocNID              = "NID"
	DocPassport         = "PASSPORT"
	DocCV               = "CV"
	DocDegree           = "DEGREE"
	DocCertificate      = "CERTIFICATE"
	DocLeaveApplication = "LEAVE_APPLICATION"
	DocLeaveStatus      = "LEAVE_STATUS"
)

// EmployeeDocument is the relational pointer to a file on the remote store.
// Src holds the stable reference "<employeeId>/<filename>.<ext>"; the bytes
// themselves live only on the store, never in the database.
type EmployeeDocument struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employee_id"`
	Name       string         `json:"name"`
	Src        string         `json:"src"`
	Format     DocumentFormat `json:"format"`
	CreatedAt  time.Time      `json:"created_at"`
}

// DocumentRef is the serialized form of a stored document pointer.
func DocumentRef(employeeID, filename string) string {
	return employeeID + "/" + filename
}

// FilenameFromRef re-derives the filename from a stored reference by taking
// the substring after the last slash. Callers elsewhere rely on this exact
// shape, so it must stay in sync with DocumentRef.
func FilenameFromRef(src string) string {
	idx := strings.LastIndex(src, "/")
	if idx < 0 {
		return src
	}
	return src[idx+1:]
}
