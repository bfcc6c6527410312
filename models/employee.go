package models

// Employee represents a single employee health record.
//
// EmployeeNumber is assigned by the caller at creation time and is immutable
// afterwards; it doubles as the primary key in the database. RecordDate is a
// calendar date without a time component.
type Employee struct {
	// EmployeeNumber is the unique identifier of the record.
	EmployeeNumber int64 `json:"employeeNumber"`

	// FirstName is the employee's first name. Required, at most 50 characters.
	FirstName string `json:"firstName"`

	// LastName is the employee's last name. Required, at most 50 characters.
	LastName string `json:"lastName"`

	// Temperature is the recorded body temperature. Stored as NUMERIC(10,2);
	// the database constrains the value to two fractional digits.
	Temperature float64 `json:"temperature"`

	// RecordDate is the calendar date the measurement was taken.
	RecordDate Date `json:"recordDate"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}
