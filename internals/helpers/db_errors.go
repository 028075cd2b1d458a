package helper

import "strings"

// IsUniqueViolation mendeteksi pelanggaran unique constraint lintas driver
// (postgres: "duplicate key ... unique constraint", sqlite: "UNIQUE constraint failed").
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// IsForeignKeyViolation mendeteksi pelanggaran foreign key lintas driver.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "foreign key constraint")
}
