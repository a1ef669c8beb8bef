package models

type UserRole string

const (
	StudentRole     UserRole = "STUDENT"
	RecruiterRole   UserRole = "RECRUITER"
	CoordinatorRole UserRole = "DEPT_COORDINATOR"
	AdminRole       UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	StudentRole:     "Student",
	RecruiterRole:   "Recruiter",
	CoordinatorRole: "Department coordinator",
	AdminRole:       "TPO administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}

const SystemUser = "System"
