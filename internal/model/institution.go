package model

// Institution is a school registered on the platform. Posts scoped to a
// school reference the institution id.
type Institution struct {
	ID             string `json:"id" gorm:"primaryKey;size:36"`
	Name           string `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Email          string `json:"email,omitempty" gorm:"uniqueIndex;size:255"`
	Description    string `json:"description,omitempty" gorm:"size:2048"`
	Website        string `json:"website,omitempty" gorm:"size:512"`
	Location       string `json:"location,omitempty" gorm:"size:255"`
	ProfilePicture string `json:"profile_picture,omitempty" gorm:"size:512"`
}

// StudentProfile links a user to the institution they study at. Creating one
// promotes the user role to student.
type StudentProfile struct {
	ID               string `json:"id" gorm:"primaryKey;size:36"`
	UserID           string `json:"user_id" gorm:"uniqueIndex;size:36;not null"`
	InstitutionID    string `json:"institution_id" gorm:"size:36;index"`
	InstitutionName  string `json:"institution_name,omitempty" gorm:"size:255"`
	ProfilePicture   string `json:"profile_picture,omitempty" gorm:"size:512"`
	Faculty          string `json:"faculty,omitempty" gorm:"size:255"`
	Department       string `json:"department,omitempty" gorm:"size:255"`
	MatricNumber     string `json:"matric_number,omitempty" gorm:"size:64"`
	EducationalLevel string `json:"educational_level,omitempty" gorm:"size:64"`
	Course           string `json:"course,omitempty" gorm:"size:255"`
	GraduationYear   int    `json:"graduation_year,omitempty"`
}

// InstitutionProfile links a user to the institution they administer.
// Creating one promotes the user role to institution.
type InstitutionProfile struct {
	ID             string `json:"id" gorm:"primaryKey;size:36"`
	UserID         string `json:"user_id" gorm:"uniqueIndex;size:36;not null"`
	InstitutionID  string `json:"institution_id" gorm:"uniqueIndex;size:36;not null"`
	Name           string `json:"name" gorm:"size:255;not null"`
	Email          string `json:"email" gorm:"size:255;not null"`
	ProfilePicture string `json:"profile_picture,omitempty" gorm:"size:512"`
}
