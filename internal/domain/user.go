package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
)

type User struct {
	ID               string           `json:"id"` // UUID
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	PasswordHash     string           `json:"-"`
	Role             string           `json:"role"`
	ProfileCompleted bool             `json:"is_profile_completed"`
	SeekerProfile    *SeekerProfile   `json:"seeker_profile,omitempty"`
	EmployerProfile  *EmployerProfile `json:"employer_profile,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// SeekerProfile is the typed job-seeker profile. It replaces the old
// dynamic field-name dispatch: every updatable field is declared here
// and validated by tag.
type SeekerProfile struct {
	Phone             string           `json:"phone" validate:"omitempty,valid_phone"`
	AlternatePhone    string           `json:"alternate_phone" validate:"omitempty,valid_phone"`
	Location          string           `json:"location" validate:"max=120"`
	Address           string           `json:"address" validate:"max=255"`
	ProfilePhotoURL   string           `json:"profile_photo_url" validate:"omitempty,url"`
	Headline          string           `json:"headline" validate:"max=160,no_emoji"`
	CareerSummary     string           `json:"career_summary" validate:"max=2000"`
	TotalExperience   float64          `json:"total_experience" validate:"gte=0,lte=60"`
	EmploymentStatus  string           `json:"employment_status" validate:"omitempty,oneof=Student Employed Unemployed Fresher"`
	WillingToRelocate bool             `json:"willing_to_relocate"`
	Skills            []string         `json:"skills" validate:"dive,max=80"`
	SoftSkills        []string         `json:"soft_skills" validate:"dive,max=80"`
	Languages         []Language       `json:"languages" validate:"dive"`
	Education         []Education      `json:"education" validate:"dive"`
	Experience        []Experience     `json:"experience" validate:"dive"`
	Projects          []Project        `json:"projects" validate:"dive"`
	Certifications    []Certification  `json:"certifications" validate:"dive"`
	JobPreferences    *JobPreferences  `json:"job_preferences,omitempty"`
	ResumeURL         string           `json:"resume_url" validate:"omitempty,url"`
	PortfolioURL      string           `json:"portfolio_url" validate:"omitempty,url"`
	CoverLetter       string           `json:"cover_letter" validate:"max=5000"`
	SocialLinks       *SocialLinks     `json:"social_links,omitempty"`
}

// EmployerProfile is the typed employer profile.
type EmployerProfile struct {
	Phone              string       `json:"phone" validate:"omitempty,valid_phone"`
	Location           string       `json:"location" validate:"max=120"`
	CompanyName        string       `json:"company_name" validate:"omitempty,valid_name,max=160"`
	CompanyDescription string       `json:"company_description" validate:"max=4000"`
	CompanyWebsite     string       `json:"company_website" validate:"omitempty,url"`
	CompanyLogoURL     string       `json:"company_logo_url" validate:"omitempty,url"`
	CompanySize        string       `json:"company_size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1000+"`
	SocialLinks        *SocialLinks `json:"social_links,omitempty"`
}

type Language struct {
	Name        string `json:"name" validate:"required,max=60"`
	Proficiency string `json:"proficiency" validate:"max=40"`
}

type Education struct {
	Degree         string `json:"degree" validate:"required,max=120"`
	Specialization string `json:"specialization" validate:"max=120"`
	Institution    string `json:"institution" validate:"required,max=160"`
	StartYear      int    `json:"start_year" validate:"omitempty,gte=1950,max_current_year"`
	EndYear        int    `json:"end_year" validate:"omitempty,gte=1950"` // zero while ongoing
	Grade          string `json:"grade" validate:"max=40"`
	Mode           string `json:"mode" validate:"omitempty,oneof=Full-time Part-time Distance"`
}

type Experience struct {
	Title        string     `json:"title" validate:"required,max=120"`
	Company      string     `json:"company" validate:"required,max=160"`
	Type         string     `json:"type" validate:"omitempty,oneof=Full-time Part-time Internship Contract Freelance"`
	Location     string     `json:"location" validate:"max=120"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"` // nil while current
	Description  string     `json:"description" validate:"max=2000"`
	Achievements string     `json:"achievements" validate:"max=2000"`
}

type Project struct {
	Title        string     `json:"title" validate:"required,max=120"`
	Description  string     `json:"description" validate:"max=2000"`
	Technologies []string   `json:"technologies" validate:"dive,max=60"`
	Role         string     `json:"role" validate:"max=120"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Link         string     `json:"link" validate:"omitempty,url"`
}

type Certification struct {
	Name           string     `json:"name" validate:"required,max=160"`
	Issuer         string     `json:"issuer" validate:"max=160"`
	IssueDate      *time.Time `json:"issue_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	CredentialID   string     `json:"credential_id" validate:"max=120"`
	CertificateURL string     `json:"certificate_url" validate:"omitempty,url"`
}

type JobPreferences struct {
	Roles           []string     `json:"roles" validate:"dive,max=120"`
	Industries      []string     `json:"industries" validate:"dive,max=120"`
	EmploymentTypes []string     `json:"employment_types" validate:"dive,oneof=Full-time Part-time Internship Contract Freelance Remote"`
	Locations       []string     `json:"locations" validate:"dive,max=120"`
	Salary          *SalaryRange `json:"salary,omitempty"`
	NoticePeriod    string       `json:"notice_period" validate:"max=60"`
}

type SalaryRange struct {
	Min      float64 `json:"min" validate:"gte=0"`
	Max      float64 `json:"max" validate:"gte=0"`
	Currency string  `json:"currency" validate:"max=8"`
}

type SocialLinks struct {
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	GitHub    string `json:"github" validate:"omitempty,url"`
	Portfolio string `json:"portfolio" validate:"omitempty,url"`
	Twitter   string `json:"twitter" validate:"omitempty,url"`
	Facebook  string `json:"facebook" validate:"omitempty,url"`
}

// OnboardingStatus reports whether the profile-completion latch is set and,
// while it is not, which required fields are still missing.
type OnboardingStatus struct {
	Completed bool     `json:"completed"`
	Missing   []string `json:"missing,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, name, email, password, role string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GoogleLogin(ctx context.Context, idToken string) (*User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type ProfileUsecase interface {
	UpdateSeekerProfile(ctx context.Context, userID, name string, profile *SeekerProfile) (*User, error)
	UpdateEmployerProfile(ctx context.Context, userID, name string, profile *EmployerProfile) (*User, error)
	GetOnboardingStatus(ctx context.Context, userID string) (*OnboardingStatus, error)
}
