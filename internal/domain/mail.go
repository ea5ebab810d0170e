package domain

type MailType string

const (
	MailWelcomeCompany MailType = "welcome_company"
	MailCreateUser     MailType = "create_user"
	MailResetPassword  MailType = "reset_password"
)

type MailMessage struct {
	Type MailType `json:"type"`
	To   string   `json:"to"`
	Data any      `json:"data"`
}

type WelcomeCompanyMailData struct {
	CompanyName string `json:"companyName"`
	CompanyID   string `json:"companyID"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

type CreateUserMailData struct {
	FullName  string `json:"fullName"`
	CompanyID string `json:"companyID"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}
