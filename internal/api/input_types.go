package api

type signupInput struct {
	Email       string `json:"email" form:"email"`
	FullName    string `json:"full_name" form:"full_name"`
	Phone       string `json:"phone" form:"phone"`
	CollegeName string `json:"college_name" form:"college_name"`
	Department  string `json:"department" form:"department"`
	Password    string `json:"password" form:"password"`
}

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type verifyEmailInput struct {
	Email string `json:"email" form:"email"`
	Token string `json:"token" form:"token"`
}

type resendOTPInput struct {
	Email string `json:"email" form:"email"`
}

type forgotPasswordInput struct {
	Email string `json:"email" form:"email"`
}

type resetPasswordInput struct {
	Token    string `json:"token" form:"token"`
	Password string `json:"password" form:"password"`
}

type onboardingInput struct {
	FullName    string `json:"full_name" form:"full_name"`
	Phone       string `json:"phone" form:"phone"`
	CollegeName string `json:"college_name" form:"college_name"`
	Department  string `json:"department" form:"department"`
}

type createTeamInput struct {
	Name string `json:"name" form:"name"`
}

type joinTeamInput struct {
	InviteCode string `json:"invite_code" form:"invite_code"`
}
