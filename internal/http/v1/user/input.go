package user

// UserGetInput for GET /user (no body needed)
type UserGetInput struct{}

// UserPutInput for PUT /user. The profile is replaced wholesale.
type UserPutInput struct {
	Body struct {
		Name  string `json:"name"  maxLength:"200" required:"true" doc:"Display name"         example:"Bob Smith"`
		Email string `json:"email" maxLength:"200" required:"true" doc:"Email address"        example:"bob@example.com"`
		Phone string `json:"phone" maxLength:"200" required:"true" doc:"Phone number, may be empty" example:"555-0100"`
	}
}
