package user

// UserGetOutput for GET /user
type UserGetOutput struct {
	Body Profile
}

// UserPutOutput for PUT /user
type UserPutOutput struct {
	Body Profile
}
