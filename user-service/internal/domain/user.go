package domain

// User is a stored account. Passwords are kept as submitted.
type User struct {
	Username    string `bson:"username"`
	Password    string `bson:"password"`
	PhoneNumber string `bson:"phoneNumber"`
	Email       string `bson:"email"`
	HomeAddress string `bson:"homeAddress,omitempty"`
}

type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	HomeAddress     string `json:"homeAddress"`
}

func (r SignupRequest) User() User {
	return User{
		Username:    r.Username,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		HomeAddress: r.HomeAddress,
	}
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserProfile is the public view of a user.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

func (u User) Profile() UserProfile {
	return UserProfile{
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.PhoneNumber,
		Address:  u.HomeAddress,
	}
}

// UserLookup reports a username lookup. Found is false when no user matched.
type UserLookup struct {
	User  User
	Found bool
}
