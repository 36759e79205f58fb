package model

// User is the reader profile.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone"`
	Sex      int    `json:"sex"`
	Avatar   string `json:"avatar"`
}

// LoginForm signs in with email and password.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CodeLoginForm signs in with an emailed verification code.
type CodeLoginForm struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// LoginToken is returned by every successful sign-in or registration.
type LoginToken struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Token    string `json:"token"`
}

// RegisterForm creates an account.
type RegisterForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Code     string `json:"code"`
}

// CodeCheck is the result of verifying a code.
type CodeCheck struct {
	Valid bool `json:"data"`
}

// AddressBook is a delivery address.
type AddressBook struct {
	ID           int64  `json:"id,omitempty"`
	UserID       int64  `json:"user_id,omitempty"`
	Consignee    string `json:"consignee"`
	Sex          string `json:"sex"`
	Phone        string `json:"phone"`
	ProvinceCode string `json:"province_code,omitempty"`
	ProvinceName string `json:"province_name,omitempty"`
	CityCode     string `json:"city_code,omitempty"`
	CityName     string `json:"city_name,omitempty"`
	DistrictCode string `json:"district_code,omitempty"`
	DistrictName string `json:"district_name,omitempty"`
	Detail       string `json:"detail"`
	Label        string `json:"label,omitempty"`
	IsDefault    int    `json:"is_default"`
}
