package auth

type AuthServiceAPI interface {
	Login(phone, password string) (*LoginResult, error)
	RefreshAccessToken(refreshToken string) (string, error)
	GetUserInfo(userID uint64) (*User, error)
	ChangePassword(userID uint64, oldPassword, newPassword string) error
}
