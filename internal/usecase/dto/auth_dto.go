package dto

// AuthenticationRequest - тело запроса на выдачу токена
type AuthenticationRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}
