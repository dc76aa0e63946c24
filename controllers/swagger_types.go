package controllers

// Request shapes referenced by the swagger annotations.

type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"password1"`
	Name     string `json:"name" example:"Alice"`
	Gender   string `json:"gender" example:"female"`
}

type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"password1"`
}

type CreateTweetRequest struct {
	Tweet string `json:"tweet" example:"hello world"`
}
