package main

import (
	api "Chirp"
)

// @title Chirp API
// @version 1.0
// @description Minimal twitter-clone backend: tweets, follows, likes, replies
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Provide a valid JWT as: Bearer <token>
func main() {
	api.Run()
}
