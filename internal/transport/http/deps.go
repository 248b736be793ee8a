package http

import (
	"github.com/eventplug/signup-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/eventplug/signup-api/internal/infrastructure/jwt"
	"github.com/eventplug/signup-api/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router,
// assembled once at process start.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	OtpRepo     *dynamo.OtpRepo
	Mailer      smtp.Mailer
	JWTProvider *jwtinfra.Provider
}
