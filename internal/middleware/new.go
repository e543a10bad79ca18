package middleware

import (
	"search-srv/pkg/log"
	"search-srv/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager // nil disables token verification
	cookieName string
}

func New(l log.Logger, jwtManager scope.Manager, cookieName string) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		cookieName: cookieName,
	}
}
