package errors

import "net/http"

var ErrUnauthenticated = &Exception{
	Kind:       KindUnauthorized,
	Message:    "Você não tem permissão para realizar esta operação.",
	StatusCode: http.StatusUnauthorized,
}

var ErrManagerOnly = &Exception{
	Kind:       KindUnauthorized,
	Message:    "Apenas gerentes podem acessar este relatório.",
	StatusCode: http.StatusForbidden,
}
