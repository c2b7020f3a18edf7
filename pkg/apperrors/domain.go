package apperrors

import (
	"net/http"
)

// Predefined errors for the FixNow business rules. User-facing messages are
// in Portuguese, matching the product's audience; codes stay machine-readable.

// --- identity / session ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Credenciais inválidas",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"E-mail já cadastrado",
	http.StatusConflict,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"Usuário não encontrado",
	http.StatusNotFound,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Token inválido",
	http.StatusBadRequest,
)

var ErrMissingToken = New(
	CodeValidationFailed,
	"auth",
	"Token ausente",
	http.StatusBadRequest,
)

// ErrEmailNotVerified carries needsVerification so the frontend can offer a
// resend action.
var ErrEmailNotVerified = New(
	CodeForbidden,
	"auth",
	"E-mail não verificado",
	http.StatusForbidden,
).WithDetails(map[string]bool{"needsVerification": true})

var ErrInvalidRole = New(
	CodeValidationFailed,
	"auth",
	"role inválido",
	http.StatusBadRequest,
)

// --- catalog ---

var ErrServiceNotFound = New(
	CodeNotFound,
	"catalog",
	"Serviço não encontrado",
	http.StatusNotFound,
)

var ErrServiceUnavailable = New(
	CodeNotFound,
	"catalog",
	"Serviço não encontrado ou indisponível",
	http.StatusNotFound,
)

var ErrOnlyProviders = New(
	CodeForbidden,
	"catalog",
	"Apenas prestadores",
	http.StatusForbidden,
)

var ErrOnlyClients = New(
	CodeForbidden,
	"jobs",
	"Apenas clientes",
	http.StatusForbidden,
)

// --- job lifecycle ---

var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Solicitação não encontrada",
	http.StatusNotFound,
)

var ErrJobNotOwned = New(
	CodeForbidden,
	"jobs",
	"Você não pode atender uma solicitação de outro prestador",
	http.StatusForbidden,
)

var ErrJobNotOpen = New(
	CodeConflict,
	"jobs",
	"Esta solicitação já foi atendida ou finalizada",
	http.StatusConflict,
)

var ErrJobAlreadyFinished = New(
	CodeConflict,
	"jobs",
	"Este atendimento já foi finalizado",
	http.StatusConflict,
)

// --- media ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"Arquivo excede o tamanho máximo de 3MB",
	http.StatusBadRequest,
)

var ErrNotAnImage = New(
	CodeValidationFailed,
	"upload",
	"Arquivo precisa ser uma imagem",
	http.StatusBadRequest,
)

var ErrNoFileSent = New(
	CodeValidationFailed,
	"upload",
	`Nenhum arquivo enviado (campo "avatar")`,
	http.StatusBadRequest,
)
