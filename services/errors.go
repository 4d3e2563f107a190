package services

import (
	"errors"
	"strings"
)

// Errores comunes usados entre servicios y en el mapeo HTTP.
var (
	// Recurso no encontrado (genérico)
	ErrNotFound = errors.New("requested resource not found")

	// Errores de autenticación y autorización
	ErrAuthInvalidCredentials = errors.New("invalid username or password")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")

	// Errores de conflicto
	ErrUsernameConflict         = errors.New("username is already in use")
	ErrEmailConflict            = errors.New("email address is already in use")
	ErrSportNameConflict        = errors.New("sport name already exists")
	ErrTypeNameConflict         = errors.New("championship type name already exists")
	ErrProgramNameConflict      = errors.New("program name already exists")
	ErrBankConflict             = errors.New("bank already has a payment code")
	ErrChampionshipNameConflict = errors.New("championship name already exists")
	ErrTeamNameConflict         = errors.New("team name already exists in this championship")
	ErrJerseyNumberConflict     = errors.New("jersey number already taken in this team")
	ErrPlayerUserConflict       = errors.New("user is already registered as a player")
	ErrPaymentAlreadyExists     = errors.New("team already has a payment record")
	ErrMatchSlotConflict        = errors.New("match slot already taken")

	// Errores "en uso" al eliminar datos de referencia
	ErrSportInUse    = errors.New("sport is in use and cannot be deleted")
	ErrTypeInUse     = errors.New("championship type is in use and cannot be deleted")
	ErrBankCodeInUse = errors.New("bank code is in use and cannot be deleted")

	// Errores específicos por entidad
	ErrUserNotFound         = errors.New("user not found")
	ErrSportNotFound        = errors.New("sport not found")
	ErrTypeNotFound         = errors.New("championship type not found")
	ErrProgramNotFound      = errors.New("program not found")
	ErrBankCodeNotFound     = errors.New("bank code not found")
	ErrChampionshipNotFound = errors.New("championship not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrRefereeNotFound      = errors.New("referee not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrSuspensionNotFound   = errors.New("suspension not found")
	ErrStatisticNotFound    = errors.New("statistic not found")
	ErrStreamNotFound       = errors.New("stream not found")

	// Reglas de negocio
	ErrRegistrationNotOpen      = errors.New("championship registration is not open")
	ErrTeamNotApproved          = errors.New("team is not approved; payment must be approved first")
	ErrRosterFull               = errors.New("team roster has reached the championship limit")
	ErrReceiptRequired          = errors.New("a payment receipt must be attached before review")
	ErrBankCodeRequired         = errors.New("bank code is required for transfer payments")
	ErrPaymentAlreadyReviewed   = errors.New("payment has already been reviewed")
	ErrInvalidStateTransition   = errors.New("invalid championship state transition")
	ErrMatchAlreadyFinished     = errors.New("match is already finished")
	ErrRefereeInactive          = errors.New("referee is not active")
	ErrDelegateRoleRequired     = errors.New("user must have the delegate role")
	ErrPlayerRoleRequired       = errors.New("user must have the player role")
	ErrAdminRoleRequired        = errors.New("admin privileges required")
	ErrTeamNotInChampionship    = errors.New("team does not belong to the championship")
	ErrChampionshipHasNoWeekday = errors.New("championship has no configured match weekdays")
)

// ValidationError junta todos los mensajes de una validación fallida; el
// validador no corta en el primer error.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) add(msg string) {
	e.Messages = append(e.Messages, msg)
}

func (e *ValidationError) hasErrors() bool {
	return len(e.Messages) > 0
}

// AsValidationError extrae un *ValidationError de una cadena de errores.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
