package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/uide-sports/campeonatos-api/services"
)

type jsonResponse map[string]interface{}

// validate revisa las etiquetas `validate` de los cuerpos de petición antes de
// pasarlos al servicio.
var validate = validator.New()

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err) // error de programación: dst no es un puntero
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// validateRequest corre el validador de struct tags y devuelve los mensajes
// campo por campo.
func validateRequest(input interface{}) map[string]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		panic(invalid) // error de programación: input no es un struct
	}

	messages := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			messages[field] = "this field is required"
		case "email":
			messages[field] = "must be a valid email address"
		case "min":
			messages[field] = fmt.Sprintf("must be at least %s", fieldErr.Param())
		case "max":
			messages[field] = fmt.Sprintf("must be at most %s", fieldErr.Param())
		case "gt":
			messages[field] = fmt.Sprintf("must be greater than %s", fieldErr.Param())
		case "gte":
			messages[field] = fmt.Sprintf("must be %s or more", fieldErr.Param())
		case "url":
			messages[field] = "must be a valid url"
		case "oneof":
			messages[field] = fmt.Sprintf("must be one of: %s", fieldErr.Param())
		default:
			messages[field] = fmt.Sprintf("failed validation rule %q", fieldErr.Tag())
		}
	}
	return messages
}

const maxUploadBytes = 10 << 20 // 10MB

// formFile extrae el archivo subido por multipart y su content type declarado.
// El caller debe cerrar el reader.
func formFile(r *http.Request, field string) (multipart.File, string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "", fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("missing %q file field", field)
	}

	contentType := header.Header.Get("Content-Type")
	return file, contentType, nil
}

func idParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	if err != nil {
		return err
	}

	return nil
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.Error("failed to write error response", "error", err, "path", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error", "error", err, "method", r.Method, "path", r.URL.Path)
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func failedValidationResponse(w http.ResponseWriter, r *http.Request, errs interface{}) {
	errorResponse(w, r, http.StatusUnprocessableEntity, errs)
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

func conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusConflict, message)
}

func unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusUnauthorized, message)
}

func forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusForbidden, message)
}

// mapServiceErrorToHTTP traduce los errores del servicio al estado HTTP que le
// corresponde a cada uno.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	// El validador de dominio junta todos los mensajes; van como 422.
	if ve, ok := services.AsValidationError(err); ok {
		failedValidationResponse(w, r, ve.Messages)
		return
	}

	switch {
	// Recursos inexistentes
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrSportNotFound),
		errors.Is(err, services.ErrTypeNotFound),
		errors.Is(err, services.ErrProgramNotFound),
		errors.Is(err, services.ErrBankCodeNotFound),
		errors.Is(err, services.ErrChampionshipNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrRefereeNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrSuspensionNotFound),
		errors.Is(err, services.ErrStatisticNotFound),
		errors.Is(err, services.ErrStreamNotFound):
		notFoundResponse(w, r)

	// Conflictos de unicidad y de estado
	case errors.Is(err, services.ErrUsernameConflict),
		errors.Is(err, services.ErrEmailConflict),
		errors.Is(err, services.ErrSportNameConflict),
		errors.Is(err, services.ErrTypeNameConflict),
		errors.Is(err, services.ErrProgramNameConflict),
		errors.Is(err, services.ErrBankConflict),
		errors.Is(err, services.ErrChampionshipNameConflict),
		errors.Is(err, services.ErrTeamNameConflict),
		errors.Is(err, services.ErrJerseyNumberConflict),
		errors.Is(err, services.ErrPlayerUserConflict),
		errors.Is(err, services.ErrPaymentAlreadyExists),
		errors.Is(err, services.ErrMatchSlotConflict),
		errors.Is(err, services.ErrPaymentAlreadyReviewed),
		errors.Is(err, services.ErrSportInUse),
		errors.Is(err, services.ErrTypeInUse),
		errors.Is(err, services.ErrBankCodeInUse),
		errors.Is(err, services.ErrChampionshipHasTeams):
		conflictResponse(w, r, err.Error())

	// Entradas inválidas y reglas de negocio
	case errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrSportNameRequired),
		errors.Is(err, services.ErrTypeNameRequired),
		errors.Is(err, services.ErrProgramNameRequired),
		errors.Is(err, services.ErrBankNameRequired),
		errors.Is(err, services.ErrTeamNameRequired),
		errors.Is(err, services.ErrRefereeNameRequired),
		errors.Is(err, services.ErrStreamNameRequired),
		errors.Is(err, services.ErrStreamURLInvalid),
		errors.Is(err, services.ErrStreamMatchMismatch),
		errors.Is(err, services.ErrInvalidDateFormat),
		errors.Is(err, services.ErrInvalidStartTime),
		errors.Is(err, services.ErrNegativeScore),
		errors.Is(err, services.ErrInvalidJerseyNumber),
		errors.Is(err, services.ErrPlayerTooYoung),
		errors.Is(err, services.ErrRosterFull),
		errors.Is(err, services.ErrBankCodeRequired),
		errors.Is(err, services.ErrReceiptRequired),
		errors.Is(err, services.ErrInvalidPaymentMethod),
		errors.Is(err, services.ErrInvalidStateTransition),
		errors.Is(err, services.ErrMatchAlreadyFinished),
		errors.Is(err, services.ErrRefereeInactive),
		errors.Is(err, services.ErrSuspensionReasonRequired),
		errors.Is(err, services.ErrSuspensionDatesInvalid),
		errors.Is(err, services.ErrNotEnoughTeams),
		errors.Is(err, services.ErrFixtureWindowTooSmall),
		errors.Is(err, services.ErrChampionshipNotModifiable),
		errors.Is(err, services.ErrInvalidQRContentType),
		errors.Is(err, services.ErrInvalidLogoContentType),
		errors.Is(err, services.ErrInvalidRulesContentType),
		errors.Is(err, services.ErrInvalidReceiptContentType):
		badRequestResponse(w, r, err)

	// Autenticación y autorización
	case errors.Is(err, services.ErrAuthInvalidCredentials):
		unauthorizedResponse(w, r, err.Error())
	case errors.Is(err, services.ErrForbiddenOperation),
		errors.Is(err, services.ErrRegistrationNotOpen),
		errors.Is(err, services.ErrTeamNotApproved),
		errors.Is(err, services.ErrDelegateRoleRequired),
		errors.Is(err, services.ErrPlayerRoleRequired),
		errors.Is(err, services.ErrAdminRoleRequired):
		forbiddenResponse(w, r, err.Error())

	default:
		serverErrorResponse(w, r, err)
	}
}
