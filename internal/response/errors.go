package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrConfirmTokenBad    ErrCode = "CONFIRM_TOKEN_INVALID"
	ErrSetPasswordToken   ErrCode = "SET_PASSWORD_TOKEN_INVALID"

	// ─── Admin two-factor ──────────────────────────────────────────────
	ErrInvalidSecret     ErrCode = "INVALID_SECRET_PASSWORD"
	ErrInvalidCode       ErrCode = "INVALID_OR_EXPIRED_CODE"
	ErrPendingNotFound   ErrCode = "PENDING_VERIFICATION_NOT_FOUND"
	ErrAdminAccessOnly   ErrCode = "ADMIN_ACCESS_ONLY"
	ErrInvalidRememberMe ErrCode = "INVALID_REMEMBER_DURATION"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidLocale  ErrCode = "INVALID_LOCALE"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Access requests ───────────────────────────────────────────────
	ErrAlreadyRequested ErrCode = "ACCESS_ALREADY_REQUESTED"
	ErrRequestResolved  ErrCode = "ACCESS_REQUEST_ALREADY_RESOLVED"

	// ─── Subscription ──────────────────────────────────────────────────
	ErrAlreadySubscribed ErrCode = "ALREADY_SUBSCRIBED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrTokenRequired:
		return "Authentication token is required."
	case ErrTokenInvalid:
		return "Authentication token is invalid."
	case ErrTokenExpired:
		return "Authentication token has expired."
	case ErrSessionInvalidated:
		return "Your session has ended. Please log in again."
	case ErrConfirmTokenBad:
		return "Confirmation link is invalid or has expired."
	case ErrSetPasswordToken:
		return "Set-password link is invalid or has expired."

	case ErrInvalidSecret:
		return "Invalid secret password."
	case ErrInvalidCode:
		return "Invalid or expired code."
	case ErrPendingNotFound:
		return "Verification expired. Start again from the password step."
	case ErrAdminAccessOnly:
		return "This resource is restricted to administrators."
	case ErrInvalidRememberMe:
		return "Unknown remember-me duration."

	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrInvalidLocale:
		return "Unsupported locale."

	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."

	case ErrAlreadyRequested:
		return "An access request for this email is already pending."
	case ErrRequestResolved:
		return "This access request has already been resolved."

	case ErrAlreadySubscribed:
		return "This email is already subscribed."

	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
