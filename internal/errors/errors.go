package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no token is presented where one is required.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidToken is returned when a token is present but expired, malformed or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden is returned when an authenticated identity lacks the required role or ownership.
	ErrForbidden = errors.New("operation not permitted")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when registering with an email that is taken.
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailNotVerified is returned when an action requires a verified email.
	ErrEmailNotVerified = errors.New("email not verified")
	// ErrEmailAlreadyVerified is returned when verifying an already verified email.
	ErrEmailAlreadyVerified = errors.New("email already verified")
	// ErrVerificationToken is returned when a verification or reset token is unknown or consumed.
	ErrVerificationToken = errors.New("invalid or expired verification token")
	// ErrProfileAlreadyExists is returned when a student or institution profile already exists.
	ErrProfileAlreadyExists = errors.New("profile already exists")
	// ErrProfileConflict is returned when a profile of the other kind exists for the user.
	ErrProfileConflict = errors.New("a profile of a different type already exists")
	// ErrNameTaken is returned when creating a named resource whose name already exists.
	ErrNameTaken = errors.New("name already taken")
	// ErrNoInstitution is returned when a school-scoped action needs an institution link.
	ErrNoInstitution = errors.New("user is not linked to an institution")
	// ErrPostNotFound is returned when a post is missing or not visible to the caller.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound is returned when a comment is missing.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrChannelNotFound is returned when a channel is missing.
	ErrChannelNotFound = errors.New("channel not found")
	// ErrCommunityNotFound is returned when a community is missing.
	ErrCommunityNotFound = errors.New("community not found")
	// ErrInstitutionNotFound is returned when an institution is missing.
	ErrInstitutionNotFound = errors.New("institution not found")
	// ErrResourceNotFound is returned when a student resource is missing.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrComplaintNotFound is returned when a complaint is missing.
	ErrComplaintNotFound = errors.New("complaint not found")
	// ErrComplaintTarget is returned when a complaint names no reported entity.
	ErrComplaintTarget = errors.New("complaint must reference a post, comment or user")
	// ErrAlreadyLiked is returned when liking the same content twice.
	ErrAlreadyLiked = errors.New("already liked")
	// ErrLikeNotFound is returned when removing a like that does not exist.
	ErrLikeNotFound = errors.New("like not found")
	// ErrNotMember is returned when acting on a channel the user has not joined.
	ErrNotMember = errors.New("not a member")
)

// ErrorResponse is the JSON body every failed request carries.
type ErrorResponse struct {
	Message    string `json:"message"`
	ErrorCode  string `json:"error_code"`
	Resolution string `json:"resolution"`
}

// HTTPError pairs a domain error with its transport mapping.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Resolution string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code, resolution string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
		Resolution: resolution,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message:    e.Message,
		ErrorCode:  e.Code,
		Resolution: e.Resolution,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become an
// opaque 500 so internals never leak to the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "unauthenticated", "Please login to continue")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error(), "invalid_token", "Please request a new token or login again")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "forbidden", "You do not have permission to access this resource")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "invalid_credentials", "Please check your credentials and try again")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, ErrUserAlreadyExists.Error(), "user_exists", "Please use a different email")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "user_not_found", "Please check the user credentials")
	case errors.Is(err, ErrEmailNotVerified):
		return NewHTTPError(http.StatusForbidden, ErrEmailNotVerified.Error(), "email_not_verified", "Please verify your email and try again")
	case errors.Is(err, ErrEmailAlreadyVerified):
		return NewHTTPError(http.StatusForbidden, ErrEmailAlreadyVerified.Error(), "email_already_verified", "Please go ahead and sign in")
	case errors.Is(err, ErrVerificationToken):
		return NewHTTPError(http.StatusBadRequest, ErrVerificationToken.Error(), "invalid_verification_token", "Please request a new verification email")
	case errors.Is(err, ErrProfileAlreadyExists):
		return NewHTTPError(http.StatusConflict, ErrProfileAlreadyExists.Error(), "profile_exists", "A profile already exists for this account")
	case errors.Is(err, ErrProfileConflict):
		return NewHTTPError(http.StatusConflict, ErrProfileConflict.Error(), "profile_conflict", "An account cannot hold both a student and an institution profile")
	case errors.Is(err, ErrNameTaken):
		return NewHTTPError(http.StatusConflict, ErrNameTaken.Error(), "name_taken", "Please choose a different name")
	case errors.Is(err, ErrNoInstitution):
		return NewHTTPError(http.StatusBadRequest, ErrNoInstitution.Error(), "no_institution", "Link your account to an institution first")
	case errors.Is(err, ErrPostNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPostNotFound.Error(), "post_not_found", "The post does not exist or is not visible to you")
	case errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusNotFound, ErrCommentNotFound.Error(), "comment_not_found", "Please check the comment id")
	case errors.Is(err, ErrChannelNotFound):
		return NewHTTPError(http.StatusNotFound, ErrChannelNotFound.Error(), "channel_not_found", "Please check the channel id")
	case errors.Is(err, ErrCommunityNotFound):
		return NewHTTPError(http.StatusNotFound, ErrCommunityNotFound.Error(), "community_not_found", "Please check the community id")
	case errors.Is(err, ErrInstitutionNotFound):
		return NewHTTPError(http.StatusNotFound, ErrInstitutionNotFound.Error(), "institution_not_found", "Please check the institution id")
	case errors.Is(err, ErrResourceNotFound):
		return NewHTTPError(http.StatusNotFound, ErrResourceNotFound.Error(), "resource_not_found", "Please check the resource id")
	case errors.Is(err, ErrComplaintNotFound):
		return NewHTTPError(http.StatusNotFound, ErrComplaintNotFound.Error(), "complaint_not_found", "Please check the complaint id")
	case errors.Is(err, ErrComplaintTarget):
		return NewHTTPError(http.StatusBadRequest, ErrComplaintTarget.Error(), "complaint_target_missing", "Provide exactly one of post_id, comment_id or user_id")
	case errors.Is(err, ErrAlreadyLiked):
		return NewHTTPError(http.StatusConflict, ErrAlreadyLiked.Error(), "already_liked", "The content is already liked")
	case errors.Is(err, ErrLikeNotFound):
		return NewHTTPError(http.StatusNotFound, ErrLikeNotFound.Error(), "like_not_found", "The content is not liked")
	case errors.Is(err, ErrNotMember):
		return NewHTTPError(http.StatusForbidden, ErrNotMember.Error(), "not_member", "Join first to perform this action")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Oops! Something went wrong", "server_error", "Please try again later")
	}
}
