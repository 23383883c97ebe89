package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed operation.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindInvalidCredentials
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindForbidden:
		return "Forbidden"
	case KindConflict:
		return "Conflict"
	case KindInvalidCredentials:
		return "InvalidCredentials"
	default:
		return "Internal"
	}
}

// Error is returned by every service operation. Message is safe to show to
// API clients; Err is the underlying cause and is only logged.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Messages returned to API clients.
const (
	MsgUserExists             = "There is a user with that email already"
	MsgAdminOnly              = "Only Admin can create admin account"
	MsgCreateAccountFailed    = "Could not create account"
	MsgUserNotFound           = "User not found"
	MsgWrongPassword          = "Wrong password"
	MsgLoginFailed            = "Could not log user in"
	MsgUpdateProfileFailed    = "Could not update profile"
	MsgDeleteAccountFailed    = "Could not delete account"
	MsgVerificationNotFound   = "Verification not found"
	MsgVerifyEmailFailed      = "Could not verify email"
	MsgCreateRestaurantFailed = "Could not create restaurant"
	MsgRestaurantNotFound     = "Restaurant not found"
	MsgEditRestaurantDenied   = "You cannot edit restaurant you don't own"
	MsgEditRestaurantFailed   = "Could not edit restaurant"
	MsgDeleteRestaurantDenied = "You cannot delete restaurant you don't own"
	MsgDeleteRestaurantFailed = "Could not delete restaurant"
	MsgLoadCategoriesFailed   = "Could not load categories"
	MsgCategoryNotFound       = "Category not found"
	MsgFindCategoryFailed     = "Could not find category"
	MsgLoadRestaurantsFailed  = "Could not load restaurants"
	MsgFindRestaurantFailed   = "Could not find restaurant"
	MsgSearchRestaurantFailed = "Could not search for restaurant"
	MsgCreateDishDenied       = "You cannot create dish for restaurant you don't own"
	MsgCreateDishFailed       = "Could not create dish"
	MsgDishNotFound           = "Dish not found"
	MsgEditDishDenied         = "You cannot edit dish you don't own"
	MsgEditDishFailed         = "Could not edit dish"
	MsgDeleteDishDenied       = "You cannot delete dish you don't own"
	MsgDeleteDishFailed       = "Could not delete dish"
	MsgLoadDishFailed         = "Could not load dish"
	MsgCreateOrderFailed      = "Could not create order"
	MsgOrderNotFound          = "Order not found"
	MsgOrderForbidden         = "You can't see that"
	MsgLoadOrdersFailed       = "Could not load orders"
	MsgLoadOrderFailed        = "Could not load order"
)

func notFound(msg string) *Error  { return &Error{Kind: KindNotFound, Message: msg} }
func forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }
func conflict(msg string) *Error  { return &Error{Kind: KindConflict, Message: msg} }

func invalidCredentials(msg string) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: msg}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) ErrorKind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return KindInternal
}

// PublicMessage returns the client-facing message carried by err.
func PublicMessage(err error) string {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Message
	}
	return "Internal server error"
}
