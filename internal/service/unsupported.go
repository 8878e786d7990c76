package service

import (
	"errors"
	"fmt"
)

// ErrNotSupported marks actions the application exposes but does not implement yet
var ErrNotSupported = errors.New("not supported")

// Action names an unimplemented user action
type Action string

const (
	ActionChangePhoto     Action = "change-photo"
	ActionAccountSettings Action = "account-settings"
	ActionPrivacySettings Action = "privacy-settings"
	ActionResetPassword   Action = "reset-password"
	ActionMessageMember   Action = "message-member"
	ActionConnectMember   Action = "connect-member"
	ActionDownload        Action = "download-resource"
	ActionShare           Action = "share-resource"
	ActionSubmitResource  Action = "submit-resource"
)

// Actions lists every action that is exposed but not implemented
var Actions = []Action{
	ActionChangePhoto, ActionAccountSettings, ActionPrivacySettings, ActionResetPassword,
	ActionMessageMember, ActionConnectMember, ActionDownload, ActionShare, ActionSubmitResource,
}

// NotSupportedError reports which action was requested
type NotSupportedError struct {
	Action Action
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, ErrNotSupported)
}

// Is lets errors.Is match ErrNotSupported
func (e *NotSupportedError) Is(target error) bool {
	return target == ErrNotSupported
}

// Unsupported returns the error for a requested but unimplemented action
func Unsupported(action Action) error {
	return &NotSupportedError{Action: action}
}
