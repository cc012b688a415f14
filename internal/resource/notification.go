// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"fmt"
	"strings"
)

// Level is the severity of a Notification.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Notification is a user-facing message about a finished operation.
type Notification struct {
	Level   Level
	Title   string
	Message string

	// Err is the failure behind an error notification.
	Err error
}

// Labels name an entity kind in notifications, e.g. {"Invoice", "invoices"}.
type Labels struct {
	Singular string
	Plural   string
}

func (l Labels) loadFailed(err error) Notification {
	return Notification{Level: LevelError, Title: "Error", Message: "Unable to load " + l.Plural, Err: err}
}

func (l Labels) failed(op operation, err error) Notification {
	return Notification{Level: LevelError, Title: "Error", Message: fmt.Sprintf("Unable to %s %s", op, l.lower()), Err: err}
}

func (l Labels) succeeded(op operation) Notification {
	return Notification{Level: LevelSuccess, Title: "Success", Message: fmt.Sprintf("%s %sd", l.Singular, op)}
}

func (l Labels) lower() string {
	if l.Singular == "" {
		return "record"
	}
	return strings.ToLower(l.Singular)
}

type operation string

const (
	opCreate operation = "create"
	opUpdate operation = "update"
	opDelete operation = "delete"
)
