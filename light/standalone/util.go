// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

type ErrorType int

const (
	ClientInvalidRequest ErrorType = iota
	PhaseWaitTimeout
	CyclerStopped
)

func (t ErrorType) String() string {
	switch t {
	case ClientInvalidRequest:
		return "Client.InvalidRequest"
	case PhaseWaitTimeout:
		return "Phase.WaitTimeout"
	case CyclerStopped:
		return "Cycler.Stopped"
	}
	return fmt.Sprintf("Cannot stringify standalone.ErrorType.%d", int(t))
}

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	ErrorType    string `json:"errorType"`
	ErrorMessage string `json:"errorMessage"`
}

type ErrorReply struct {
	ErrorResponse
	StatusCode int `json:"-"`
}

func newErrorReply(errType ErrorType, statusCode int, errMsg string) *ErrorReply {
	return &ErrorReply{
		ErrorResponse: ErrorResponse{ErrorType: errType.String(), ErrorMessage: errMsg},
		StatusCode:    statusCode,
	}
}

func (e *ErrorReply) Send(w http.ResponseWriter, r *http.Request) {
	render.Status(r, e.StatusCode)
	render.JSON(w, r, e.ErrorResponse)
}
