// Copyright (c) 2025, The crumb Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/serializer"
)

// HTTPStatusFromCode maps an error code to the HTTP status it is served with.
// Malformed recipe input is a 400; well formed input describing an
// impossible recipe is a 422.
func HTTPStatusFromCode(code cerrors.ErrorCode) int {
	switch code {
	case cerrors.ErrCodeInvalidRequest,
		cerrors.ErrCodeInvalidRatio,
		cerrors.ErrCodeInvalidFlourDescriptor,
		cerrors.ErrCodeInvalidFlourRatios,
		cerrors.ErrCodeInvalidPrefermentDescriptor,
		cerrors.ErrCodeInvalidPrefermentArgs,
		cerrors.ErrCodeInvalidEnrichmentDescriptor:
		return http.StatusBadRequest
	case cerrors.ErrCodeUnknownPreferment,
		cerrors.ErrCodeInsufficientFlourRatios,
		cerrors.ErrCodeInsufficientFlour,
		cerrors.ErrCodeNegativeMass:
		return http.StatusUnprocessableEntity
	case cerrors.ErrCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case cerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cerrors.ErrorCode) bool {
	switch code {
	case cerrors.ErrCodeTimeout,
		cerrors.ErrCodeUnavailable,
		cerrors.ErrCodeRateLimitExceeded,
		cerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as a structured error response. Structured
// errors keep their code, message and context; anything else is reported as
// INTERNAL with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	code := cerrors.CodeOf(err)
	if code == "" {
		WriteError(w, r, http.StatusInternalServerError, cerrors.ErrCodeInternal, fallbackMessage,
			true, mergeDetails(extraDetails, errorDetail(err)))
		return
	}

	var se *cerrors.StructuredError
	stderrors.As(err, &se)
	details := mergeDetails(se.Context, extraDetails)
	if se.Cause != nil {
		details = mergeDetails(details, errorDetail(se.Cause))
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, se.Message, retryableFromCode(code), details)
}

func errorDetail(err error) map[string]any {
	if err == nil {
		return nil
	}
	return map[string]any{"error": err.Error()}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
