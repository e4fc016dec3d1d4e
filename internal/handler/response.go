package handler

import "github.com/immortalfoodie/Ecosphere/internal/model"

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// SnapshotResponse is returned by every ledger mutation: the updated
// full-state snapshot plus whether the operation changed anything (no-ops on
// missing ids, repeat RSVPs and the like report applied=false).
type SnapshotResponse struct {
	Applied bool                 `json:"applied"`
	State   model.EcosphereState `json:"state"`
}

func NewSnapshotResponse(state model.EcosphereState, applied bool) SnapshotResponse {
	return SnapshotResponse{Applied: applied, State: state}
}
