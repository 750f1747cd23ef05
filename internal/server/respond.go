package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/dominauta/padring/pkg/errors"
	"github.com/dominauta/padring/pkg/fanout"
	"github.com/dominauta/padring/pkg/pad"
)

// errorResponse is the JSON error body: a machine code plus a message
// safe to show to users.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" && isPlacementContractErr(err) {
		code = errors.ErrCodeInvalidInput
		status = http.StatusBadRequest
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "code", code, "err", err)
	}

	var resp errorResponse
	resp.Error.Code = string(code)
	resp.Error.Message = errors.UserMessage(err)
	s.writeJSON(w, status, resp)
}

// isPlacementContractErr matches the placement core's sentinel errors,
// which carry no code but are caller mistakes rather than server faults.
func isPlacementContractErr(err error) bool {
	for _, sentinel := range []error{
		fanout.ErrPortNotFound,
		fanout.ErrSlotCount,
		fanout.ErrOverrideCount,
		fanout.ErrRowCount,
		pad.ErrUnknownPad,
		pad.ErrUnknownPort,
	} {
		if stderrors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// statusFor maps error codes to HTTP status codes. Unknown codes are
// treated as internal failures.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidDevice,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPad,
		errors.ErrCodeInvalidPath,
		errors.ErrCodeContract:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodePortNotFound,
		errors.ErrCodeLayoutNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
