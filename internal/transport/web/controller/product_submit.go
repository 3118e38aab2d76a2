package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/product-showcase/internal/command"
	"github.com/jbeshir/product-showcase/internal/domain"
)

// maxSubmissionBytes bounds the JSON body of a product submission.
const maxSubmissionBytes = 64 << 10

type ProductSubmit struct {
	Command command.Command[command.SubmitProductRequest, domain.FormState]
}

func (c ProductSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req command.SubmitProductRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmissionBytes)).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode product submission", "error", err)
		writeJSON(w, r, http.StatusBadRequest, domain.FormState{Message: "Invalid request body"})
		return
	}

	state, err := c.Command.Execute(ctx, req)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			logger.ErrorContext(ctx, "unable to submit product", "error", err)
		}

		state.Success = false
		writeJSON(w, r, status, state)
		return
	}

	writeJSON(w, r, http.StatusCreated, state)
}
