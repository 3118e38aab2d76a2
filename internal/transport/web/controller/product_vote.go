package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/product-showcase/internal/command"
	"github.com/jbeshir/product-showcase/internal/domain"
)

// ProductVote applies one vote in a fixed direction to the product named in the path.
// Every response, including failures, has a VoteResult body.
type ProductVote struct {
	Command   command.Command[command.ApplyVoteRequest, domain.VoteResult]
	Direction domain.VoteDirection
}

func (c ProductVote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logger := domain.LoggerFromContext(r.Context()).With("product_id", vars["product_id"])
	ctx := domain.ContextWithLogger(r.Context(), logger)

	productID, err := strconv.ParseInt(vars["product_id"], 10, 64)
	if err != nil || productID < 1 {
		logger.ErrorContext(ctx, "invalid product id", "error", err)
		writeJSON(w, r, http.StatusBadRequest, domain.VoteResult{Message: "Invalid product id"})
		return
	}

	result, err := c.Command.Execute(ctx, command.ApplyVoteRequest{
		ProductID: productID,
		Direction: c.Direction,
	})
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			logger.ErrorContext(ctx, "unable to apply vote", "error", err)
		} else {
			logger.InfoContext(ctx, "vote rejected", "error", err)
		}

		result.Success = false
		writeJSON(w, r, status, result)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, result)
}
