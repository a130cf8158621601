package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shreeramenterprise/sems_backend/utils"
	"gorm.io/gorm"
)

func TestErrStatus(t *testing.T) {
	cases := []struct {
		err      error
		expected int
	}{
		{utils.ErrorRecordNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{utils.ErrorUnauthorized, http.StatusUnauthorized},
		{utils.ErrorAdminRequired, http.StatusForbidden},
		{utils.NewInputError("weight must be positive"), http.StatusBadRequest},
		{fmt.Errorf("validate: %w", utils.NewInputError("duplicate name")), http.StatusBadRequest},
		// infrastructure faults are never the caller's problem
		{errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"), http.StatusInternalServerError},
		{fmt.Errorf("commit: %w", errors.New("invalid connection")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := errStatus(tc.err); got != tc.expected {
			t.Fatalf("errStatus(%v) expected %d, got %d", tc.err, tc.expected, got)
		}
	}
}
