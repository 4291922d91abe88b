package repositories_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jrazmi/dashboard/core/repositories"
	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/incomesrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
)

func TestKindSentinelsWrapNotFound(t *testing.T) {
	for _, sentinel := range []error{tasksrepo.ErrNotFound, expensesrepo.ErrNotFound, incomesrepo.ErrNotFound} {
		wrapped := fmt.Errorf("lookup abc: %w", sentinel)
		if !errors.Is(wrapped, repositories.ErrNotFound) {
			t.Errorf("%v does not wrap repositories.ErrNotFound", sentinel)
		}
	}
	if errors.Is(tasksrepo.ErrNotFound, expensesrepo.ErrNotFound) {
		t.Error("kind sentinels must stay distinct")
	}
}
