package crucible_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if SolveModes leaves goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
