// Package testing flips the backoffice binaries into test mode when imported
// for side effects from a test package.
package testing

import (
	"os"

	"github.com/odyssey-erp/backoffice/internal/app"
)

func init() {
	_ = os.Setenv(app.TestModeEnv, "1")
	if os.Getenv("API_BASE_URL") == "" {
		_ = os.Setenv("API_BASE_URL", "http://127.0.0.1:0")
	}
}
