package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing output, separate from the structured log stream.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	fmt.Fprintf(stdout, format+"\n", args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "✗ "+format+"\n", args...)
}

// Banner prints the startup lines announcing where the gateway listens.
func Banner(baseURL string) {
	UserInfo("🚀 API Gateway running on %s", baseURL)
	UserInfo("📊 Health check: %s/health", baseURL)
	UserInfo("🔄 Proxy endpoint: %s/api/proxy?url=<target_url>", baseURL)
}
