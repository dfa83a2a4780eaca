package export

import (
	"fmt"
	"os"

	"github.com/gorewood/driftwood/internal/output"
)

// WriteDocument writes a rendered document to path.
func WriteDocument(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", path, err))
	}
	return nil
}
