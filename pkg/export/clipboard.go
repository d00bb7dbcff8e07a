package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
)

// WriteClipboard copies text to the system clipboard. Headless
// environments without a clipboard provider return an error from the
// underlying platform call.
func WriteClipboard(text string) error {
	if text == "" {
		return fmt.Errorf("%w: nothing to copy", cserrors.ErrInvalidArgument)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
