package bridge

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zidaye/odbc-bridge/common"
)

// DecimalFromCell parses the payload of a DECIMAL/NUMERIC column cell.
// Such columns are resolved to narrow-text buffers (see bufferKinds), so the
// driver delivers their values in the canonical textual form.
func DecimalFromCell(c TextCell) (decimal.Decimal, error) {
	if !c.Valid {
		return decimal.Decimal{}, fmt.Errorf("parse decimal: %w", common.ErrUnexpectedNull)
	}

	out, err := decimal.NewFromString(strings.TrimSpace(c.Text))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse decimal '%s': %w", c.Text, err)
	}

	return out, nil
}
