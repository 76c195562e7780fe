package shared

import (
	"fmt"
	"math/rand"
	"time"
)

// Document number prefixes used across the system
const (
	PrefixMember          = "MEM"
	PrefixSalesOrder      = "SO"
	PrefixPurchaseOrder   = "PO"
	PrefixSalesInvoice    = "INV"
	PrefixSupplierInvoice = "SINV"
	PrefixProject         = "PRJ"
	PrefixProjectInvoice  = "PINV"
	PrefixJournalEntry    = "JE"
	PrefixAsset           = "AST"
	PrefixEmployee        = "EMP"
)

// NumberExists reports whether a candidate document number is already taken.
type NumberExists func(number string) (bool, error)

// GenerateDocumentNumber produces a human-facing number of the form
// PREFIX-YYYYMM-XXXX with a random 4-digit suffix, retrying on collision.
func GenerateDocumentNumber(prefix string, exists NumberExists) (string, error) {
	yearMonth := time.Now().Format("200601")
	for attempt := 0; attempt < 20; attempt++ {
		number := fmt.Sprintf("%s-%s-%04d", prefix, yearMonth, rand.Intn(10000))
		taken, err := exists(number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", NewDomainError("NUMBER_EXHAUSTED", fmt.Sprintf("Could not generate a unique %s number", prefix))
}
