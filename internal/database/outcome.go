package database

import (
	"fmt"

	"github.com/mrlokans/librarian/internal/config"
)

type DeleteStatus int

const (
	DeleteStatusDeleted DeleteStatus = iota
	DeleteStatusNotFound
	DeleteStatusBlocked // Dependent rows prevented the delete
)

func (s DeleteStatus) String() string {
	switch s {
	case DeleteStatusDeleted:
		return "deleted"
	case DeleteStatusNotFound:
		return "not found"
	case DeleteStatusBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("DeleteStatus(%d)", int(s))
	}
}

func (s DeleteStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DeleteResult describes what a delete-by-id did. Dependents counts the
// books that blocked the delete or were removed along with an author.
type DeleteResult struct {
	Status     DeleteStatus `json:"status"`
	Dependents int64        `json:"dependents"`
}

// DeletePolicy decides what happens to books when their author is deleted.
type DeletePolicy = config.DeletePolicy

const (
	DeleteRestrict = config.DeletePolicyRestrict
	DeleteCascade  = config.DeletePolicyCascade
)

// ParseDeletePolicy validates a policy name. Empty input means restrict.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case "", DeleteRestrict:
		return DeleteRestrict, nil
	case DeleteCascade:
		return DeleteCascade, nil
	default:
		return "", fmt.Errorf("unknown delete policy %q", s)
	}
}
