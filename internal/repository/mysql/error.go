package mysql

import (
	"errors"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/conduit-labs/conduit/domain"
)

const codeDuplicateEntry = 1062

// translateError maps storage failures onto the domain sentinels: a
// unique-index violation becomes ErrConflict and a missing row ErrNotFound.
// With that, a creation race lost at the index reads the same to callers as
// a pre-detected collision.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *driver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == codeDuplicateEntry {
		return domain.ErrConflict
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	return err
}
