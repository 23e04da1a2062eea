package mysql

import (
	"errors"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/community-comments/domain"
)

const errDuplicateEntry = 1062

// translateError maps store errors onto the domain sentinels.
// TranslateError in gorm.Config covers the duplicate key case already,
// the driver check keeps it working for connections opened without it.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	var myErr *mysqlDriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
		return domain.ErrConflict
	}
	return err
}
