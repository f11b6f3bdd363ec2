package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const uniqueIndexErrNo uint16 = 1062

// IsDuplicateKey 唯一索引冲突
// 开启了 TranslateError 的时候 gorm 会翻译成 ErrDuplicatedKey，否则就是 MySQL 原始的错误
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == uniqueIndexErrNo
}
