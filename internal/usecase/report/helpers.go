package report

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

func isNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }

func today() string { return time.Now().UTC().Format("2006-01-02") }
