package providers

import (
	"errors"
	"portfolio/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	switch cv.conf.Storage.Driver {
	case "file":
		if cv.conf.Storage.Dir == "" {
			return errors.New("storage.dir is required for the file driver")
		}
	case "redis":
		if cv.conf.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis driver")
		}
	}

	if cv.conf.Backup.Enabled && (cv.conf.Backup.Dir == "" || cv.conf.Backup.Interval <= 0) {
		return errors.New("backup.dir and a positive backup.interval are required when backups are enabled")
	}

	if cv.conf.Contact.Enabled && (cv.conf.Contact.SmtpHost == "" || cv.conf.Contact.To == "") {
		return errors.New("contact.smtpHost and contact.to are required when the contact form is enabled")
	}

	return nil
}
